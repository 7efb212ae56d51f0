package device

// Sink creates the surfaces leaf widgets draw into.
type Sink interface {
	NewSurface(x, y, width, height int) (Surface, error)
}

// Surface is a single rectangle owned by one render tree node for one frame.
// Write buffers styled text; Flush puts it on screen.
type Surface interface {
	Write(text string, attr Attr) error
	Flush()
}

// Palette resolves a color role to the sink's native attribute value.
type Palette interface {
	Attr(color Color) Attr
}
