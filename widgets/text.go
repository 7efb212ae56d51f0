package widgets

import (
	"compot/device"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

type TextConfig struct {
	Layout LayoutPolicy
	Style  TextStyle
}

type text struct {
	Content string
	Config  TextConfig
}

// Text is a single line of text. Width is counted in terminal columns.
func Text(content string) text {
	return text{Content: norm.NFC.String(content)}
}

func (t text) Layout(layout LayoutPolicy) text {
	t.Config.Layout = layout
	return t
}

func (t text) Style(style TextStyle) text {
	t.Config.Style = style
	return t
}

func (t text) Color(color device.Color) text {
	t.Config.Style.Color = color
	return t
}

func (t text) Align(align Alignment) text {
	t.Config.Style.Align = align
	return t
}

func (t text) Bold() text {
	t.Config.Style.Bold = true
	return t
}

func (t text) Italic() text {
	t.Config.Style.Italic = true
	return t
}

func (t text) Underline() text {
	t.Config.Style.Underline = true
	return t
}

func (t text) Name() string { return "Text" }

func (t text) Width() int {
	return runewidth.StringWidth(t.Content)
}

func (t text) Measure(_ *Context, offered Size) (Size, error) {
	if offered.H < 1 {
		return Size{}, layoutError(t.Name(), ErrInsufficientHeight)
	}
	if t.Config.Layout == Fill {
		return offered, nil
	}
	return Size{W: max(min(offered.W, t.Width()), 0), H: 1}, nil
}

// Build pads the text to the placement width according to its alignment.
// Text wider than the placement is left to the surface to clip.
func (t text) Build(ctx *Context, placement Placement) (*Graph, error) {
	if ctx.Sink == nil {
		return nil, layoutError(t.Name(), ErrMissingSink)
	}
	surface, err := ctx.Sink.NewSurface(placement.X, placement.Y, placement.W, 1)
	if err != nil {
		return nil, err
	}
	if err := surface.Write(t.padded(placement.W), t.Config.Style.Attr(ctx.palette())); err != nil {
		return nil, err
	}
	return leaf(surface), nil
}

func (t text) padded(width int) string {
	pad := width - t.Width()
	if pad <= 0 {
		return t.Content
	}
	switch t.Config.Style.Align {
	case AlignRight:
		return strings.Repeat(" ", pad) + t.Content
	case AlignCenter:
		right := pad / 2
		return strings.Repeat(" ", pad-right) + t.Content + strings.Repeat(" ", right)
	}
	return t.Content + strings.Repeat(" ", pad)
}

func (t text) String() string { return toString(t) }

func (t text) ToString(buf *strings.Builder, offset string) {
	header(buf, offset, t.Name(),
		fmt.Sprintf("%q", t.Content),
		fmt.Sprintf("layout=%s", t.Config.Layout),
		fmt.Sprintf("style=%s", t.Config.Style))
}
