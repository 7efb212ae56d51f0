package widgets

import "fmt"

// Size is the space a widget asks for, given an offer.
type Size struct {
	W, H int
}

// Placement is the absolute rectangle a parent grants a child.
type Placement struct {
	X, Y, W, H int
}

func XYWH(x, y, w, h int) Placement {
	return Placement{X: x, Y: y, W: w, H: h}
}

func (p Placement) Size() Size {
	return Size{W: p.W, H: p.H}
}

func (s Size) String() string {
	return fmt.Sprintf("Size(W: %d, H: %d)", s.W, s.H)
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", p.X, p.Y, p.W, p.H)
}

// LayoutPolicy tells a widget whether to shrink to its content or to take
// the whole offer.
type LayoutPolicy int

const (
	FitContent LayoutPolicy = iota
	Fill
)

func (l LayoutPolicy) String() string {
	switch l {
	case FitContent:
		return "FitContent"
	case Fill:
		return "Fill"
	}
	return fmt.Sprintf("LayoutPolicy(%d)", int(l))
}
