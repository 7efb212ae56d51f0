package widgets

import (
	"fmt"
	"strings"
)

// Spacing decides how a row distributes the width its children leave over.
//
//	[(None)(None)(None)                               ]
//	[(SpaceBetween)  (SpaceBetween)  (SpaceBetween)]
type Spacing int

const (
	SpacingNone Spacing = iota
	SpaceBetween
)

func (s Spacing) String() string {
	switch s {
	case SpacingNone:
		return "None"
	case SpaceBetween:
		return "SpaceBetween"
	}
	return fmt.Sprintf("Spacing(%d)", int(s))
}

type RowConfig struct {
	Layout  LayoutPolicy
	Spacing Spacing
}

type row struct {
	Children []Widget
	Config   RowConfig
	key      uint64
}

// Row lays its children out left to right on a single line.
func Row(children ...Widget) row {
	return row{Children: children}.rekey()
}

func (r row) Layout(layout LayoutPolicy) row {
	r.Config.Layout = layout
	return r.rekey()
}

func (r row) Spacing(spacing Spacing) row {
	r.Config.Spacing = spacing
	return r.rekey()
}

func (r row) rekey() row {
	r.key = childrenKey(r.Name(), r.Config, r.Children)
	return r
}

func (r row) descriptorKey() uint64 { return r.key }

func (r row) Name() string { return "Row" }

func (r row) Measure(ctx *Context, offered Size) (Size, error) {
	if offered.H < 1 {
		return Size{}, layoutError(r.Name(), ErrInsufficientHeight)
	}
	if r.Config.Layout == Fill {
		return Size{W: offered.W, H: 1}, nil
	}
	widths, err := r.childWidths(ctx, offered.W)
	if err != nil {
		return Size{}, err
	}
	return Size{W: min(sum(widths), offered.W), H: 1}, nil
}

func (r row) Build(ctx *Context, placement Placement) (*Graph, error) {
	widths, err := r.childWidths(ctx, placement.W)
	if err != nil {
		return nil, err
	}
	padding := r.padding(placement.W, widths)

	children := make([]*Graph, 0, len(r.Children))
	x := placement.X
	for i, child := range r.Children {
		graph, err := ctx.Place(child, Placement{X: x, Y: placement.Y, W: widths[i], H: 1})
		if err != nil {
			return nil, err
		}
		children = append(children, graph)
		x += widths[i] + padding
	}
	return container(children...), nil
}

// childWidths measures the children in order, each against whatever width
// the ones before it left.
func (r row) childWidths(ctx *Context, width int) ([]int, error) {
	widths := make([]int, len(r.Children))
	total := 0
	for i, child := range r.Children {
		size, err := ctx.Measure(child, Size{W: max(width-total, 0), H: 1})
		if err != nil {
			return nil, err
		}
		widths[i] = size.W
		total += size.W
	}
	return widths, nil
}

// padding is the gap inserted after every child but the last. A single
// child gets no gap, and a negative gap is dropped.
func (r row) padding(width int, widths []int) int {
	if r.Config.Spacing != SpaceBetween || len(widths) < 2 {
		return 0
	}
	free := width - sum(widths)
	if free < 0 {
		return 0
	}
	return free / (len(widths) - 1)
}

func (r row) String() string { return toString(r) }

func (r row) ToString(buf *strings.Builder, offset string) {
	header(buf, offset, r.Name(),
		fmt.Sprintf("layout=%s", r.Config.Layout),
		fmt.Sprintf("spacing=%s", r.Config.Spacing))
	childrenToString(buf, offset, r.Children)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
