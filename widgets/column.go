package widgets

import (
	"strings"
)

type column struct {
	Children []Widget
	key      uint64
}

// Column stacks its children top to bottom. Children that do not fit in
// the height are left out of the frame.
func Column(children ...Widget) column {
	return column{Children: children, key: childrenKey("Column", struct{}{}, children)}
}

func (c column) descriptorKey() uint64 { return c.key }

func (c column) Name() string { return "Column" }

func (c column) Measure(ctx *Context, offered Size) (Size, error) {
	if offered.H < 1 {
		return Size{}, layoutError(c.Name(), ErrInsufficientHeight)
	}
	heights, err := c.childHeights(ctx, offered)
	if err != nil {
		return Size{}, err
	}
	return Size{W: offered.W, H: min(sum(heights), offered.H)}, nil
}

func (c column) Build(ctx *Context, placement Placement) (*Graph, error) {
	heights, err := c.childHeights(ctx, placement.Size())
	if err != nil {
		return nil, err
	}
	children := make([]*Graph, 0, len(heights))
	y := placement.Y
	for i, height := range heights {
		graph, err := ctx.Place(c.Children[i], Placement{X: placement.X, Y: y, W: placement.W, H: height})
		if err != nil {
			return nil, err
		}
		children = append(children, graph)
		y += height
	}
	return container(children...), nil
}

// childHeights measures children against the remaining height until the
// budget runs out; only the admitted children get a height.
func (c column) childHeights(ctx *Context, offered Size) ([]int, error) {
	heights := make([]int, 0, len(c.Children))
	total := 0
	for _, child := range c.Children {
		remaining := offered.H - total
		if remaining <= 0 {
			break
		}
		size, err := ctx.Measure(child, Size{W: offered.W, H: remaining})
		if err != nil {
			return nil, err
		}
		heights = append(heights, size.H)
		total += size.H
	}
	return heights, nil
}

func (c column) String() string { return toString(c) }

func (c column) ToString(buf *strings.Builder, offset string) {
	header(buf, offset, c.Name())
	childrenToString(buf, offset, c.Children)
}
