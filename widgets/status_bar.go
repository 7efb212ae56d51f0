package widgets

import "strings"

type statusBar struct {
	Children []Widget
	key      uint64
}

// StatusBar spreads its children over the full width, first one flush left
// and last one flush right.
func StatusBar(children ...Widget) statusBar {
	return statusBar{Children: children, key: childrenKey("StatusBar", struct{}{}, children)}
}

func (s statusBar) descriptorKey() uint64 { return s.key }

func (s statusBar) Name() string { return "StatusBar" }

func (s statusBar) row() Widget {
	return Row(s.Children...).Layout(Fill).Spacing(SpaceBetween)
}

func (s statusBar) Measure(ctx *Context, offered Size) (Size, error) {
	return ctx.Measure(s.row(), offered)
}

func (s statusBar) Build(ctx *Context, placement Placement) (*Graph, error) {
	return s.row().Build(ctx, placement)
}

func (s statusBar) String() string { return toString(s) }

func (s statusBar) ToString(buf *strings.Builder, offset string) {
	header(buf, offset, s.Name())
	childrenToString(buf, offset, s.Children)
}
