package widgets

import (
	"compot/device"
	"compot/tree"
	"fmt"
)

// Graph is the resolved render tree of one frame. Leaves own a surface;
// layout containers have none.
type Graph struct {
	*tree.Tree[device.Surface]
}

func leaf(surface device.Surface) *Graph {
	return &Graph{tree.New(surface)}
}

func container(children ...*Graph) *Graph {
	nodes := make([]*tree.Tree[device.Surface], len(children))
	for i, child := range children {
		nodes[i] = child.Tree
	}
	return &Graph{tree.New[device.Surface](nil, nodes...)}
}

// Render flushes every surface, parents before children.
func (g *Graph) Render() {
	g.Walk(func(surface device.Surface) {
		if surface != nil {
			surface.Flush()
		}
	})
}

// Surfaces counts the leaves that own a surface.
func (g *Graph) Surfaces() int {
	n := 0
	g.Walk(func(surface device.Surface) {
		if surface != nil {
			n++
		}
	})
	return n
}

func (g *Graph) String() string {
	return tree.Apply(g.Tree, func(surface device.Surface) string {
		if surface == nil {
			return "Container"
		}
		return fmt.Sprintf("Surface(%v)", surface)
	}).String()
}
