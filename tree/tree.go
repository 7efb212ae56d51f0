package tree

import (
	"fmt"
	"strings"
)

// Tree is an n-ary tree. Trees are built once and never mutated.
type Tree[T any] struct {
	Node     T
	Children []*Tree[T]
}

func New[T any](node T, children ...*Tree[T]) *Tree[T] {
	return &Tree[T]{Node: node, Children: children}
}

// Apply returns a new tree with the same shape whose nodes are f(node).
func Apply[T, U any](t *Tree[T], f func(T) U) *Tree[U] {
	result := &Tree[U]{Node: f(t.Node)}
	if len(t.Children) > 0 {
		result.Children = make([]*Tree[U], len(t.Children))
		for i, child := range t.Children {
			result.Children[i] = Apply(child, f)
		}
	}
	return result
}

// Walk visits every node depth first, parents before children.
func (t *Tree[T]) Walk(f func(T)) {
	f(t.Node)
	for _, child := range t.Children {
		child.Walk(f)
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	n := 1
	for _, child := range t.Children {
		n += child.Len()
	}
	return n
}

func (t *Tree[T]) String() string {
	buf := &strings.Builder{}
	t.ToString(buf, "")
	return buf.String()
}

func (t *Tree[T]) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%s%v\n", offset, t.Node)
	for _, child := range t.Children {
		child.ToString(buf, offset+"| ")
	}
}
