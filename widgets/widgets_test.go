package widgets

import (
	"compot/device"
	"compot/tree"
	"fmt"
	"testing"
)

type TestSink struct {
	surfaces []*TestSurface
}

type TestSurface struct {
	X, Y, W, H int
	Text       string
	Attr       device.Attr
	Flushed    int
}

func (s *TestSink) NewSurface(x, y, w, h int) (device.Surface, error) {
	surface := &TestSurface{X: x, Y: y, W: w, H: h}
	s.surfaces = append(s.surfaces, surface)
	return surface, nil
}

func (s *TestSurface) Write(text string, attr device.Attr) error {
	s.Text, s.Attr = text, attr
	return nil
}

func (s *TestSurface) Flush() {
	s.Flushed++
}

func (s *TestSurface) String() string {
	return fmt.Sprintf("%d:%d %dx%d %q %v", s.X, s.Y, s.W, s.H, s.Text, s.Attr)
}

func build(t *testing.T, w Widget, placement Placement) (*Graph, *TestSink) {
	t.Helper()
	sink := &TestSink{}
	graph, err := Build(&Context{Sink: sink}, w, &placement)
	if err != nil {
		t.Fatalf("Build(%s) failed: %v", w.Name(), err)
	}
	return graph, sink
}

func measure(t *testing.T, w Widget, offered Size) Size {
	t.Helper()
	size, err := (&Context{}).Measure(w, offered)
	if err != nil {
		t.Fatalf("Measure(%s) failed: %v", w.Name(), err)
	}
	return size
}

// content drops surface identity so that trees from different frames compare.
func content(g *Graph) *tree.Tree[string] {
	return tree.Apply(g.Tree, func(surface device.Surface) string {
		if surface == nil {
			return ""
		}
		return surface.(*TestSurface).String()
	})
}

func leaves(g *Graph) []*TestSurface {
	result := []*TestSurface{}
	g.Walk(func(surface device.Surface) {
		if surface != nil {
			result = append(result, surface.(*TestSurface))
		}
	})
	return result
}
