package widgets

import (
	"compot/device"
	"compot/memo"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBuildRequiresPlacement(t *testing.T) {
	_, err := Build(&Context{Sink: &TestSink{}}, Text("root"), nil)
	if !errors.Is(err, ErrMissingPlacement) {
		t.Fatal("Expected ErrMissingPlacement, got", err)
	}
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) || layoutErr.Widget != "Text" {
		t.Error("Expected LayoutError naming Text, got", err)
	}
	if err.Error() != "Text: missing placement" {
		t.Error("Unexpected message", err.Error())
	}
}

func TestBuildRequiresRoot(t *testing.T) {
	placement := XYWH(0, 0, 10, 1)
	_, err := Build(&Context{Sink: &TestSink{}}, nil, &placement)
	if !errors.Is(err, ErrMissingRoot) {
		t.Error("Expected ErrMissingRoot, got", err)
	}
}

func TestBuildWithoutSink(t *testing.T) {
	placement := XYWH(0, 0, 10, 1)
	_, err := Build(&Context{}, Row(Text("a")), &placement)
	if !errors.Is(err, ErrMissingSink) {
		t.Error("Expected ErrMissingSink, got", err)
	}
}

func TestPlaceClampsToMeasurement(t *testing.T) {
	graph, sink := build(t, Text("abc"), XYWH(4, 2, 50, 7))
	if graph.Surfaces() != 1 {
		t.Fatal("Expected one surface, got", graph.Surfaces())
	}
	s := sink.surfaces[0]
	if s.X != 4 || s.Y != 2 || s.W != 3 || s.H != 1 {
		t.Error("Unexpected surface", s)
	}
}

func TestRender(t *testing.T) {
	graph, sink := build(t, Column(Row(Text("a"), Text("b")), Text("c")), XYWH(0, 0, 10, 5))
	graph.Render()
	if len(sink.surfaces) != 3 {
		t.Fatal("Expected 3 surfaces, got", len(sink.surfaces))
	}
	for _, s := range sink.surfaces {
		if s.Flushed != 1 {
			t.Errorf("surface %v flushed %d times", s, s.Flushed)
		}
	}
	// Column -> Row -> a, b; Text c
	if graph.Len() != 5 {
		t.Error("Expected 5 nodes, got", graph.Len())
	}
}

func TestIdempotentBuild(t *testing.T) {
	view := func() Widget {
		return Column(
			StatusBar(Text("left"), Text("mid").Bold(), Text("right")),
			ProgressBar(0.42),
			Text("centered").Layout(Fill).Align(AlignCenter),
		)
	}
	first, _ := build(t, view(), XYWH(1, 1, 30, 3))
	second, _ := build(t, view(), XYWH(1, 1, 30, 3))
	if !reflect.DeepEqual(content(first), content(second)) {
		t.Errorf("Expected equal trees:\n%s\n%s", content(first), content(second))
	}
}

func TestMemoizedMeasure(t *testing.T) {
	cache := memo.New[Size]()
	ctx := &Context{Sink: &TestSink{}, Memo: cache}
	w := Row(Text("hello"), Text(" world"))

	size, err := ctx.Measure(w, Size{W: 40, H: 1})
	if err != nil || size != (Size{W: 11, H: 1}) {
		t.Fatal("Unexpected measurement", size, err)
	}
	// the row and both texts
	if cache.Len() != 3 {
		t.Error("Expected 3 memoized sizes, got", cache.Len())
	}

	key, err := Key(w, Size{W: 40, H: 1})
	if err != nil {
		t.Fatal(err)
	}
	cache.Put(key, Size{W: 99, H: 1})
	if size, _ := ctx.Measure(w, Size{W: 40, H: 1}); size.W != 99 {
		t.Error("Expected the memoized size, got", size)
	}
	if size, _ := ctx.Measure(w, Size{W: 5, H: 1}); size.W != 5 {
		t.Error("Expected a fresh measurement for another offer, got", size)
	}
}

func TestMemoizedBuildMatchesPlain(t *testing.T) {
	view := Column(Text("one"), Row(Text("two"), Text("three")).Layout(Fill).Spacing(SpaceBetween), ProgressBar(0.7))
	placement := XYWH(0, 0, 24, 4)

	plain, _ := build(t, view, placement)
	for frame := 0; frame < 10; frame++ {
		graph, err := Build(&Context{Sink: &TestSink{}, Memo: memo.New[Size]()}, view, &placement)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(content(plain), content(graph)) {
			t.Fatalf("frame %d: memoized tree differs:\n%s\n%s", frame, content(plain), content(graph))
		}
	}
}

func TestKey(t *testing.T) {
	a, _ := Key(Text("a").Bold(), Size{W: 3, H: 1})
	b, _ := Key(Text("a").Bold(), Size{W: 3, H: 1})
	c, _ := Key(Text("a"), Size{W: 3, H: 1})
	d, _ := Key(Row(Text("a").Bold()), Size{W: 3, H: 1})
	if a != b {
		t.Error("Expected equal keys for equal descriptions")
	}
	if a == c || a == d {
		t.Error("Expected different keys for different descriptions")
	}
	if !Equal(Text("x"), Text("x")) || Equal(Text("x"), Text("y")) {
		t.Error("Unexpected Equal result")
	}
}

func TestKeyNestedChildren(t *testing.T) {
	offer := Size{W: 10, H: 1}
	keys := map[uint64]string{}
	for name, w := range map[string]Widget{
		"short":     Row(Row(Text("ab")), Text("x")),
		"long":      Row(Row(Text("abcd")), Text("x")),
		"fill":      Row(Row(Text("ab")), Text("x")).Layout(Fill),
		"column":    Column(Row(Text("ab")), Text("x")),
		"statusBar": StatusBar(Row(Text("ab")), Text("x")),
		"bold":      Row(Row(Text("ab").Bold()), Text("x")),
	} {
		key, err := Key(w, offer)
		if err != nil {
			t.Fatal(err)
		}
		if other, ok := keys[key]; ok {
			t.Errorf("%s and %s share a key", name, other)
		}
		keys[key] = name
	}

	again, _ := Key(Row(Row(Text("ab")), Text("x")).Layout(Fill), offer)
	if keys[again] != "fill" {
		t.Error("Expected rebuilt description to reuse its key, got", keys[again])
	}

	ctx := &Context{Memo: memo.New[Size]()}
	short, _ := ctx.Measure(Row(Row(Text("ab")), Text("x")), offer)
	long, _ := ctx.Measure(Row(Row(Text("abcd")), Text("x")), offer)
	if short.W != 3 || long.W != 5 {
		t.Error("Expected widths 3 and 5 through a shared memo, got", short.W, long.W)
	}
}

func TestPalette(t *testing.T) {
	graph, _ := build(t, Text("x").Color(device.WarningInverted).Italic(), XYWH(0, 0, 5, 1))
	s := leaves(graph)[0]
	if s.Attr.Color() != device.WarningInverted || !s.Attr.Has(device.Italic) {
		t.Error("Unexpected attributes", s.Attr)
	}
}

func TestDescriptorString(t *testing.T) {
	w := Row(Text("hi").Bold(), Column(Text("x"))).Layout(Fill)
	expected := strings.Join([]string{
		"Row<layout=Fill, spacing=None>",
		`| Text<"hi", layout=FitContent, style=<color=Info, align=Left, bold>>`,
		"| Column<>",
		`| | Text<"x", layout=FitContent, style=<color=Info, align=Left>>`,
		"",
	}, "\n")
	if w.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, w.String())
	}
}

func TestGraphString(t *testing.T) {
	graph, _ := build(t, Row(Text("a")), XYWH(0, 0, 5, 1))
	expected := "Container\n| Surface(0:0 1x1 \"a\" Info)\n"
	if graph.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, graph.String())
	}
}
