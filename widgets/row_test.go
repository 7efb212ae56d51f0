package widgets

import (
	"errors"
	"testing"
)

func TestRowFitContent(t *testing.T) {
	w := Row(Text("abc"), Text("defgh"))
	for offer := 8; offer <= 20; offer++ {
		if size := measure(t, w, Size{W: offer, H: 1}); size != (Size{W: 8, H: 1}) {
			t.Errorf("offer %d: Expected 8x1, got %v", offer, size)
		}
	}
	if size := measure(t, w, Size{W: 6, H: 3}); size != (Size{W: 6, H: 1}) {
		t.Error("Expected 6x1, got", size)
	}
}

func TestRowFill(t *testing.T) {
	if size := measure(t, Row(Text("abc")).Layout(Fill), Size{W: 20, H: 4}); size != (Size{W: 20, H: 1}) {
		t.Error("Expected 20x1, got", size)
	}
	if size := measure(t, Row().Layout(Fill), Size{W: 20, H: 1}); size != (Size{W: 20, H: 1}) {
		t.Error("Expected 20x1 for an empty row, got", size)
	}
}

func TestRowInsufficientHeight(t *testing.T) {
	for _, w := range []Widget{Row(Text("a")), Row(Text("a")).Layout(Fill)} {
		if _, err := (&Context{}).Measure(w, Size{W: 10, H: 0}); !errors.Is(err, ErrInsufficientHeight) {
			t.Error("Expected ErrInsufficientHeight, got", err)
		}
	}
}

func TestRowOffsets(t *testing.T) {
	graph, _ := build(t, Row(Text("ab"), Text("cde"), Text("f")), XYWH(3, 7, 20, 1))
	expected := []struct{ x, w int }{{3, 2}, {5, 3}, {8, 1}}
	got := leaves(graph)
	if len(got) != len(expected) {
		t.Fatal("Expected", len(expected), "leaves, got", len(got))
	}
	for i, e := range expected {
		if got[i].X != e.x || got[i].W != e.w || got[i].Y != 7 {
			t.Errorf("child %d: Expected x=%d w=%d, got %v", i, e.x, e.w, got[i])
		}
	}
}

func TestRowSpaceBetween(t *testing.T) {
	w := Row(Text("aaaa"), Text("bbbbbb")).Layout(Fill).Spacing(SpaceBetween)
	graph, _ := build(t, w, XYWH(0, 0, 20, 1))
	got := leaves(graph)
	if got[0].X != 0 || got[1].X != 14 {
		t.Error("Expected offsets 0 and 14, got", got[0].X, got[1].X)
	}

	w = Row(Text("a"), Text("b"), Text("c")).Layout(Fill).Spacing(SpaceBetween)
	graph, _ = build(t, w, XYWH(0, 0, 10, 1))
	got = leaves(graph)
	// padding = (10 - 3) / 2 = 3
	if got[0].X != 0 || got[1].X != 4 || got[2].X != 8 {
		t.Error("Expected offsets 0, 4, 8, got", got[0].X, got[1].X, got[2].X)
	}
}

func TestRowSpaceBetweenSingleChild(t *testing.T) {
	graph, _ := build(t, Row(Text("only")).Layout(Fill).Spacing(SpaceBetween), XYWH(2, 0, 20, 1))
	got := leaves(graph)
	if len(got) != 1 || got[0].X != 2 || got[0].W != 4 {
		t.Error("Unexpected placement", got)
	}

	graph, _ = build(t, Row().Layout(Fill).Spacing(SpaceBetween), XYWH(0, 0, 20, 1))
	if graph.Surfaces() != 0 {
		t.Error("Expected no surfaces for an empty row")
	}
}

func TestRowPadding(t *testing.T) {
	r := Row().Spacing(SpaceBetween)
	for _, tc := range []struct {
		width    int
		widths   []int
		expected int
	}{
		{20, []int{4, 6}, 10},
		{20, []int{4}, 0},
		{20, nil, 0},
		{11, []int{1, 1, 1}, 4},
		{5, []int{4, 6}, 0},
	} {
		if p := r.padding(tc.width, tc.widths); p != tc.expected {
			t.Errorf("padding(%d, %v) = %d, want %d", tc.width, tc.widths, p, tc.expected)
		}
	}
	if p := Row().padding(20, []int{1, 2}); p != 0 {
		t.Error("Expected no padding without SpaceBetween, got", p)
	}
}

func TestRowClipsOverflow(t *testing.T) {
	graph, _ := build(t, Row(Text("hello"), Text("world")), XYWH(0, 0, 7, 1))
	got := leaves(graph)
	if got[0].W != 5 || got[1].X != 5 || got[1].W != 2 {
		t.Error("Unexpected placements", got)
	}
	if got[1].Text != "world" {
		t.Error("Expected the surface to receive the whole text, got", got[1].Text)
	}
}

func TestNestedRows(t *testing.T) {
	w := Row(Row(Text("ab"), Text("c")), Text("de"))
	if size := measure(t, w, Size{W: 40, H: 1}); size.W != 5 {
		t.Error("Expected width 5, got", size)
	}
	graph, _ := build(t, w, XYWH(0, 0, 40, 1))
	got := leaves(graph)
	if got[2].X != 3 {
		t.Error("Expected the outer text at 3, got", got[2].X)
	}
}

func TestRowWidths(t *testing.T) {
	for w := 0; w <= 30; w++ {
		row := Row(Text("foofoo"), Text("barbarbar"), Text("baz"))
		size := measure(t, row, Size{W: w, H: 1})
		if size.W != min(w, 18) {
			t.Error("Expected", min(w, 18), "got", size.W)
		}
	}
}
