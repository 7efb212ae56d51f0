package widgets

import (
	"compot/device"
	"fmt"
	"io"
	"log"
	"reflect"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

var Logger = log.New(io.Discard, "", 0)

// Widget is an immutable description of a widget instance. Measure must be
// pure: the same offer always yields the same size.
type Widget interface {
	Name() string
	Measure(ctx *Context, offered Size) (Size, error)
	Build(ctx *Context, placement Placement) (*Graph, error)
	ToString(buf *strings.Builder, offset string)
}

// Memo stores measured sizes. Both memo.Cache[Size] and memo.Locked[Size]
// satisfy it.
type Memo interface {
	Get(key uint64) (Size, bool)
	Put(key uint64, size Size)
}

// Context carries the collaborators of a frame. The zero value measures
// without memoization and cannot build leaves.
type Context struct {
	Sink    device.Sink
	Palette device.Palette
	Memo    Memo
}

// Build resolves a root widget into a render tree. The root has no parent
// to grant it space, so the placement is required.
func Build(ctx *Context, root Widget, placement *Placement) (*Graph, error) {
	if root == nil {
		return nil, layoutError("Build", ErrMissingRoot)
	}
	if placement == nil {
		return nil, layoutError(root.Name(), ErrMissingPlacement)
	}
	return ctx.Place(root, *placement)
}

// Measure asks a widget for its size, going through the memo when there is one.
func (ctx *Context) Measure(w Widget, offered Size) (Size, error) {
	if ctx.Memo == nil {
		return w.Measure(ctx, offered)
	}
	key, err := Key(w, offered)
	if err != nil {
		Logger.Printf("widgets: cannot hash %s: %v", w.Name(), err)
		return w.Measure(ctx, offered)
	}
	if size, ok := ctx.Memo.Get(key); ok {
		return size, nil
	}
	size, err := w.Measure(ctx, offered)
	if err != nil {
		return Size{}, err
	}
	ctx.Memo.Put(key, size)
	return size, nil
}

// Place measures the widget again against the granted rectangle and builds
// it at the measured size.
func (ctx *Context) Place(w Widget, placement Placement) (*Graph, error) {
	size, err := ctx.Measure(w, placement.Size())
	if err != nil {
		return nil, err
	}
	placement.W, placement.H = size.W, size.H
	return w.Build(ctx, placement)
}

func (ctx *Context) palette() device.Palette {
	if ctx.Palette != nil {
		return ctx.Palette
	}
	if palette, ok := ctx.Sink.(device.Palette); ok {
		return palette
	}
	return device.Pairs
}

type memoKey struct {
	Name    string
	Widget  uint64
	Offered Size
}

// Key hashes a widget description together with an offer. Equal hashes are
// taken to mean equal keys.
func Key(w Widget, offered Size) (uint64, error) {
	widget, err := descriptorKey(w)
	if err != nil {
		return 0, err
	}
	return hashstructure.Hash(memoKey{Name: w.Name(), Widget: widget, Offered: offered}, hashstructure.FormatV2, nil)
}

// keyed is implemented by containers. They hash their children once, when
// they are constructed, so a key never walks the whole subtree.
type keyed interface {
	descriptorKey() uint64
}

type leafKey struct {
	Name   string
	Widget Widget
}

func descriptorKey(w Widget) (uint64, error) {
	if w == nil {
		return 0, nil
	}
	if k, ok := w.(keyed); ok {
		return k.descriptorKey(), nil
	}
	return hashstructure.Hash(leafKey{Name: w.Name(), Widget: w}, hashstructure.FormatV2, nil)
}

type containerKey struct {
	Name     string
	Config   any
	Children []uint64
}

func childrenKey(name string, config any, children []Widget) uint64 {
	keys := make([]uint64, len(children))
	for i, child := range children {
		key, err := descriptorKey(child)
		if err != nil {
			Logger.Printf("widgets: cannot hash child %d of %s: %v", i, name, err)
		}
		keys[i] = key
	}
	key, err := hashstructure.Hash(containerKey{Name: name, Config: config, Children: keys}, hashstructure.FormatV2, nil)
	if err != nil {
		Logger.Printf("widgets: cannot hash %s: %v", name, err)
	}
	return key
}

// Equal reports whether two descriptions have the same name and arguments.
func Equal(a, b Widget) bool {
	return a.Name() == b.Name() && reflect.DeepEqual(a, b)
}

func toString[W Widget](w W) string {
	buf := &strings.Builder{}
	w.ToString(buf, "")
	return buf.String()
}

func childrenToString(buf *strings.Builder, offset string, children []Widget) {
	for _, child := range children {
		child.ToString(buf, offset+"| ")
	}
}

func header(buf *strings.Builder, offset, name string, kwargs ...string) {
	fmt.Fprintf(buf, "%s%s<%s>\n", offset, name, strings.Join(kwargs, ", "))
}
