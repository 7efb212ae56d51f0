// Package app drives a root widget on a full screen terminal: every tick it
// builds the view for the current screen size, renders it and shows it.
package app

import (
	"compot/device"
	dtcell "compot/device/tcell"
	"compot/lifecycle"
	"compot/memo"
	"compot/stream"
	"compot/widgets"
	"context"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

var Logger = log.New(io.Discard, "", 0)

const DefaultFPS = 60

// Frame describes the frame a view is asked to produce.
type Frame struct {
	Number  int
	Size    widgets.Size
	Elapsed time.Duration
	FPS     int
}

// View returns the root widget of a frame.
type View func(frame Frame) widgets.Widget

// KeyObserver sees every key before the app does. Returning true consumes the key.
type KeyObserver func(key *tcell.EventKey) bool

type App struct {
	screen   tcell.Screen
	device   *dtcell.Device
	view     View
	observer KeyObserver
	fps      int

	events *stream.Stream[inEvent]
	memo   *memo.Cache[widgets.Size]

	started  time.Time
	lastTick time.Time
	frames   int
	prevTick time.Time
	ticks    int
	measured int
	sync     bool
}

type inEvent interface {
	incoming()
}

type tcellEvent struct {
	tcell.Event
}

func (tcellEvent) incoming() {}

type tickEvent time.Time

func (tickEvent) incoming() {}

type quitEvent struct{}

func (quitEvent) incoming() {}

// New prepares an app on an initialized screen. Run takes ownership of the
// screen and finalizes it on return.
func New(screen tcell.Screen, theme device.Theme, view View) *App {
	return &App{
		screen: screen,
		device: dtcell.NewDevice(screen, theme),
		view:   view,
		fps:    DefaultFPS,
		events: stream.NewStream[inEvent]("app"),
		memo:   memo.New[widgets.Size](),
	}
}

func (a *App) FPS(fps int) *App {
	if fps > 0 {
		a.fps = fps
	}
	return a
}

func (a *App) OnKey(observer KeyObserver) *App {
	a.observer = observer
	return a
}

// Quit asks a running app to stop after the events queued so far.
func (a *App) Quit() {
	a.events.Push(quitEvent{})
}

// Run handles events and draws frames until the app quits, the context is
// cancelled or a frame fails to build. A frame error is returned as is.
func (a *App) Run(ctx context.Context) error {
	lc := lifecycle.New(ctx)
	lc.Go(a.pollEvents)
	lc.Go(a.tick)
	lc.Go(func(ctx context.Context) {
		<-ctx.Done()
		a.events.Close()
	})

	err := a.handleEvents()

	a.screen.Fini()
	lc.Stop()
	return err
}

func (a *App) handleEvents() error {
	for {
		event, ok := a.events.Pull()
		if !ok {
			return nil
		}
		events := append([]inEvent{event}, a.events.PullAll()...)
		render := false
		for _, event := range events {
			switch event := event.(type) {
			case tickEvent:
				a.handleTick(time.Time(event))
				render = true

			case tcellEvent:
				quit := a.handleTcellEvent(event.Event)
				if quit {
					return nil
				}
				render = render || a.sync

			case quitEvent:
				return nil

			default:
				log.Panicf("### unhandled app event: %T", event)
			}
		}
		if render {
			if err := a.render(); err != nil {
				return err
			}
		}
	}
}

func (a *App) handleTcellEvent(event tcell.Event) (quit bool) {
	switch event := event.(type) {
	case *tcell.EventResize:
		a.sync = true

	case *tcell.EventKey:
		Logger.Printf("app: key %q %v %q", event.Name(), event.Modifiers(), event.Rune())
		if a.observer != nil && a.observer(event) {
			return false
		}
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return true
		}
	}
	return false
}

func (a *App) handleTick(now time.Time) {
	if a.started.IsZero() {
		a.started = now
		a.prevTick = now
	}
	a.lastTick = now
	a.ticks++
	if dur := now.Sub(a.prevTick); dur >= time.Second {
		a.measured = int(float64(a.ticks) / dur.Seconds())
		a.prevTick = now
		a.ticks = 0
	}
}

func (a *App) render() error {
	width, height := a.screen.Size()
	a.frames++
	frame := Frame{
		Number:  a.frames,
		Size:    widgets.Size{W: width, H: height},
		Elapsed: a.lastTick.Sub(a.started),
		FPS:     a.measured,
	}

	a.screen.Clear()
	ctx := &widgets.Context{Sink: a.device, Memo: a.memo}
	if err := Draw(ctx, a.view(frame), frame.Size); err != nil {
		Logger.Printf("app: frame %d: %v", frame.Number, err)
		return err
	}
	if a.sync {
		a.device.Sync()
		a.sync = false
	} else {
		a.device.Show()
	}
	return nil
}

// Draw builds root over the whole area of size and flushes its surfaces.
func Draw(ctx *widgets.Context, root widgets.Widget, size widgets.Size) error {
	graph, err := widgets.Build(ctx, root, &widgets.Placement{W: size.W, H: size.H})
	if err != nil {
		return err
	}
	graph.Render()
	return nil
}

func (a *App) pollEvents(ctx context.Context) {
	for {
		event := a.screen.PollEvent()
		if event == nil {
			return
		}
		a.events.Push(tcellEvent{event})
	}
}

func (a *App) tick(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			a.events.Push(tickEvent(now))
		}
	}
}
