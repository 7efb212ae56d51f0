package main

import (
	"compot/app"
	"compot/device"
	w "compot/widgets"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

const demoDuration = 10 * time.Second

// demo is touched only from the app's event loop: by the view and by the
// key observer.
type demo struct {
	keys    int
	lastKey string
	restart time.Duration
}

func (d *demo) progress(elapsed time.Duration) float64 {
	return float64(elapsed-d.restart) / float64(demoDuration)
}

func (d *demo) onKey(key *tcell.EventKey) bool {
	d.keys++
	d.lastKey = key.Name()
	return false
}

func (d *demo) view(frame app.Frame) w.Widget {
	if d.progress(frame.Elapsed) > 1.2 {
		d.restart = frame.Elapsed
	}
	progress := d.progress(frame.Elapsed)

	return w.Column(
		w.Row(w.Text("compot").Bold().Align(w.AlignCenter).Layout(w.Fill)),
		w.StatusBar(
			w.Text("ok").Color(device.Ok),
			w.Text("warning").Color(device.Warning),
			w.Text("error").Color(device.Error),
		),
		w.Row(
			w.Text(" info ").Color(device.InfoInverted),
			w.Text(" ok ").Color(device.OkInverted),
			w.Text(" warning ").Color(device.WarningInverted),
			w.Text(" error ").Color(device.ErrorInverted),
		).Layout(w.Fill).Spacing(w.SpaceBetween),
		w.ProgressBar(progress),
		w.Row(w.ProgressBar(progress)).Layout(w.Fill),
		w.Row(
			w.Text("left").Underline(),
			w.Text("right").Italic().Align(w.AlignRight).Layout(w.Fill),
		),
		w.StatusBar(
			w.Text(fmt.Sprintf("FPS: %d", frame.FPS)),
			w.Text(fmt.Sprintf("frame %d", frame.Number)),
			w.Text(fmt.Sprintf("keys: %d %s", d.keys, d.lastKey)),
		),
		w.Text("Esc or Ctrl+C to quit").Italic(),
	)
}

const demoHeight = 8
