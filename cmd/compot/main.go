package main

import (
	"compot/app"
	"compot/config"
	"compot/device/ansi"
	"compot/device/logger"
	"compot/memo"
	"compot/widgets"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Log != "" {
		file, err := os.Create(cfg.Log)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer file.Close()
		setLogOutput(file)
	}

	d := &demo{}
	switch {
	case cfg.Dry:
		err = dryRun(cfg, d, log.Default())
	case cfg.Once:
		err = once(cfg, d, os.Stdout)
	default:
		err = run(cfg, d)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setLogOutput(out io.Writer) {
	l := log.New(out, "", log.Lmicroseconds)
	app.Logger = l
	memo.Logger = l
	widgets.Logger = l
}

func run(cfg config.Config, d *demo) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	return app.New(screen, cfg.Theme, d.view).
		FPS(cfg.FPS).
		OnKey(d.onKey).
		Run(context.Background())
}

// demoFrame is the frame half way through the progress animation.
func demoFrame(cfg config.Config) app.Frame {
	return app.Frame{
		Number:  1,
		Size:    widgets.Size{W: cfg.Width, H: demoHeight},
		Elapsed: demoDuration / 2,
		FPS:     cfg.FPS,
	}
}

// dryRun logs what drawing a frame would do instead of drawing it.
func dryRun(cfg config.Config, d *demo, out *log.Logger) error {
	sink := logger.NewDevice(out)
	frame := demoFrame(cfg)
	if err := app.Draw(&widgets.Context{Sink: sink}, d.view(frame), frame.Size); err != nil {
		return err
	}
	sink.Show()
	return nil
}

// once prints a frame as styled lines.
func once(cfg config.Config, d *demo, out io.Writer) error {
	canvas := ansi.NewCanvas(cfg.Width, demoHeight, cfg.Theme, termenv.WithProfile(termenv.EnvColorProfile()))
	frame := demoFrame(cfg)
	ctx := &widgets.Context{Sink: canvas, Memo: memo.New[widgets.Size]()}
	if err := app.Draw(ctx, d.view(frame), frame.Size); err != nil {
		return err
	}
	return canvas.Render(out)
}

