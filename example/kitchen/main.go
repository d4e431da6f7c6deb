// Kitchen demonstrates the message row components against generated
// conversation data.
package main

import (
	"log/slog"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"

	"git.sr.ht/~larkspur/bubble/example/kitchen/gen"
	"git.sr.ht/~larkspur/bubble/profile"
	matchat "git.sr.ht/~larkspur/bubble/widget/material"
)

// Type alias common layout types for legibility.
type (
	C = layout.Context
	D = layout.Dimensions
)

var opts struct {
	Count      int         `long:"count" default:"100" description:"number of messages to generate"`
	Seed       int64       `long:"seed" default:"42" description:"seed for the data generator"`
	Palette    string      `long:"palette" default:"light" choice:"light" choice:"dark" description:"initial color palette"`
	Transcript string      `long:"transcript" description:"load the conversation from a YAML transcript instead of generating one"`
	Decorate   bool        `long:"decorate" description:"wrap bubbles in a 9-Patch surface"`
	Debug      bool        `long:"debug" description:"outline row layouts"`
	Profile    profile.Opt `long:"profile" default:"none" description:"profiling mode (none, cpu, mem, block, goroutine, mutex, trace, gio)"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
	}))
	log.Info("starting kitchen", "count", opts.Count, "seed", opts.Seed)

	var (
		w = app.NewWindow(
			app.Title("Chat"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		ops op.Ops
	)

	profiler := opts.Profile.NewProfiler()
	profiler.Start()
	defer profiler.Stop()

	th := matchat.NewTheme(gofont.Collection())
	if opts.Palette == "dark" {
		th.UsePalette(matchat.Dark)
	}

	g := gen.NewGenerator(opts.Seed, 5, 12)
	history := g.GenHistory(opts.Count)
	if opts.Transcript != "" {
		loaded, err := LoadTranscript(opts.Transcript, g)
		if err != nil {
			log.Error("loading transcript", "path", opts.Transcript, "error", err)
			os.Exit(1)
		}
		log.Info("loaded transcript", "path", opts.Transcript, "messages", len(loaded))
		history = loaded
	}

	ui := NewUI(UIConfig{
		Log:        log,
		Theme:      th,
		Gen:        g,
		History:    history,
		Invalidate: w.Invalidate,
		Decorate:   opts.Decorate,
		Debug:      opts.Debug,
	})

	go func() {
		// Event loop executes indefinitely, until the app is signalled
		// to quit. Integrate external services here.
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				if err := event.Err; err != nil {
					log.Error("premature window close", "error", err)
					profiler.Stop()
					os.Exit(1)
				}
				profiler.Stop()
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				ui.Layout(gtx)
				profiler.Record(gtx)
				event.Frame(&ops)
			}
		}
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}
