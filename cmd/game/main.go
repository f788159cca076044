package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/vrpong/internal/application/game"
	"github.com/younwookim/vrpong/internal/application/replay"
	"github.com/younwookim/vrpong/internal/application/session"
	"github.com/younwookim/vrpong/internal/infrastructure/config"
	"github.com/younwookim/vrpong/internal/infrastructure/logging"
	"github.com/younwookim/vrpong/internal/infrastructure/render"
	"github.com/younwookim/vrpong/internal/infrastructure/xrsim"
	"github.com/younwookim/vrpong/internal/ui/prompt"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	// Parse command line flags
	logLevel := flag.String("log-level", env.LogLevel, "Log level: error, warn, info, debug")
	recordFlag := flag.String("record", "", "Record the frame clock to file (e.g., -record trace.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded frame clock (e.g., -replay trace.json)")
	flag.Parse()

	logger := logging.NewLogger(*logLevel, os.Stderr)
	slog.SetDefault(logger)

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	face, err := prompt.LoadFace(prompt.DefaultFontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	platform := xrsim.New(xrsim.Options{
		Supported: env.XRSupported,
		Deny:      env.XRDeny,
		Latency:   env.XRLatency,
		Features:  env.XRFeatures,
		Logger:    logger.With("component", "xrsim"),
	})
	sessions := session.NewManager(platform, logger.With("component", "session"))
	vrPrompt := prompt.New(sessions, face)

	controls := &hostControls{logger: logger}
	opts := game.Options{
		Sessions: sessions,
		Prompt:   vrPrompt,
		Display:  cfg.Display,
		Rules:    cfg.Rules,
		Demo:     cfg.Demo,
		Logger:   logger.With("component", "game"),
	}

	if *replayFlag != "" {
		trace, err := replay.LoadTrace(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load trace: %v", err)
		}
		controls.replayer = replay.NewReplayer(*trace)
		opts.Clock = controls.replayer
		opts.Recorder = controls.replayer
		logger.Info("replay enabled", "file", *replayFlag, "frames", controls.replayer.TotalFrames())
	} else if *recordFlag != "" {
		controls.recorder = replay.NewRecorder()
		controls.recordFilename = *recordFlag
		opts.Recorder = controls.recorder
		logger.Info("recording enabled", "file", *recordFlag)
	}

	var host *render.Renderer
	opts.NewRenderer = func(_ context.Context, width, height int) (game.Renderer, error) {
		r, err := render.New(render.Options{
			Width:         width,
			Height:        height,
			EyeSeparation: cfg.Display.Stereo.EyeSeparation,
		})
		if err != nil {
			return nil, err
		}
		r.AddOverlay(vrPrompt)
		r.AddOverlay(controls)
		host = r
		return r, nil
	}

	g := game.New(opts)
	controls.game = g

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	g.Start(ctx)
	if !g.Running() {
		log.Fatal("Game failed to start")
	}
	controls.host = host

	go func() {
		<-ctx.Done()
		controls.interrupt()
	}()

	// Set up ebiten
	window := cfg.Display.Window
	ebiten.SetWindowSize(window.ScreenWidth, window.ScreenHeight)
	ebiten.SetWindowTitle(window.Title)
	if window.Framerate > 0 {
		ebiten.SetTPS(window.Framerate)
	}
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// Run game
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}

	controls.quit()
	controls.saveRecording()
}
