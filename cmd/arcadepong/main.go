package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"arcadepong/internal/audio"
	"arcadepong/internal/config"
	"arcadepong/internal/desktop"
	"arcadepong/internal/game"
	"arcadepong/internal/metrics"
	"arcadepong/internal/terminal"
)

var (
	configPath   = flag.String("config", "", "path to the TOML config file")
	frontendFlag = flag.String("frontend", "", "frontend: auto, terminal or desktop")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "arcadepong:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadConfig(*configPath); err != nil {
		return err
	}
	cfg := config.Config
	if *frontendFlag != "" {
		cfg.Frontend = *frontendFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	frontend := cfg.Frontend
	if frontend == "auto" {
		frontend = "desktop"
		if terminal.Interactive(os.Stdin) && terminal.Interactive(os.Stdout) {
			frontend = "terminal"
		}
	}

	closeLog, err := setupLogging(cfg, frontend)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec := metrics.NewRecorder(reg)
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg); err != nil {
				slog.Error("metrics", slog.Any("error", err))
			}
		}()
	}

	settings := audio.Settings{
		AssetsDir:         cfg.AssetsDir,
		SampleRate:        cfg.Audio.SampleRate,
		MasterVolume:      cfg.Audio.MasterVolume,
		MusicVolume:       cfg.Audio.MusicVolume,
		SynthesizeMissing: cfg.Audio.SynthesizeMissing,
	}

	opts := game.Options{
		Recorder: rec,
		Logger:   slog.Default(),
		Seed:     cfg.Seed,
	}

	switch frontend {
	case "terminal":
		return runTerminal(ctx, cfg, settings, opts, rec)
	default:
		return runDesktop(ctx, cfg, settings, opts)
	}
}

// setupLogging keeps log output off the screen the terminal frontend draws on.
func setupLogging(cfg config.Configuration, frontend string) (func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case frontend == "terminal":
		w = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	})))
	return closeFn, nil
}

func runTerminal(ctx context.Context, cfg config.Configuration, settings audio.Settings, opts game.Options, rec *metrics.Recorder) error {
	if err := terminal.CheckSize(os.Stdout); err != nil {
		return err
	}

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		sp, err := audio.NewSpeaker(settings)
		if err != nil {
			slog.Warn("audio disabled", slog.Any("error", err))
		} else {
			player = sp
		}
	}
	defer player.Close()
	opts.Audio = player

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	s := game.NewSession(opts)
	return terminal.Run(ctx, screen, s, terminal.Options{
		TickRate: cfg.TickRate,
		Overruns: rec,
	})
}

func runDesktop(ctx context.Context, cfg config.Configuration, settings audio.Settings, opts game.Options) error {
	var sound *desktop.Sound
	if cfg.Audio.Enabled {
		sound = desktop.NewSound(settings)
		defer sound.Close()
		opts.Audio = sound
	}

	s := game.NewSession(opts)
	return desktop.Run(ctx, s, desktop.Options{
		TickRate:   cfg.TickRate,
		Scale:      cfg.WindowScale,
		Fullscreen: cfg.Fullscreen,
		Sound:      sound,
	})
}
