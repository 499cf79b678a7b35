package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"sowon/internal/cli"
	"sowon/internal/core/model"
	"sowon/internal/core/timekeeper"
	"sowon/internal/logger"
	"sowon/internal/session"
	"sowon/internal/storage"
	"sowon/internal/ui/atlas"
	"sowon/internal/ui/overlay"
	"sowon/internal/ui/preferences"
	"sowon/internal/ui/terminal"
	"sowon/internal/ui/tray"
	"sowon/resources"
)

const (
	appName = "sowon"
	appID   = "io.github.sowon"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config, err := cli.ParseArgs(args)
	if errors.Is(err, cli.ErrUsage) {
		cli.PrintUsage(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	log := logger.New(logger.LevelNormal, os.Stderr)
	settings, err := storage.LoadSettings(appName, log)
	if err != nil {
		log.Warn("settings: %v, using defaults", err)
	}
	log.SetLevel(settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Terminal {
		// Log lines would tear the alternate screen.
		log.SetLevel(logger.LevelOff)
		reason, err := terminal.Run(ctx, session.New(config, log), settings, log)
		return exitCode(reason, err)
	}

	sheet, err := resources.LoadAtlas(settings.AtlasPath)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	return runWindow(ctx, config, settings, sheet, log)
}

func runWindow(ctx context.Context, config model.Config, settings preferences.Settings, sheet *atlas.Atlas, log *logger.Logger) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp := app.NewWithID(appID)
	queue := overlay.NewQueue(log)

	windowConfig := overlay.DefaultConfig()
	windowConfig.Background = settings.BackgroundColor
	windowConfig.Fullscreen = settings.Fullscreen
	clockSession := session.New(config, log)
	if settings.Walker {
		sprites, bounds, err := resources.LoadWalker()
		if err != nil {
			log.Warn("walker disabled: %v", err)
		} else {
			windowConfig.Walker = &sprites
			clockSession.EnableWalker(bounds.Dx(), bounds.Dy())
		}
	}
	window := overlay.New(fyneApp, windowConfig, sheet, queue, log)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, queue, config.Mode)
	} else {
		log.Debug("system tray unsupported on this platform")
	}

	runner := session.NewRunner(clockSession, window, session.RunnerConfig{
		FrameInterval: settings.FrameInterval(),
		Tint:          settings.Tint,
		Log:           log,
		OnState: func(state timekeeper.State) {
			if trayManager != nil {
				fyne.Do(func() {
					trayManager.SetState(state)
				})
			}
		},
	})

	done := make(chan int, 1)
	go func() {
		done <- exitCode(runner.Run(ctx))
		fyne.Do(fyneApp.Quit)
	}()

	window.Show()
	fyneApp.Run()
	cancel()

	select {
	case code := <-done:
		return code
	default:
		return 0
	}
}

func exitCode(reason session.ExitReason, err error) int {
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}
