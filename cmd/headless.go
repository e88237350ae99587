package main

import (
	"context"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"pomodoro/internal/console"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

func runHeadless(ctx context.Context, logger *zap.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", zap.Error(err))
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	schedule := model.DefaultSchedule()

	dispatcher := notify.NewDispatcher(notify.NewTerminalNotifier(os.Stdout, interactive), schedule, logger.Named("notify"), 8)
	dispatcher.SetEnabled(settings.NotificationsEnabled)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	engine := pomodoro.New(schedule, pomodoro.Options{
		Notifier: dispatcher,
		Logger:   logger.Named("engine"),
	})

	session := console.New(engine, os.Stdin, os.Stdout, console.Config{Live: interactive}, logger.Named("console"))
	return session.Run(ctx)
}
