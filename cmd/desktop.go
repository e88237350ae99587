package main

import (
	"context"

	"go.uber.org/zap"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runDesktop(ctx context.Context, logger *zap.Logger) error {
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

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	schedule := model.DefaultSchedule()
	dispatcher := notify.NewDispatcher(notify.NewFyneNotifier(fyneApp), schedule, logger.Named("notify"), 8)
	dispatcher.SetEnabled(settings.NotificationsEnabled)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	engine := pomodoro.New(schedule, pomodoro.Options{
		Notifier: dispatcher,
		Logger:   logger.Named("engine"),
	})
	defer engine.Close()

	timerWindow := timerview.New(fyneApp, engine)
	timerWindow.SetConfirmSkip(settings.ConfirmSkip)

	autostart := platform.NewService()
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Warn("save settings", zap.Error(err))
		}
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			if err := platform.SyncAutostart(autostart, appName, updated.LaunchAtLogin); err != nil {
				logger.Warn("update login item", zap.Error(err))
			}
		}
		dispatcher.SetEnabled(updated.NotificationsEnabled)
		timerWindow.SetConfirmSkip(updated.ConfirmSkip)
		settings = updated
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnToggle: func() {
				if engine.IsRunning() {
					engine.Pause()
				} else {
					engine.Start()
				}
			},
			OnReset:       engine.Reset,
			OnSkip:        engine.Skip,
			OnShowTimer:   timerWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
	} else {
		logger.Info("system tray unsupported, closing the timer window quits")
		timerWindow.SetOnClose(fyneApp.Quit)
	}

	render := func(snapshot pomodoro.Snapshot) {
		timerWindow.Update(snapshot)
		if trayManager != nil {
			trayManager.Update(snapshot)
			desktopApp.SetSystemTrayIcon(resources.StatusIcon(snapshot.Running, snapshot.Session.IsBreak()))
		}
	}
	render(engine.Snapshot())

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				render(snapshot)
			})
		}
	}()

	appDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(fyneApp.Quit)
		case <-appDone:
		}
	}()

	if !hidden || !hasTray {
		timerWindow.Show()
	}
	fyneApp.Run()
	close(appDone)
	return nil
}
