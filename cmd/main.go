package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logging.New(os.Stderr, *debug)
	slog.SetDefault(logger)

	var mainWindow *window.Window
	guard, err := platform.AcquireSingleInstance(appName, func() {
		fyne.Do(func() {
			if mainWindow != nil {
				mainWindow.Show()
			}
		})
	})
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("another instance is running, activated it")
			return
		}
		logger.Error("single instance", slog.String("error", err.Error()))
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("using default settings", slog.String("error", err.Error()))
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.Icon(false))

	clock := window.NewMainClock()
	fyneApp.Lifecycle().SetOnStopped(clock.Stop)

	var scheduler *timekeeper.Scheduler
	start := func() { scheduler.Start() }
	reset := func() { scheduler.Reset() }

	mainWindow = window.New(fyneApp, appName, resources.Tomato(), window.Callbacks{
		OnStart: start,
		OnReset: reset,
	})
	ports := []timekeeper.PresentationPort{mainWindow}

	service := platform.NewService()
	prefsWindow := preferences.New(fyneApp, appName, settings, func(updated preferences.Settings) {
		if updated.Autostart != settings.Autostart {
			if err := platform.ApplyAutostart(service, appName, updated.Autostart); err != nil {
				logger.Error("update autostart", slog.String("error", err.Error()))
				updated.Autostart = settings.Autostart
			}
		}
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Error("save settings", slog.String("error", err.Error()))
		}
	})

	mainWindow.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Timer",
			fyne.NewMenuItem("Start", start),
			fyne.NewMenuItem("Reset", reset),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Preferences", prefsWindow.Show),
		),
	))

	hasTray := false
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, appName, tray.Icons{
			Active: resources.Icon(false),
			Idle:   resources.Icon(true),
		}, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnStart:       start,
			OnReset:       reset,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		ports = append(ports, trayManager)
		mainWindow.SetCloseIntercept(mainWindow.Hide)
		hasTray = true
	} else {
		logger.Info("system tray unsupported on this platform")
		mainWindow.SetMaster()
	}

	scheduler = timekeeper.New(timekeeper.Broadcast(ports...), clock, timekeeper.Config{
		Tick:   time.Second,
		Logger: logger,
	})
	scheduler.OnSessionStart(func(kind model.SessionKind) {
		if settings.Notify {
			fyneApp.SendNotification(window.Notification(appName, kind))
		}
	})

	if !settings.StartMinimized || !hasTray {
		mainWindow.Show()
	}
	fyneApp.Run()
}
