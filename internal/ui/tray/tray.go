package tray

import (
	"fmt"

	"pomodoro/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Pomodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle      func()
	OnReset       func()
	OnSkip        func()
	OnShowTimer   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	countItem  *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	showItem   *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	snapshot   pomodoro.Snapshot
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Focus 25:00", nil)
	manager.statusItem.Disabled = true
	manager.countItem = fyne.NewMenuItem("Pomodoros: 0", nil)
	manager.countItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))
	manager.skipItem = fyne.NewMenuItem("Skip", invoke(&manager.callbacks.OnSkip))
	manager.showItem = fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShowTimer))
	manager.prefsItem = fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Update reflects snapshot in the menu. It must run on the UI thread.
func (manager *Manager) Update(snapshot pomodoro.Snapshot) {
	manager.snapshot = snapshot
	manager.statusItem.Label = StatusLabel(snapshot)
	manager.countItem.Label = fmt.Sprintf("Pomodoros: %d", snapshot.CompletedWorkSessions)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.resetItem.Disabled = snapshot.Running
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		manager.countItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.prefsItem,
		manager.quitItem,
	)
}

// StatusLabel renders the tray status line, for example "Focus 24:13 (paused)".
func StatusLabel(snapshot pomodoro.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.DisplayLabel(), snapshot.FormattedTime())
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
