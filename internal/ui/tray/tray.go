package tray

import (
	"fmt"
	"strings"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Icons holds the tray icons for running and idle states.
type Icons struct {
	Active fyne.Resource
	Idle   fyne.Resource
}

// Manager keeps the system tray menu in sync with the timer. It implements
// timekeeper.PresentationPort.
type Manager struct {
	app        desktop.App
	title      string
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	label      string
	clock      string
	marks      int
	idle       bool
}

// New creates a tray manager and installs its menu.
func New(app desktop.App, title string, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		icons:     icons,
		callbacks: callbacks,
		idle:      true,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.refreshIcon()
	manager.refreshMenu()
	return manager
}

func (manager *Manager) DisplayTime(text string) {
	manager.clock = text
	manager.refreshStatus()
}

func (manager *Manager) DisplaySessionLabel(text string, _ model.Style) {
	wasIdle := manager.idle
	manager.label = text
	manager.idle = false
	if wasIdle {
		manager.refreshIcon()
	}
	manager.refreshStatus()
}

func (manager *Manager) DisplayProgressMarks(count int) {
	if count < 0 {
		count = 0
	}
	manager.marks = count
	manager.refreshStatus()
}

func (manager *Manager) DisplayIdle() {
	manager.label = ""
	manager.clock = ""
	manager.idle = true
	manager.refreshIcon()
	manager.refreshStatus()
}

// Status returns the current status line shown in the tray menu.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = "Status: " + manager.statusText()
	manager.refreshMenu()
}

func (manager *Manager) statusText() string {
	if manager.idle {
		return "idle"
	}
	parts := []string{strings.ToLower(manager.label)}
	if manager.clock != "" {
		parts = append(parts, manager.clock)
	}
	status := strings.Join(parts, " ")
	if manager.marks > 0 {
		status = fmt.Sprintf("%s (%d done)", status, manager.marks)
	}
	return status
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Active
	if manager.idle {
		icon = manager.icons.Idle
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show", manager.invoke(manager.callbacks.OnShow)),
		fyne.NewMenuItem("Start", manager.invoke(manager.callbacks.OnStart)),
		fyne.NewMenuItem("Reset", manager.invoke(manager.callbacks.OnReset)),
		fyne.NewMenuItem("Preferences", manager.invoke(manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", manager.invoke(manager.callbacks.OnQuit)),
	))
}

func (manager *Manager) invoke(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
