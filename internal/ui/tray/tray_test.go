package tray

import (
	"testing"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
)

type fakeDesktop struct {
	menu  *fyne.Menu
	icon  fyne.Resource
	icons int
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menu = menu
}

func (app *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) {
	app.icon = icon
	app.icons++
}

func (app *fakeDesktop) SetSystemTrayWindow(fyne.Window) {}

func (app *fakeDesktop) item(label string) *fyne.MenuItem {
	for _, item := range app.menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

var (
	activeIcon = fyne.NewStaticResource("active.svg", []byte("<svg/>"))
	idleIcon   = fyne.NewStaticResource("idle.svg", []byte("<svg/>"))
)

func TestManagerStatus(t *testing.T) {
	desktop := &fakeDesktop{}
	manager := New(desktop, "Pomodoro", Icons{Active: activeIcon, Idle: idleIcon}, Callbacks{})

	if manager.Status() != "Status: idle" || desktop.icon != idleIcon {
		t.Fatalf("initial status %q icon %v", manager.Status(), desktop.icon)
	}

	manager.DisplaySessionLabel("Work", model.StyleWork)
	manager.DisplayTime("24:13")
	if manager.Status() != "Status: work 24:13" {
		t.Fatalf("status = %q", manager.Status())
	}
	if desktop.icon != activeIcon {
		t.Fatal("active icon not set")
	}

	iconUpdates := desktop.icons
	manager.DisplaySessionLabel("Break", model.StyleShortBreak)
	manager.DisplayProgressMarks(2)
	if manager.Status() != "Status: break 24:13 (2 done)" {
		t.Fatalf("status = %q", manager.Status())
	}
	if desktop.icons != iconUpdates {
		t.Fatal("icon refreshed without leaving idle")
	}

	manager.DisplayIdle()
	manager.DisplayProgressMarks(0)
	if manager.Status() != "Status: idle" || desktop.icon != idleIcon {
		t.Fatalf("status %q icon %v", manager.Status(), desktop.icon)
	}
	if desktop.item("Status: idle") == nil {
		t.Fatal("menu not refreshed with status")
	}
}

func TestManagerCallbacks(t *testing.T) {
	desktop := &fakeDesktop{}
	calls := map[string]int{}
	record := func(name string) func() {
		return func() { calls[name]++ }
	}
	New(desktop, "Pomodoro", Icons{}, Callbacks{
		OnShow:        record("Show"),
		OnStart:       record("Start"),
		OnReset:       record("Reset"),
		OnPreferences: record("Preferences"),
		OnQuit:        record("Quit"),
	})

	for _, label := range []string{"Show", "Start", "Reset", "Preferences", "Quit"} {
		item := desktop.item(label)
		if item == nil {
			t.Fatalf("menu item %q missing", label)
		}
		item.Action()
		if calls[label] != 1 {
			t.Fatalf("%s called %d times", label, calls[label])
		}
	}
}

func TestManagerNilCallbacks(t *testing.T) {
	desktop := &fakeDesktop{}
	New(desktop, "Pomodoro", Icons{}, Callbacks{})
	desktop.item("Start").Action()
	if desktop.icon != nil {
		t.Fatal("nil icons must not be installed")
	}
}
