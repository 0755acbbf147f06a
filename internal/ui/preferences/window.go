package preferences

import (
	"fmt"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window         fyne.Window
	settings       Settings
	onSave         func(Settings)
	notify         *widget.Check
	autostart      *widget.Check
	startMinimized *widget.Check
	saveButton     *widget.Button
	cancelButton   *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, title string, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow(title + " Settings")

	notify := widget.NewCheck("Notify when a session starts", nil)
	autostart := widget.NewCheck("Launch at login", nil)
	startMinimized := widget.NewCheck("Start minimized to tray", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		notify,
		autostart,
		startMinimized,
		widget.NewLabelWithStyle("Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(sessionSummary(model.Work)),
		widget.NewLabel(sessionSummary(model.ShortBreak)),
		widget.NewLabel(sessionSummary(model.LongBreak)+", every 4th break"),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 300))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:         window,
		onSave:         onSave,
		notify:         notify,
		autostart:      autostart,
		startMinimized: startMinimized,
		saveButton:     saveButton,
		cancelButton:   cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.notify.SetChecked(settings.Notify)
	prefs.autostart.SetChecked(settings.Autostart)
	prefs.startMinimized.SetChecked(settings.StartMinimized)
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := Settings{
		Notify:         prefs.notify.Checked,
		Autostart:      prefs.autostart.Checked,
		StartMinimized: prefs.startMinimized.Checked,
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func sessionSummary(kind model.SessionKind) string {
	names := map[model.SessionKind]string{
		model.Work:       "Work",
		model.ShortBreak: "Short break",
		model.LongBreak:  "Long break",
	}
	return fmt.Sprintf("%s: %d min", names[kind], kind.Seconds()/60)
}
