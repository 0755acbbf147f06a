package window

import (
	"testing"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2/test"
)

func TestWindowPresentationPort(t *testing.T) {
	app := test.NewTempApp(t)
	win := New(app, "Pomodoro", nil, Callbacks{})

	if win.titleLabel.Text != "Timer" || win.clockLabel.Text != "00:00" {
		t.Fatalf("initial labels %q %q", win.titleLabel.Text, win.clockLabel.Text)
	}

	win.DisplaySessionLabel("Work", model.StyleWork)
	win.DisplayTime("25:00")
	if win.titleLabel.Text != "Work" || win.titleLabel.Color != colorGreen {
		t.Fatalf("title = %q %v", win.titleLabel.Text, win.titleLabel.Color)
	}
	if win.clockLabel.Text != "25:00" {
		t.Fatalf("clock = %q", win.clockLabel.Text)
	}

	win.DisplaySessionLabel("Break", model.StyleShortBreak)
	if win.titleLabel.Color != colorPink {
		t.Fatalf("short break color = %v", win.titleLabel.Color)
	}
	win.DisplaySessionLabel("Break", model.StyleLongBreak)
	if win.titleLabel.Color != colorRed {
		t.Fatalf("long break color = %v", win.titleLabel.Color)
	}

	win.DisplayProgressMarks(3)
	if win.marksLabel.Text != "✔✔✔" {
		t.Fatalf("marks = %q", win.marksLabel.Text)
	}
	win.DisplayProgressMarks(-1)
	if win.marksLabel.Text != "" {
		t.Fatalf("marks = %q", win.marksLabel.Text)
	}

	win.DisplayIdle()
	if win.titleLabel.Text != "Timer" || win.titleLabel.Color != colorGreen || win.clockLabel.Text != "00:00" {
		t.Fatalf("idle = %q %v %q", win.titleLabel.Text, win.titleLabel.Color, win.clockLabel.Text)
	}
}

func TestWindowButtons(t *testing.T) {
	app := test.NewTempApp(t)
	starts, resets := 0, 0
	win := New(app, "Pomodoro", nil, Callbacks{
		OnStart: func() { starts++ },
		OnReset: func() { resets++ },
	})

	test.Tap(win.startButton)
	test.Tap(win.startButton)
	test.Tap(win.resetButton)

	if starts != 2 || resets != 1 {
		t.Fatalf("starts = %d resets = %d", starts, resets)
	}
}

func TestWindowButtonsWithoutCallbacks(t *testing.T) {
	app := test.NewTempApp(t)
	win := New(app, "Pomodoro", nil, Callbacks{})

	test.Tap(win.startButton)
	test.Tap(win.resetButton)
}
