package window

import (
	"fmt"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
)

// Notification builds the system notification sent when a session begins.
func Notification(appName string, kind model.SessionKind) *fyne.Notification {
	minutes := kind.Seconds() / 60
	var content string
	switch kind {
	case model.Work:
		content = fmt.Sprintf("Time to focus: %d minutes of work.", minutes)
	case model.ShortBreak:
		content = fmt.Sprintf("Take a short break: %d minutes.", minutes)
	case model.LongBreak:
		content = fmt.Sprintf("Take a long break: %d minutes. Step away from the screen.", minutes)
	default:
		content = "Timer stopped."
	}
	return fyne.NewNotification(appName, content)
}
