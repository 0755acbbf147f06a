package preferences

// Settings defines editable user preferences. Session lengths are fixed.
type Settings struct {
	Notify         bool
	Autostart      bool
	StartMinimized bool
}

// DefaultSettings returns default settings for the app.
func DefaultSettings() Settings {
	return Settings{
		Notify:         true,
		Autostart:      false,
		StartMinimized: false,
	}
}
