package preferences

// Settings defines editable user preferences.
type Settings struct {
	NotificationsEnabled bool
	LaunchAtLogin        bool
	ConfirmSkip          bool
}

// DefaultSettings returns default settings for the Pomodoro app.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		LaunchAtLogin:        false,
		ConfirmSkip:          false,
	}
}
