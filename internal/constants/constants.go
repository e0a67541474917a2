package constants

const (
	AppName            = "daybook"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daybook/daybook.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PagesPracticeName is the reserved practice backing the morning pages ritual.
	PagesPracticeName = "morning-pages"
)

const (
	// Setting keys
	SettingTimezone        = "timezone"
	SettingCutoffHour      = "cutoff_hour"
	SettingStreakWindow    = "streak_window_days"
	SettingRecentPageCount = "recent_page_count"

	// Default setting values
	DefaultTimezone = "Local" // Use system local timezone by default

	// DefaultCutoffHour unlocks the rest of the app at noon when the
	// morning pages ritual has not been completed.
	DefaultCutoffHour = 12

	// DefaultStreakWindowDays caps how many completed days feed a streak
	// computation, keeping it bounded regardless of account age.
	DefaultStreakWindowDays = 365

	DefaultRecentPageCount = 7
)
