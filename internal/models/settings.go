package models

// Settings holds user-configurable application preferences.
type Settings struct {
	// Timezone is the IANA name of the reference timezone used for all
	// calendar-day decisions, or "Local" for the system timezone.
	Timezone string `json:"timezone"`
	// CutoffHour is the hour [0,23] after which the access gate opens
	// regardless of completion state.
	CutoffHour int `json:"cutoff_hour"`
	// StreakWindowDays caps how many recent completed days feed a streak
	// computation.
	StreakWindowDays int `json:"streak_window_days"`
	// RecentPageCount is how many entries "pages recent" shows by default.
	RecentPageCount int `json:"recent_page_count"`
}
