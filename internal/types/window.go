package types

// WindowID identifies one of the fixed local-time-of-day windows a forecast
// day is divided into.
type WindowID string

const (
	WindowEarlyMorning WindowID = "early_morning"
	WindowMorning      WindowID = "morning"
	WindowMidDay       WindowID = "mid_day"
	WindowAfternoon    WindowID = "afternoon"
	WindowEvening      WindowID = "evening"
	WindowNight        WindowID = "night"
)

// WindowSample pairs a time window with its averaged weather sample.
type WindowSample struct {
	ID     WindowID      `json:"id"`
	Label  string        `json:"label"`
	Sample WeatherSample `json:"sample"`
}

// DayBucket is the sequence of per-window averaged samples for one local
// calendar day, in canonical window order. Windows with no samples are
// absent, never zero-filled; a DayBucket always has at least one window.
type DayBucket struct {
	Date    string         `json:"date"`  // local calendar day, YYYY-MM-DD
	Label   string         `json:"label"` // display label, e.g. "Mon 7/15"
	Windows []WindowSample `json:"windows"`
}
