// Package bucket turns a stream of raw hourly observations into per-day,
// per-window averaged weather samples. Each observation's UTC timestamp is
// converted to the target local time zone; the local hour decides window
// membership and the local date decides day membership. The package is
// pure: it performs no I/O and holds no state beyond its fixed window
// table.
package bucket

import "wearcast/internal/types"

// TimeWindow is one fixed local-time bucket of a day. Hours is the exact
// set of local clock hours the window covers; the gaps between windows
// (8am, 6pm) are deliberate and those hours are discarded.
type TimeWindow struct {
	ID    types.WindowID
	Label string
	Hours []int
}

// windowCount is the number of entries in Windows; it sizes the per-day
// accumulator array in aggregate.go.
const windowCount = 6

// Windows is the canonical ordered window sequence, identical for every
// day in the forecast horizon.
var Windows = []TimeWindow{
	{ID: types.WindowEarlyMorning, Label: "Early Morning", Hours: []int{5, 6, 7}},
	{ID: types.WindowMorning, Label: "Morning", Hours: []int{9, 10, 11}},
	{ID: types.WindowMidDay, Label: "Mid Day", Hours: []int{12, 13, 14}},
	{ID: types.WindowAfternoon, Label: "Afternoon", Hours: []int{15, 16, 17}},
	{ID: types.WindowEvening, Label: "Evening", Hours: []int{19, 20, 21}},
	{ID: types.WindowNight, Label: "Night", Hours: []int{22, 23}},
}

// windowForHour maps a local hour to its window index, or -1 when the hour
// falls in none of the windows.
func windowForHour(hour int) int {
	for i, w := range Windows {
		for _, h := range w.Hours {
			if h == hour {
				return i
			}
		}
	}
	return -1
}
