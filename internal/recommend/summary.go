package recommend

import (
	"fmt"
	"math"
	"strings"

	"wearcast/internal/types"
)

// Day summary sentinels.
const (
	summaryInsufficient = "Insufficient data for day summary."
	summaryModerate     = "General conditions are moderate for the day."
)

// poolSpan is the set of windows that count toward "good pool hours".
var poolSpan = map[types.WindowID]bool{
	types.WindowMorning:   true,
	types.WindowMidDay:    true,
	types.WindowAfternoon: true,
}

// SummarizeDay synthesizes an activity-aware narrative for one day's
// non-empty windows, given in canonical order. Reference windows (early
// morning, mid day, evening) are resolved by window identity, so absent
// windows shift nothing. An empty window list yields the insufficient-data
// sentinel rather than an error.
func SummarizeDay(windows []types.WindowSample, activity types.Activity) string {
	if len(windows) == 0 {
		return summaryInsufficient
	}
	profile := Profile(activity)
	activity = profile.Key

	minTemp, maxTemp := tempExtremes(windows)
	morning := findWindow(windows, types.WindowEarlyMorning)
	midday := findWindow(windows, types.WindowMidDay)
	evening := findWindow(windows, types.WindowEvening)

	var parts []string
	switch activity {
	case types.ActivityPoolLounging:
		parts = poolSummary(windows, morning, maxTemp)
	case types.ActivityRunningSport:
		parts = runningSummary(windows, midday)
	case types.ActivityEatingOutside:
		parts = diningSummary(windows)
	default:
		parts = generalSummary(activity, morning, midday, evening)
	}

	if activity == types.ActivityGeneral || activity == types.ActivityWalking {
		switch {
		case maxTemp-minTemp > 15:
			parts = append(parts, "Layer up - you'll want to adjust throughout the day")
		case maxTemp > 75 && minTemp < 65:
			parts = append(parts, "Consider bringing a light layer for cooler parts of the day")
		}
	}

	if len(parts) == 0 {
		return summaryModerate
	}
	return strings.Join(parts, ". ") + "."
}

// poolSummary reports the span of good pool hours: midday-span windows
// that are warm enough and sunny.
func poolSummary(windows []types.WindowSample, morning *types.WindowSample, maxTemp float64) []string {
	var good []types.WindowSample
	anySunny := false
	for _, w := range windows {
		if w.Sample.IsSunny {
			anySunny = true
		}
		if poolSpan[w.ID] && w.Sample.Temp >= 73 && w.Sample.IsSunny {
			good = append(good, w)
		}
	}

	if len(good) == 0 {
		parts := []string{"Not ideal pool weather today"}
		if maxTemp < 68 {
			parts = append(parts, "- temperatures stay too cool throughout the day")
		} else if !anySunny {
			parts = append(parts, "- lack of sunshine makes it less appealing")
		}
		return parts
	}

	start, end := good[0].Label, good[len(good)-1].Label
	var parts []string
	if start == end {
		parts = append(parts, fmt.Sprintf("Pool conditions look good during %s", start))
	} else {
		parts = append(parts, fmt.Sprintf("Pool conditions look good from %s through %s", start, end))
	}
	if morning != nil && morning.Sample.Temp < 70 {
		parts = append(parts, "Wait until mid-morning for comfortable swimming")
	}
	return parts
}

// runningSummary lists the windows cool (or dry) enough for a run.
func runningSummary(windows []types.WindowSample, midday *types.WindowSample) []string {
	var labels []string
	for _, w := range windows {
		t, h := w.Sample.Temp, w.Sample.Humidity
		if t < 75 && (t < 70 || h < 70) {
			labels = append(labels, w.Label)
		}
	}

	if len(labels) == 0 {
		return []string{
			"Challenging conditions for outdoor exercise all day",
			"Consider indoor alternatives or hydrate extensively",
		}
	}

	parts := []string{fmt.Sprintf("Best running conditions during %s", strings.Join(labels, ", "))}
	if midday != nil && midday.Sample.Temp > 80 {
		parts = append(parts, "Avoid midday heat")
	}
	return parts
}

// diningSummary reports the first-to-last span of comfortable outdoor
// dining windows, with a breeziness caveat when any window (qualifying or
// not) is windy.
func diningSummary(windows []types.WindowSample) []string {
	var good []types.WindowSample
	breezy := false
	for _, w := range windows {
		if w.Sample.Wind > 12 {
			breezy = true
		}
		if w.Sample.Temp >= 62 && w.Sample.Temp <= 82 && w.Sample.Wind < 15 {
			good = append(good, w)
		}
	}

	if len(good) == 0 {
		return []string{"Outdoor dining might be uncomfortable today"}
	}

	parts := []string{fmt.Sprintf(
		"Pleasant for outdoor dining during %s to %s",
		good[0].Label, good[len(good)-1].Label,
	)}
	if breezy {
		parts = append(parts, "Some periods may be breezy - choose sheltered spots")
	}
	return parts
}

// generalSummary builds a morning/midday/evening narrative from whichever
// of the three reference windows are present.
func generalSummary(activity types.Activity, morning, midday, evening *types.WindowSample) []string {
	var parts []string

	if morning != nil {
		switch {
		case morning.Sample.Temp < 60:
			clothing := SelectClothing(morning.Sample.Temp, activity)
			parts = append(parts, fmt.Sprintf("Chilly morning requiring %s", strings.ToLower(clothing)))
		case morning.Sample.Humidity > 70:
			parts = append(parts, "Humid morning conditions")
		}
	}

	if midday != nil && morning != nil {
		if midday.Sample.IsSunny && !morning.Sample.IsSunny {
			parts = append(parts, "Clouds clear by midday bringing sunshine")
		} else if !midday.Sample.IsSunny && morning.Sample.IsSunny {
			parts = append(parts, "Clouds build during the day")
		}
		if math.Abs(midday.Sample.Temp-morning.Sample.Temp) > 15 {
			parts = append(parts, fmt.Sprintf(
				"Significant warming from morning (%.0f°F) to afternoon (%.0f°F)",
				math.Round(morning.Sample.Temp), math.Round(midday.Sample.Temp),
			))
		}
	}

	if evening != nil {
		if evening.Sample.Wind > 10 && evening.Sample.Temp < 65 {
			parts = append(parts, "Evening brings wind chill - have a layer handy")
		} else if evening.Sample.Temp < 60 {
			parts = append(parts, "Cooling off in the evening")
		}
	}

	return parts
}

func findWindow(windows []types.WindowSample, id types.WindowID) *types.WindowSample {
	for i := range windows {
		if windows[i].ID == id {
			return &windows[i]
		}
	}
	return nil
}

func tempExtremes(windows []types.WindowSample) (minTemp, maxTemp float64) {
	minTemp, maxTemp = windows[0].Sample.Temp, windows[0].Sample.Temp
	for _, w := range windows[1:] {
		if w.Sample.Temp < minTemp {
			minTemp = w.Sample.Temp
		}
		if w.Sample.Temp > maxTemp {
			maxTemp = w.Sample.Temp
		}
	}
	return minTemp, maxTemp
}
