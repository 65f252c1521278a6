package recommend

import "wearcast/internal/types"

// warningKind tags the condition shape of a warning rule. Rules are
// evaluated as an ordered list per activity and the first satisfied rule
// wins, so a single traversal enforces the priority contract. Encoding the
// condition as a tagged variant also means a wind rule can never be
// satisfied by a temperature coincidence (and vice versa).
type warningKind int

const (
	// warnColdBelow fires when temp < Threshold.
	warnColdBelow warningKind = iota
	// warnWarmAtLeast fires when temp >= Threshold and, if RequireSun is
	// set, the sample is sunny.
	warnWarmAtLeast
	// warnHotHumid fires when temp > Threshold and humidity > Humidity.
	warnHotHumid
	// warnWindCold fires when wind > Wind and temp < Threshold.
	warnWindCold
	// warnWindAbove fires when wind > Wind, irrespective of temperature.
	warnWindAbove
	// warnNever matches no sample. It keeps a rule's name and message in
	// the table without a live trigger.
	warnNever
)

// warningRule is one activity-specific trigger condition with its message.
type warningRule struct {
	Name       string
	Kind       warningKind
	Threshold  float64 // temperature bound, meaning depends on Kind
	Humidity   float64 // humidity bound for warnHotHumid
	Wind       float64 // wind bound for warnWindCold / warnWindAbove
	RequireSun bool    // warnWarmAtLeast only
	Message    string
}

// activityWarnings holds each activity's ordered rule list. Activities
// without an entry never emit warnings. Order is significant.
var activityWarnings = map[types.Activity][]warningRule{
	types.ActivityPoolLounging: {
		{
			Name: "too_cold", Kind: warnColdBelow, Threshold: 68,
			Message: "Too cold for comfortable pool lounging",
		},
		{
			Name: "perfect", Kind: warnWarmAtLeast, Threshold: 73, RequireSun: true,
			Message: "Perfect for the pool!",
		},
		{
			Name: "windy_wet", Kind: warnWindCold, Wind: 12, Threshold: 80,
			Message: "Wind might make it feel quite cold when wet",
		},
	},
	types.ActivityRunningSport: {
		{
			Name: "extreme_heat", Kind: warnHotHumid, Threshold: 85, Humidity: 65,
			Message: "Very strenuous conditions for exercise - consider lighter workout or indoor option",
		},
		{
			Name: "cold_wind", Kind: warnWindCold, Wind: 10, Threshold: 40,
			Message: "Protect against wind chill during your run",
		},
	},
	types.ActivityEatingOutside: {
		{
			Name: "too_cold", Kind: warnColdBelow, Threshold: 55,
			Message: "Too chilly for comfortable outdoor dining",
		},
		{
			Name: "too_windy", Kind: warnWindAbove, Wind: 15,
			Message: "Wind might be disruptive for eating outside",
		},
		{
			Name: "windy_cold", Kind: warnWindCold, Wind: 12, Threshold: 70,
			Message: "Wind will make it feel cooler - seek a sheltered spot",
		},
	},
	types.ActivityWalking: {
		{
			Name: "hot_humid", Kind: warnHotHumid, Threshold: 75, Humidity: 70,
			Message: "Walking will feel quite sticky",
		},
		{
			// hot_sunny is inert: walking heat advice comes from hot_humid
			// only. The entry keeps its message text but never fires.
			Name: "hot_sunny", Kind: warnNever,
			Message: "Hot day for a walk - take water and sun protection",
		},
	},
}

// EvaluateWarning scans the activity's ordered rule list against the raw
// (unadjusted) sample and returns the message of the first rule whose
// condition holds, or "" when no rule fires. At most one message is ever
// returned; warnings are never aggregated.
func EvaluateWarning(sample Sample, activity types.Activity) string {
	rules, ok := activityWarnings[activity]
	if !ok {
		return ""
	}
	for _, rule := range rules {
		if rule.matches(sample) {
			return rule.Message
		}
	}
	return ""
}

func (r warningRule) matches(s Sample) bool {
	switch r.Kind {
	case warnColdBelow:
		return s.Temp < r.Threshold
	case warnWarmAtLeast:
		return s.Temp >= r.Threshold && (!r.RequireSun || s.IsSunny)
	case warnHotHumid:
		return s.Temp > r.Threshold && s.Humidity > r.Humidity
	case warnWindCold:
		return s.Wind > r.Wind && s.Temp < r.Threshold
	case warnWindAbove:
		return s.Wind > r.Wind
	case warnNever:
		return false
	default:
		return false
	}
}
