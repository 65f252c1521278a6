// Package recommend implements the clothing advice engine: activity
// profiles, clothing band selection, weather modifiers, activity warnings,
// comfort scoring, message composition, and day summarization.
//
// Every function in this package is pure and total: given the same inputs
// it returns the same outputs, performs no I/O, and never fails. Unknown
// inputs degrade to defined fallbacks (the general profile, a generic
// clothing string, an absent warning) instead of producing errors, so the
// engine is safe to call concurrently from any number of goroutines.
package recommend

import "wearcast/internal/types"

// activityProfiles defines how sensitive each activity is to different
// weather factors. Loaded once, immutable thereafter.
var activityProfiles = map[types.Activity]types.ActivityProfile{
	types.ActivityGeneral: {
		Key:  types.ActivityGeneral,
		Name: "General",
		TempRange: types.TempBands{
			Ideal:       types.TempInterval{Low: 65, High: 75},
			Comfortable: types.TempInterval{Low: 55, High: 82},
			Tolerable:   types.TempInterval{Low: 45, High: 88},
		},
		WindSensitivity:     1.0,
		HumiditySensitivity: 1.0,
		SunRequirement:      types.SunNeutral,
	},
	types.ActivityWalking: {
		Key:  types.ActivityWalking,
		Name: "Walking",
		TempRange: types.TempBands{
			Ideal:       types.TempInterval{Low: 60, High: 75},
			Comfortable: types.TempInterval{Low: 50, High: 80},
			Tolerable:   types.TempInterval{Low: 40, High: 85},
		},
		WindSensitivity:     0.8,
		HumiditySensitivity: 0.9,
		SunRequirement:      types.SunNeutral,
	},
	types.ActivityRunningSport: {
		Key:  types.ActivityRunningSport,
		Name: "Running/Sport",
		TempRange: types.TempBands{
			Ideal:       types.TempInterval{Low: 45, High: 65},
			Comfortable: types.TempInterval{Low: 35, High: 75},
			Tolerable:   types.TempInterval{Low: 25, High: 85},
		},
		WindSensitivity:     0.6,
		HumiditySensitivity: 1.5, // more sensitive to humidity when exerting
		SunRequirement:      types.SunLow,
		TempAdjustment:      -7, // feels warmer when active
	},
	types.ActivityEatingOutside: {
		Key:  types.ActivityEatingOutside,
		Name: "Eating Outside",
		TempRange: types.TempBands{
			Ideal:       types.TempInterval{Low: 68, High: 78},
			Comfortable: types.TempInterval{Low: 62, High: 82},
			Tolerable:   types.TempInterval{Low: 55, High: 88},
		},
		WindSensitivity:     1.5, // wind matters more when sitting still
		HumiditySensitivity: 1.1,
		SunRequirement:      types.SunNeutral,
	},
	types.ActivityPoolLounging: {
		Key:  types.ActivityPoolLounging,
		Name: "Lounging by Pool",
		TempRange: types.TempBands{
			Ideal:       types.TempInterval{Low: 78, High: 88},
			Comfortable: types.TempInterval{Low: 73, High: 92},
			Tolerable:   types.TempInterval{Low: 68, High: 95},
		},
		WindSensitivity:     1.3, // wind + wet = cold
		HumiditySensitivity: 0.7,
		SunRequirement:      types.SunHigh,
	},
}

// activityOrder is the canonical presentation order for profile listings.
var activityOrder = []types.Activity{
	types.ActivityGeneral,
	types.ActivityWalking,
	types.ActivityRunningSport,
	types.ActivityEatingOutside,
	types.ActivityPoolLounging,
}

// Profile returns the profile for the given activity key. Unknown or empty
// keys return the general profile; the lookup never fails. This fallback
// contract is relied on by every other component of the engine.
func Profile(activity types.Activity) types.ActivityProfile {
	if p, ok := activityProfiles[activity]; ok {
		return p
	}
	return activityProfiles[types.ActivityGeneral]
}

// Profiles returns all activity profiles in canonical order.
func Profiles() []types.ActivityProfile {
	out := make([]types.ActivityProfile, 0, len(activityOrder))
	for _, key := range activityOrder {
		out = append(out, activityProfiles[key])
	}
	return out
}
