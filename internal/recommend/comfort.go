package recommend

import (
	"math"

	"wearcast/internal/types"
)

// Base scores per temperature band containment, first containing band wins.
const (
	scoreIdeal       = 100
	scoreComfortable = 75
	scoreTolerable   = 50
	scoreOutOfBand   = 25
)

// Penalty thresholds and magnitudes.
const (
	penaltyWindAbove     = 15
	penaltyHumidityAbove = 70
	penaltyNoSun         = 15 // sun-required activity without sunshine
	penaltySunHot        = 10 // sun-averse activity, sunny and hot
	penaltyFactor        = 10 // scaled by the profile sensitivity
)

// Comfort scores how suited the conditions are to the profile's activity,
// from 0 (hostile) to 100 (ideal). The base comes from which temperature
// band contains the effective temperature; independent penalties for wind,
// humidity, and sun mismatch stack on top, and the intermediate value may
// go negative before the final clamp.
func Comfort(effectiveTemp float64, sample Sample, profile types.ActivityProfile) int {
	var score float64
	switch {
	case profile.TempRange.Ideal.Contains(effectiveTemp):
		score = scoreIdeal
	case profile.TempRange.Comfortable.Contains(effectiveTemp):
		score = scoreComfortable
	case profile.TempRange.Tolerable.Contains(effectiveTemp):
		score = scoreTolerable
	default:
		score = scoreOutOfBand
	}

	if sample.Wind > penaltyWindAbove {
		score -= penaltyFactor * profile.WindSensitivity
	}
	if sample.Humidity > penaltyHumidityAbove {
		score -= penaltyFactor * profile.HumiditySensitivity
	}
	if profile.SunRequirement == types.SunHigh && !sample.IsSunny {
		score -= penaltyNoSun
	}
	if profile.SunRequirement == types.SunLow && sample.IsSunny && effectiveTemp > 80 {
		score -= penaltySunHot
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
