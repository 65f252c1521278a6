package recommend

import "math"

// Modifier thresholds. Wind in mph, humidity and cloud cover in percent.
const (
	windyThreshold  = 10
	windySevere     = 15
	humidThreshold  = 65
	humidSevere     = 80
	dryThreshold    = 30 // below this humidity the air is dry
	cloudyThreshold = 60
	cloudySevere    = 80

	// SunnyCloudThreshold is the averaged cloud cover below which a window
	// counts as sunny. Exported for the aggregator, which derives the
	// IsSunny flag from it.
	SunnyCloudThreshold = 30

	// fogDewPointSpread is the maximum temperature/dew-point gap (°F) for
	// the fog heuristic.
	fogDewPointSpread = 2
)

// Modifier phrase templates. These read as clause fragments appended to the
// base clothing recommendation, e.g. "Short sleeves should be fine and it's
// quite windy".
const (
	phraseWindStrong = "and it's quite windy"
	phraseWindSevere = "with strong winds making it feel cooler"
	phraseDamp       = "with a damp, clammy feel"
	phraseMuggy      = "and it's quite humid"
	phraseOppressive = "with oppressive humidity"
	phraseDry        = "with dry air"
	phraseFog        = "with possible foggy conditions"
	phraseSunny      = "under bright sunshine"
	phraseOvercast   = "with heavy overcast"
	phraseCloudy     = "with some cloud cover"
)

// ExtractModifiers inspects wind, humidity, cloud cover, and dew point and
// returns zero to four qualifying phrases in a fixed order: wind, humidity,
// fog, sun/cloud. Each group is evaluated independently; within a group the
// branches are mutually exclusive.
func ExtractModifiers(sample Sample) []string {
	var mods []string

	// Wind.
	if sample.Wind > windySevere {
		mods = append(mods, phraseWindSevere)
	} else if sample.Wind > windyThreshold {
		mods = append(mods, phraseWindStrong)
	}

	// Humidity, branching on temperature: high humidity feels damp when
	// cold, oppressive when hot, muggy in between.
	switch {
	case sample.Humidity > humidSevere:
		switch {
		case sample.Temp < 60:
			mods = append(mods, phraseDamp)
		case sample.Temp > 75:
			mods = append(mods, phraseOppressive)
		default:
			mods = append(mods, phraseMuggy)
		}
	case sample.Humidity > humidThreshold && sample.Temp >= 60:
		mods = append(mods, phraseMuggy)
	case sample.Humidity < dryThreshold:
		mods = append(mods, phraseDry)
	}

	// Fog: saturated air under a closed cloud deck with the temperature
	// sitting on the dew point. Fires independently of the humidity branch.
	if sample.Humidity >= 90 && sample.Clouds > 90 && sample.DewPoint != nil &&
		math.Abs(sample.Temp-*sample.DewPoint) <= fogDewPointSpread {
		mods = append(mods, phraseFog)
	}

	// Sun / clouds, sun checked first.
	switch {
	case sample.IsSunny:
		mods = append(mods, phraseSunny)
	case sample.Clouds > cloudySevere:
		mods = append(mods, phraseOvercast)
	case sample.Clouds > cloudyThreshold:
		mods = append(mods, phraseCloudy)
	}

	return mods
}
