package recommend

import "wearcast/internal/types"

// clothingFallback is returned if no band contains the effective
// temperature. The sentinel extremes make the bands gap-free, so this
// should never be reached in practice.
const clothingFallback = "Dress appropriately for the weather"

// tempSentinel bounds the clothing bands so they partition the whole
// plausible temperature line.
const tempSentinel = 999

// clothingBand maps a half-open temperature range [Low, High) to advice
// text per activity. General is mandatory and serves as the fallback for
// activities without a specific entry.
type clothingBand struct {
	Name       string
	Low, High  float64
	General    string
	ByActivity map[types.Activity]string
}

// clothingBands is evaluated in ascending range order; the first band whose
// [Low, High) contains the effective temperature wins. Ranges are data, the
// evaluation order is a design invariant.
var clothingBands = []clothingBand{
	{
		Name: "very_cold", Low: -tempSentinel, High: 45,
		General: "Bundle up: heavy winter coat, hat, and gloves essential",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Warm active wear with multiple layers and protect extremities",
		},
	},
	{
		Name: "cold", Low: 45, High: 55,
		General: "A heavy jacket, possibly with layers, is needed",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Standard active wear with warm layers",
		},
	},
	{
		Name: "chilly", Low: 55, High: 62,
		General: "Wear a medium jacket or coat",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Light active wear with optional light layer",
		},
	},
	{
		Name: "cool", Low: 62, High: 68,
		General: "A light jacket or long sleeves",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Standard active wear",
		},
	},
	{
		Name: "mild", Low: 68, High: 75,
		General: "Short sleeves should be fine",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Light, breathable active wear",
			types.ActivityPoolLounging: "Borderline for pool - consider if you're feeling brave",
		},
	},
	{
		Name: "warm", Low: 75, High: 82,
		General: "Light clothing recommended",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Minimal active wear, stay hydrated",
			types.ActivityPoolLounging: "Perfect pool weather! Swimwear and sun protection",
		},
	},
	{
		Name: "hot", Low: 82, High: 88,
		General: "Dress light and stay cool",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Minimal clothing, hydrate extensively",
			types.ActivityPoolLounging: "Ideal for the pool, but seek shade during peak hours",
		},
	},
	{
		Name: "very_hot", Low: 88, High: tempSentinel,
		General: "Minimal clothing recommended",
		ByActivity: map[types.Activity]string{
			types.ActivityRunningSport: "Consider indoor exercise or very early/late times",
			types.ActivityPoolLounging: "Pool time! But be careful of sun exposure",
		},
	},
}

// SelectClothing returns the apparel advice for the given effective
// temperature and activity. It scans the bands in ascending order and
// returns the first match, preferring the activity-specific text over the
// band's general text.
func SelectClothing(effectiveTemp float64, activity types.Activity) string {
	for _, band := range clothingBands {
		if effectiveTemp >= band.Low && effectiveTemp < band.High {
			if text, ok := band.ByActivity[activity]; ok {
				return text
			}
			return band.General
		}
	}
	return clothingFallback
}
