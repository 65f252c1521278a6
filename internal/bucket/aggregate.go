package bucket

import (
	"sort"
	"time"

	"wearcast/internal/recommend"
	"wearcast/internal/types"
)

// dayAccumulator collects per-window running sums for one local day.
type dayAccumulator struct {
	date    string // YYYY-MM-DD, used for ordering
	label   string
	windows [windowCount]windowAccumulator
}

// windowAccumulator sums every averaged field across a window's samples.
type windowAccumulator struct {
	count                                  int
	temp, dewPoint, wind, clouds, humidity float64
}

func (a *windowAccumulator) add(o types.HourlyObservation) {
	a.temp += *o.Temp
	a.dewPoint += *o.DewPoint
	a.wind += *o.Wind
	a.clouds += *o.Clouds
	a.humidity += *o.Humidity
	a.count++
}

// average reduces the accumulator to a WeatherSample. The sunny flag is
// derived from the averaged cloud cover, never taken from raw input.
func (a *windowAccumulator) average() types.WeatherSample {
	n := float64(a.count)
	dewPoint := a.dewPoint / n
	return types.WeatherSample{
		Temp:     a.temp / n,
		DewPoint: &dewPoint,
		Wind:     a.wind / n,
		Clouds:   a.clouds / n,
		Humidity: a.humidity / n,
		IsSunny:  a.clouds/n < recommend.SunnyCloudThreshold,
	}
}

// Aggregate groups hourly observations by (local day, time window) in the
// given time zone and averages each non-empty window. Observations missing
// any required field are skipped, as are hours outside every window.
// Returned days are ordered chronologically; days whose every window ended
// up empty are omitted entirely, never zero-filled.
func Aggregate(observations []types.HourlyObservation, loc *time.Location) []types.DayBucket {
	days := map[string]*dayAccumulator{}

	for _, obs := range observations {
		if !obs.Complete() || obs.Time.IsZero() {
			continue
		}
		local := obs.Time.In(loc)
		idx := windowForHour(local.Hour())
		if idx < 0 {
			continue
		}
		date := local.Format("2006-01-02")
		day, ok := days[date]
		if !ok {
			day = &dayAccumulator{
				date:  date,
				label: local.Format("Mon 1/2"),
			}
			days[date] = day
		}
		day.windows[idx].add(obs)
	}

	ordered := make([]*dayAccumulator, 0, len(days))
	for _, day := range days {
		ordered = append(ordered, day)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].date < ordered[j].date })

	out := make([]types.DayBucket, 0, len(ordered))
	for _, day := range ordered {
		var windows []types.WindowSample
		for i, w := range Windows {
			if day.windows[i].count == 0 {
				continue
			}
			windows = append(windows, types.WindowSample{
				ID:     w.ID,
				Label:  w.Label,
				Sample: day.windows[i].average(),
			})
		}
		if len(windows) == 0 {
			continue
		}
		out = append(out, types.DayBucket{
			Date:    day.date,
			Label:   day.label,
			Windows: windows,
		})
	}
	return out
}
