package bucket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wearcast/internal/types"
)

func f(v float64) *float64 { return &v }

// obs builds a complete observation at the given UTC time.
func obs(ts time.Time, temp, dewPoint, wind, clouds, humidity float64) types.HourlyObservation {
	return types.HourlyObservation{
		Time:     ts,
		Temp:     f(temp),
		DewPoint: f(dewPoint),
		Wind:     f(wind),
		Clouds:   f(clouds),
		Humidity: f(humidity),
	}
}

func TestWindowCountMatchesTable(t *testing.T) {
	// The per-day accumulator array is sized by windowCount; it must track
	// the window table.
	require.Len(t, Windows, windowCount)
}

func TestWindowForHour(t *testing.T) {
	tests := []struct {
		hour int
		want int
	}{
		{5, 0}, {7, 0},
		{9, 1}, {11, 1},
		{12, 2}, {14, 2},
		{15, 3}, {17, 3},
		{19, 4}, {21, 4},
		{22, 5}, {23, 5},
		// The gaps between windows and the small hours belong to no window.
		{0, -1}, {4, -1}, {8, -1}, {18, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, windowForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestAggregate_AveragesWindow(t *testing.T) {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	buckets := Aggregate([]types.HourlyObservation{
		obs(day.Add(12*time.Hour), 70, 55, 10, 20, 40),
		obs(day.Add(13*time.Hour), 74, 57, 14, 40, 50),
	}, time.UTC)

	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Windows, 1)

	w := buckets[0].Windows[0]
	assert.Equal(t, types.WindowMidDay, w.ID)
	assert.Equal(t, "Mid Day", w.Label)
	assert.InDelta(t, 72, w.Sample.Temp, 1e-9)
	assert.InDelta(t, 56, *w.Sample.DewPoint, 1e-9)
	assert.InDelta(t, 12, w.Sample.Wind, 1e-9)
	assert.InDelta(t, 30, w.Sample.Clouds, 1e-9)
	assert.InDelta(t, 45, w.Sample.Humidity, 1e-9)
}

func TestAggregate_SunnyDerivedFromAveragedClouds(t *testing.T) {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	buckets := Aggregate([]types.HourlyObservation{
		obs(day.Add(12*time.Hour), 70, 55, 5, 20, 40), // clear hour
		obs(day.Add(13*time.Hour), 70, 55, 5, 36, 40), // cloudier hour
		obs(day.Add(15*time.Hour), 70, 55, 5, 60, 40),
	}, time.UTC)

	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Windows, 2)

	// Mid Day averages to 28% cloud cover: sunny. Afternoon is 60%: not.
	assert.True(t, buckets[0].Windows[0].Sample.IsSunny)
	assert.False(t, buckets[0].Windows[1].Sample.IsSunny)
}

func TestAggregate_IncompleteObservationsDropped(t *testing.T) {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	missingWind := obs(day.Add(12*time.Hour), 100, 55, 0, 0, 40)
	missingWind.Wind = nil

	buckets := Aggregate([]types.HourlyObservation{
		missingWind,
		obs(day.Add(13*time.Hour), 70, 55, 5, 20, 40),
	}, time.UTC)

	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Windows, 1)
	// Only the complete observation contributes: the average is its value,
	// not a blend with the dropped 100°F record.
	assert.InDelta(t, 70, buckets[0].Windows[0].Sample.Temp, 1e-9)
}

func TestAggregate_HoursOutsideWindowsDiscarded(t *testing.T) {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	buckets := Aggregate([]types.HourlyObservation{
		obs(day.Add(3*time.Hour), 70, 55, 5, 20, 40),  // 3am: no window
		obs(day.Add(18*time.Hour), 70, 55, 5, 20, 40), // 6pm gap hour
	}, time.UTC)

	assert.Empty(t, buckets)
}

func TestAggregate_LocalTimeDecidesDayAndWindow(t *testing.T) {
	// 02:00 UTC on July 15 is 19:00 July 14 in UTC-7: the observation must
	// land in the Evening window of the previous local day.
	loc := time.FixedZone("UTC-7", -7*60*60)
	ts := time.Date(2025, 7, 15, 2, 0, 0, 0, time.UTC)

	buckets := Aggregate([]types.HourlyObservation{
		obs(ts, 70, 55, 5, 20, 40),
	}, loc)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-07-14", buckets[0].Date)
	require.Len(t, buckets[0].Windows, 1)
	assert.Equal(t, types.WindowEvening, buckets[0].Windows[0].ID)
}

func TestAggregate_DaysOrderedAndWindowsCanonical(t *testing.T) {
	day1 := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	buckets := Aggregate([]types.HourlyObservation{
		// Deliberately out of order.
		obs(day2.Add(12*time.Hour), 75, 55, 5, 20, 40),
		obs(day1.Add(20*time.Hour), 65, 55, 5, 20, 40),
		obs(day1.Add(6*time.Hour), 55, 50, 5, 20, 40),
	}, time.UTC)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-07-14", buckets[0].Date)
	assert.Equal(t, "Mon 7/14", buckets[0].Label)
	assert.Equal(t, "2025-07-15", buckets[1].Date)

	// Day one windows come back in canonical order despite input order.
	require.Len(t, buckets[0].Windows, 2)
	assert.Equal(t, types.WindowEarlyMorning, buckets[0].Windows[0].ID)
	assert.Equal(t, types.WindowEvening, buckets[0].Windows[1].ID)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, time.UTC))
}
