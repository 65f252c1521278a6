package outlook

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wearcast/internal/types"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func f(v float64) *float64 { return &v }

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

// mildDay produces one complete day of pleasant hourly observations.
func mildDay(day time.Time) []types.HourlyObservation {
	var out []types.HourlyObservation
	for hour := 5; hour <= 23; hour++ {
		out = append(out, obs(day.Add(time.Duration(hour)*time.Hour), 72, 55, 5, 10, 45))
	}
	return out
}

func TestGetOutlook_HappyPath(t *testing.T) {
	now := time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)
	svc := NewService(5, nil, fixedClock{now})

	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	result, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: mildDay(day),
		Activity:     types.ActivityGeneral,
	})
	require.NoError(t, err)

	assert.Equal(t, now, result.GeneratedAt)
	assert.Equal(t, "UTC", result.Timezone)
	assert.Equal(t, types.ActivityGeneral, result.Activity)

	require.Len(t, result.Days, 1)
	d := result.Days[0]
	assert.Equal(t, "2025-07-14", d.Date)
	assert.Equal(t, "Mon 7/14", d.Label)
	assert.Equal(t, types.ActivityGeneral, d.Activity)
	assert.NotEmpty(t, d.Summary)

	require.Len(t, d.Windows, 6)
	for _, w := range d.Windows {
		assert.NotEmpty(t, w.Message, "window %s", w.ID)
		assert.NotEmpty(t, w.Explainer, "window %s", w.ID)
		assert.NotEmpty(t, w.Clothing, "window %s", w.ID)
		assert.Equal(t, 100, w.Comfort, "window %s", w.ID)
	}
}

func TestGetOutlook_UnknownActivityFallsBackToGeneral(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	result, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: mildDay(day),
		Activity:     "skydiving",
	})
	require.NoError(t, err)
	assert.Equal(t, types.ActivityGeneral, result.Activity)
	require.Len(t, result.Days, 1)
	assert.Equal(t, types.ActivityGeneral, result.Days[0].Activity)
}

func TestGetOutlook_PerDayActivityOverride(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	day1 := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	observations := append(mildDay(day1), mildDay(day2)...)

	result, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: observations,
		Activity:     types.ActivityWalking,
		ActivityByDate: map[string]types.Activity{
			"2025-07-15": types.ActivityRunningSport,
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Days, 2)
	assert.Equal(t, types.ActivityWalking, result.Days[0].Activity)
	assert.Equal(t, types.ActivityRunningSport, result.Days[1].Activity)
}

func TestGetOutlook_TruncatesToMaxDays(t *testing.T) {
	svc := NewService(2, nil, fixedClock{time.Now()})

	var observations []types.HourlyObservation
	for i := 0; i < 4; i++ {
		day := time.Date(2025, 7, 14+i, 0, 0, 0, 0, time.UTC)
		observations = append(observations, mildDay(day)...)
	}

	result, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: observations,
	})
	require.NoError(t, err)
	require.Len(t, result.Days, 2)
	assert.Equal(t, "2025-07-14", result.Days[0].Date)
	assert.Equal(t, "2025-07-15", result.Days[1].Date)
}

func TestGetOutlook_InvalidTimezone(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	_, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: mildDay(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)),
		Timezone:     "Mars/Olympus_Mons",
	})
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeValidationInvalidTimezone, appErr.Code)
}

func TestGetOutlook_TimezoneShiftsDayBoundaries(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	// 02:00 UTC July 15 is evening July 14 in Los Angeles (UTC-7 in July).
	ts := time.Date(2025, 7, 15, 2, 0, 0, 0, time.UTC)
	result, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: []types.HourlyObservation{obs(ts, 72, 55, 5, 10, 45)},
		Timezone:     "America/Los_Angeles",
	})
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", result.Timezone)
	require.Len(t, result.Days, 1)
	assert.Equal(t, "2025-07-14", result.Days[0].Date)
	require.Len(t, result.Days[0].Windows, 1)
	assert.Equal(t, types.WindowEvening, result.Days[0].Windows[0].ID)
}

func TestGetOutlook_RejectsOversizedBatch(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	observations := make([]types.HourlyObservation, MaxObservations+1)
	_, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: observations,
	})
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeValidationBatchSize, appErr.Code)
}

func TestGetOutlook_DropsUnusableObservations(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	incomplete := obs(day.Add(13*time.Hour), 300, 55, 5, 10, 45)
	incomplete.Humidity = nil
	nan := obs(day.Add(13*time.Hour), math.NaN(), 55, 5, 10, 45)

	result, err := svc.GetOutlook(context.Background(), OutlookRequest{
		Observations: []types.HourlyObservation{
			incomplete,
			nan,
			obs(day.Add(12*time.Hour), 72, 55, 5, 10, 45),
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Windows, 1)
	// Only the clean observation survives to the average.
	assert.InDelta(t, 72, result.Days[0].Windows[0].Sample.Temp, 1e-9)
}

func TestGetOutlook_NoUsableDataIsEmptyNotError(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	result, err := svc.GetOutlook(context.Background(), OutlookRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.Days)
}

func TestGetRecommendation(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	rec, err := svc.GetRecommendation(context.Background(), types.WeatherSample{
		Temp: 72, Humidity: 45, Wind: 5, Clouds: 10, IsSunny: true,
	}, types.ActivityGeneral)
	require.NoError(t, err)
	assert.Equal(t, types.ActivityGeneral, rec.Activity)
	assert.Equal(t, 100, rec.Comfort)
	assert.NotEmpty(t, rec.Message)
}

func TestListActivities(t *testing.T) {
	svc := NewService(5, nil, fixedClock{time.Now()})

	activities := svc.ListActivities(context.Background())
	require.Len(t, activities, 5)
	assert.Equal(t, types.ActivityGeneral, activities[0].Key)
	assert.Equal(t, types.ActivityPoolLounging, activities[4].Key)
	for _, a := range activities {
		assert.NotEmpty(t, a.Name, "activity %s", a.Key)
		assert.LessOrEqual(t, a.Ideal.Low, a.Ideal.High, "activity %s", a.Key)
	}
}
