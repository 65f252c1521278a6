package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wearcast/internal/types"
)

func TestEvaluateWarning_NoTableNoWarning(t *testing.T) {
	s := Sample{Temp: -20, Humidity: 99, Wind: 40, Clouds: 100}
	assert.Empty(t, EvaluateWarning(s, types.ActivityGeneral))
	assert.Empty(t, EvaluateWarning(s, types.Activity("skiing")))
}

func TestEvaluateWarning_Pool(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   string
	}{
		{
			name:   "too cold",
			sample: Sample{Temp: 60, IsSunny: true},
			want:   "Too cold for comfortable pool lounging",
		},
		{
			name:   "perfect requires sunshine",
			sample: Sample{Temp: 75, IsSunny: false},
			want:   "",
		},
		{
			name:   "perfect when warm and sunny",
			sample: Sample{Temp: 75, IsSunny: true},
			want:   "Perfect for the pool!",
		},
		{
			name:   "windy and not hot enough to stay warm when wet",
			sample: Sample{Temp: 75, Wind: 14, IsSunny: false},
			want:   "Wind might make it feel quite cold when wet",
		},
		{
			name:   "calm warm overcast day has no warning",
			sample: Sample{Temp: 75, Wind: 5, IsSunny: false},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateWarning(tt.sample, types.ActivityPoolLounging))
		})
	}
}

func TestEvaluateWarning_FirstMatchWins(t *testing.T) {
	// 60°F and sunny satisfies both too_cold (temp < 68) and, were it
	// warmer, perfect; too_cold is first in the ordered list.
	s := Sample{Temp: 60, IsSunny: true, Wind: 20}
	assert.Equal(t, "Too cold for comfortable pool lounging",
		EvaluateWarning(s, types.ActivityPoolLounging))
}

func TestEvaluateWarning_Running(t *testing.T) {
	t.Run("extreme heat needs both heat and humidity", func(t *testing.T) {
		assert.Empty(t, EvaluateWarning(Sample{Temp: 90, Humidity: 50}, types.ActivityRunningSport))
		assert.Equal(t,
			"Very strenuous conditions for exercise - consider lighter workout or indoor option",
			EvaluateWarning(Sample{Temp: 90, Humidity: 70}, types.ActivityRunningSport))
	})

	t.Run("cold wind", func(t *testing.T) {
		assert.Equal(t, "Protect against wind chill during your run",
			EvaluateWarning(Sample{Temp: 35, Wind: 12}, types.ActivityRunningSport))
	})

	t.Run("cold without wind is fine", func(t *testing.T) {
		assert.Empty(t, EvaluateWarning(Sample{Temp: 35, Wind: 5}, types.ActivityRunningSport))
	})
}

func TestEvaluateWarning_Dining(t *testing.T) {
	t.Run("wind rule fires on wind alone", func(t *testing.T) {
		// 90°F is nowhere near the cold thresholds; only wind matters here.
		assert.Equal(t, "Wind might be disruptive for eating outside",
			EvaluateWarning(Sample{Temp: 90, Wind: 16}, types.ActivityEatingOutside))
	})

	t.Run("cold rule fires before wind rule", func(t *testing.T) {
		assert.Equal(t, "Too chilly for comfortable outdoor dining",
			EvaluateWarning(Sample{Temp: 50, Wind: 16}, types.ActivityEatingOutside))
	})

	t.Run("moderate wind below a cool temp", func(t *testing.T) {
		assert.Equal(t, "Wind will make it feel cooler - seek a sheltered spot",
			EvaluateWarning(Sample{Temp: 65, Wind: 13}, types.ActivityEatingOutside))
	})

	t.Run("cold rules never fire from wind values", func(t *testing.T) {
		// Strong-but-not-disruptive wind on a pleasant day: nothing fires.
		assert.Empty(t, EvaluateWarning(Sample{Temp: 75, Wind: 11}, types.ActivityEatingOutside))
	})
}

func TestEvaluateWarning_Walking(t *testing.T) {
	assert.Equal(t, "Walking will feel quite sticky",
		EvaluateWarning(Sample{Temp: 80, Humidity: 75}, types.ActivityWalking))
	// hot_sunny is inert: heat alone, even sunny heat, emits nothing
	// unless the humidity bound of hot_humid is crossed.
	assert.Empty(t,
		EvaluateWarning(Sample{Temp: 85, Humidity: 40, IsSunny: true}, types.ActivityWalking))
	assert.Empty(t,
		EvaluateWarning(Sample{Temp: 85, Humidity: 40, IsSunny: false}, types.ActivityWalking))
}
