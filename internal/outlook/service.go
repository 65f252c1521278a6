// Package outlook orchestrates the aggregation and recommendation layers:
// it turns raw hourly observations into per-window advice and per-day
// narratives for a requested activity.
package outlook

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"wearcast/internal/bucket"
	"wearcast/internal/recommend"
	"wearcast/internal/types"
)

const (
	// MaxObservations caps the hourly records accepted in one request:
	// two weeks of hourly data is well beyond any useful outlook.
	MaxObservations = 336

	// DefaultMaxDays is the outlook horizon used when the config does not
	// override it.
	DefaultMaxDays = 5

	// dayConcurrencyLimit bounds the per-day assembly goroutines.
	dayConcurrencyLimit = 4
)

// OutlookRequest carries the parsed, type-level inputs for an outlook.
// Observations may be unordered and may contain incomplete records; the
// service filters them before aggregation.
type OutlookRequest struct {
	Observations []types.HourlyObservation
	Timezone     string
	Activity     types.Activity
	// ActivityByDate overrides the activity for specific local days,
	// keyed by YYYY-MM-DD.
	ActivityByDate map[string]types.Activity
}

// WindowOutlook is one aggregated time window with its recommendation.
type WindowOutlook struct {
	ID        types.WindowID      `json:"id"`
	Label     string              `json:"label"`
	Sample    types.WeatherSample `json:"sample"`
	Message   string              `json:"message"`
	Explainer string              `json:"explainer"`
	Clothing  string              `json:"clothing"`
	Modifiers []string            `json:"modifiers,omitempty"`
	Warning   string              `json:"warning,omitempty"`
	Comfort   int                 `json:"comfort"`
}

// DayOutlook is one local calendar day of windows plus its narrative.
type DayOutlook struct {
	Date     string          `json:"date"`
	Label    string          `json:"label"`
	Activity types.Activity  `json:"activity"`
	Summary  string          `json:"summary"`
	Windows  []WindowOutlook `json:"windows"`
}

// OutlookResult is the full multi-day response.
type OutlookResult struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Timezone    string         `json:"timezone"`
	Activity    types.Activity `json:"activity"`
	Days        []DayOutlook   `json:"days"`
}

// ActivityInfo describes one selectable activity for UI pickers.
type ActivityInfo struct {
	Key         types.Activity     `json:"key"`
	Name        string             `json:"name"`
	Ideal       types.TempInterval `json:"ideal"`
	Comfortable types.TempInterval `json:"comfortable"`
	Tolerable   types.TempInterval `json:"tolerable"`
}

// Service is the business logic interface behind the API handlers.
type Service interface {
	GetOutlook(ctx context.Context, req OutlookRequest) (*OutlookResult, error)
	GetRecommendation(ctx context.Context, sample types.WeatherSample, activity types.Activity) (*recommend.Recommendation, error)
	ListActivities(ctx context.Context) []ActivityInfo
}

type service struct {
	maxDays int
	logger  *slog.Logger
	clock   types.Clock
}

// NewService creates the outlook Service. maxDays <= 0 selects
// DefaultMaxDays.
func NewService(maxDays int, logger *slog.Logger, clock types.Clock) Service {
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = types.RealClock{}
	}
	return &service{
		maxDays: maxDays,
		logger:  logger,
		clock:   clock,
	}
}

// GetOutlook aggregates the observations into (local day, window) buckets
// and assembles a recommendation for every window plus a narrative for
// every day. Days are assembled concurrently; the result keeps them in
// chronological order.
func (s *service) GetOutlook(ctx context.Context, req OutlookRequest) (*OutlookResult, error) {
	if len(req.Observations) > MaxObservations {
		return nil, &types.AppError{
			Code:    types.ErrCodeValidationBatchSize,
			Message: fmt.Sprintf("request has %d observations, maximum is %d", len(req.Observations), MaxObservations),
		}
	}

	loc, err := resolveTimezone(req.Timezone)
	if err != nil {
		return nil, err
	}

	observations := sanitize(req.Observations)
	dropped := len(req.Observations) - len(observations)
	if dropped > 0 {
		s.logger.DebugContext(ctx, "dropped unusable observations",
			"dropped", dropped,
			"kept", len(observations),
		)
	}

	buckets := bucket.Aggregate(observations, loc)
	if len(buckets) > s.maxDays {
		buckets = buckets[:s.maxDays]
	}

	activity := recommend.Profile(req.Activity).Key

	days := make([]DayOutlook, len(buckets))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(dayConcurrencyLimit)

	for i, day := range buckets {
		i, day := i, day
		g.Go(func() error {
			dayActivity := activity
			if override, ok := req.ActivityByDate[day.Date]; ok {
				dayActivity = recommend.Profile(override).Key
			}
			days[i] = assembleDay(day, dayActivity)
			return nil
		})
	}
	// Assembly goroutines never return errors; Wait only joins them.
	if err := g.Wait(); err != nil {
		return nil, &types.AppError{
			Code:    types.ErrCodeInternalUnexpected,
			Message: fmt.Sprintf("outlook assembly error: %v", err),
			Err:     err,
		}
	}

	return &OutlookResult{
		GeneratedAt: s.clock.Now(),
		Timezone:    loc.String(),
		Activity:    activity,
		Days:        days,
	}, nil
}

// GetRecommendation wraps the pure engine for a single averaged sample.
func (s *service) GetRecommendation(_ context.Context, sample types.WeatherSample, activity types.Activity) (*recommend.Recommendation, error) {
	rec := recommend.Recommend(sample, activity)
	return &rec, nil
}

// ListActivities returns the profile table in canonical order.
func (s *service) ListActivities(_ context.Context) []ActivityInfo {
	profiles := recommend.Profiles()
	out := make([]ActivityInfo, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ActivityInfo{
			Key:         p.Key,
			Name:        p.Name,
			Ideal:       p.TempRange.Ideal,
			Comfortable: p.TempRange.Comfortable,
			Tolerable:   p.TempRange.Tolerable,
		})
	}
	return out
}

// assembleDay builds every window recommendation and the day narrative.
func assembleDay(day types.DayBucket, activity types.Activity) DayOutlook {
	windows := make([]WindowOutlook, 0, len(day.Windows))
	for _, w := range day.Windows {
		rec := recommend.Recommend(w.Sample, activity)
		windows = append(windows, WindowOutlook{
			ID:        w.ID,
			Label:     w.Label,
			Sample:    w.Sample,
			Message:   rec.Message,
			Explainer: rec.Explainer,
			Clothing:  rec.Clothing,
			Modifiers: rec.Modifiers,
			Warning:   rec.Warning,
			Comfort:   rec.Comfort,
		})
	}
	return DayOutlook{
		Date:     day.Date,
		Label:    day.Label,
		Activity: activity,
		Summary:  recommend.SummarizeDay(day.Windows, activity),
		Windows:  windows,
	}
}

// sanitize drops observations the aggregator could never use: incomplete
// records, zero timestamps, and any record carrying a NaN or infinite
// value in a present field.
func sanitize(observations []types.HourlyObservation) []types.HourlyObservation {
	out := make([]types.HourlyObservation, 0, len(observations))
	for _, obs := range observations {
		if !obs.Complete() || obs.Time.IsZero() {
			continue
		}
		if !finite(obs.Temp, obs.DewPoint, obs.Wind, obs.Clouds, obs.Humidity) {
			continue
		}
		out = append(out, obs)
	}
	return out
}

func finite(values ...*float64) bool {
	for _, v := range values {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return false
		}
	}
	return true
}

// tzCache memoizes time.LoadLocation results; the zoneinfo lookup hits
// the filesystem on first use of each name.
var tzCache sync.Map

func resolveTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	if cached, ok := tzCache.Load(name); ok {
		return cached.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &types.AppError{
			Code:    types.ErrCodeValidationInvalidTimezone,
			Message: fmt.Sprintf("unknown timezone %q", name),
			Err:     err,
		}
	}
	tzCache.Store(name, loc)
	return loc, nil
}
