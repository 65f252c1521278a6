// Package handlers contains the HTTP handler implementations for the
// Wearcast API. It covers:
//   - Activity profile listing (GET /v1/activities)
//   - Single-sample recommendations (POST /v1/recommendations)
//   - Multi-day outlooks (POST /v1/outlook)
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wearcast/internal/core"
	"wearcast/internal/outlook"
	"wearcast/internal/recommend"
	"wearcast/internal/types"
)

// OutlookServiceInterface defines the service contract for the outlook
// handler. It matches outlook.Service but is defined locally to avoid tight
// coupling per the handler injection pattern.
type OutlookServiceInterface interface {
	GetOutlook(ctx context.Context, req outlook.OutlookRequest) (*outlook.OutlookResult, error)
	GetRecommendation(ctx context.Context, sample types.WeatherSample, activity types.Activity) (*recommend.Recommendation, error)
	ListActivities(ctx context.Context) []outlook.ActivityInfo
}

// OutlookHandler maps HTTP requests to outlook service methods.
type OutlookHandler struct {
	service   OutlookServiceInterface
	validator *core.Validator
	logger    *slog.Logger
}

// NewOutlookHandler creates a new OutlookHandler with the provided dependencies.
func NewOutlookHandler(
	svc OutlookServiceInterface,
	val *core.Validator,
	logger *slog.Logger,
) *OutlookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutlookHandler{
		service:   svc,
		validator: val,
		logger:    logger,
	}
}

// RegisterRoutes mounts the outlook endpoints onto the mux.
func (h *OutlookHandler) RegisterRoutes(r chi.Router) {
	r.Get("/activities", h.HandleListActivities)
	r.Post("/recommendations", h.HandleRecommendation)
	r.Post("/outlook", h.HandleOutlook)
}

// hourlyRecordDTO is one raw hourly observation on the wire. Every weather
// field is a pointer so that absent fields survive decoding and can be
// filtered out instead of silently becoming zero.
type hourlyRecordDTO struct {
	Time     string   `json:"time"`
	Temp     *float64 `json:"temp"`
	DewPoint *float64 `json:"dew_point"`
	Wind     *float64 `json:"wind"`
	Clouds   *float64 `json:"clouds"`
	Humidity *float64 `json:"humidity"`
}

// outlookRequestDTO is the request body for POST /v1/outlook.
type outlookRequestDTO struct {
	Records  []hourlyRecordDTO `json:"records" validate:"required,min=1"`
	Timezone string            `json:"timezone"`
	Activity string            `json:"activity"`
	// ActivityOverrides selects a different activity for specific local
	// days, keyed by YYYY-MM-DD.
	ActivityOverrides map[string]string `json:"activity_overrides"`
}

// HandleOutlook handles POST /v1/outlook.
//  1. Decode and validate the request body.
//  2. Convert wire records to typed observations; unparseable timestamps
//     yield zero times and are dropped by the service.
//  3. Call the outlook service and return the multi-day result.
func (h *OutlookHandler) HandleOutlook(w http.ResponseWriter, r *http.Request) {
	var req outlookRequestDTO
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	observations := make([]types.HourlyObservation, 0, len(req.Records))
	for _, rec := range req.Records {
		ts, err := time.Parse(time.RFC3339, rec.Time)
		if err != nil {
			// Dropped downstream along with incomplete records.
			ts = time.Time{}
		}
		observations = append(observations, types.HourlyObservation{
			Time:     ts.UTC(),
			Temp:     rec.Temp,
			DewPoint: rec.DewPoint,
			Wind:     rec.Wind,
			Clouds:   rec.Clouds,
			Humidity: rec.Humidity,
		})
	}

	overrides := make(map[string]types.Activity, len(req.ActivityOverrides))
	for date, activity := range req.ActivityOverrides {
		overrides[date] = types.Activity(activity)
	}

	result, err := h.service.GetOutlook(r.Context(), outlook.OutlookRequest{
		Observations:   observations,
		Timezone:       req.Timezone,
		Activity:       types.Activity(req.Activity),
		ActivityByDate: overrides,
	})
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}
