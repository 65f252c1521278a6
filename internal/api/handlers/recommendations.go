package handlers

import (
	"net/http"

	"wearcast/internal/core"
	"wearcast/internal/recommend"
	"wearcast/internal/types"
)

// recommendationRequestDTO is the request body for POST /v1/recommendations.
// It carries one already-averaged weather sample. Required fields are
// pointers so a missing field is distinguishable from a legitimate zero.
type recommendationRequestDTO struct {
	Activity string   `json:"activity"`
	Temp     *float64 `json:"temp" validate:"required"`
	Humidity *float64 `json:"humidity" validate:"required,min=0,max=100"`
	Wind     *float64 `json:"wind" validate:"required,min=0"`
	Clouds   *float64 `json:"clouds" validate:"required,min=0,max=100"`
	DewPoint *float64 `json:"dew_point"`
	// IsSunny overrides the cloud-derived sunshine flag when present.
	IsSunny *bool `json:"is_sunny"`
}

// HandleRecommendation handles POST /v1/recommendations.
// The sunshine flag defaults to the same cloud-cover rule the aggregator
// uses, so a client sending only raw averages gets consistent behavior.
func (h *OutlookHandler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequestDTO
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	sample := types.WeatherSample{
		Temp:     *req.Temp,
		Humidity: *req.Humidity,
		Wind:     *req.Wind,
		Clouds:   *req.Clouds,
		DewPoint: req.DewPoint,
	}
	if req.IsSunny != nil {
		sample.IsSunny = *req.IsSunny
	} else {
		sample.IsSunny = sample.Clouds < recommend.SunnyCloudThreshold
	}

	rec, err := h.service.GetRecommendation(r.Context(), sample, types.Activity(req.Activity))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: rec})
}
