package handlers

import (
	"net/http"

	"wearcast/internal/core"
)

// HandleListActivities handles GET /v1/activities.
// Returns the static activity profile table for UI pickers.
func (h *OutlookHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.service.ListActivities(r.Context())

	// Profile tables are compiled in; they only change with a deploy.
	w.Header().Set("Cache-Control", "public, max-age=3600")

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: activities})
}
