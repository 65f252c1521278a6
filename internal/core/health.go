package core

import "net/http"

// healthResponse is the JSON response body for the health check endpoint.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// HandleHealth reports liveness plus build metadata. The service carries no
// external dependencies (no database, no upstream APIs), so a running process
// is a healthy process.
//
// This endpoint is public and is mounted at GET /health.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "healthy",
	}
	if s.Config != nil {
		resp.Version = s.Config.Build.Version
		resp.Commit = s.Config.Build.Commit
	}
	JSON(w, r, http.StatusOK, resp)
}
