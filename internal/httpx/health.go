package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthHandler reports process version, uptime, and store connectivity.
type HealthHandler struct {
	Version string
	Check   func(ctx context.Context) error
	started time.Time
}

func NewHealthHandler(version string, check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{Version: version, Check: check, started: time.Now()}
}

type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Error         string `json:"error,omitempty"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:        "UP",
		Version:       h.Version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}

	if h.Check != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := h.Check(ctx); err != nil {
			resp.Status = "DOWN"
			resp.Error = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
