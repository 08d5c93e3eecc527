package handlers

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": dto.CheckOK})
}

// Readiness handles GET /health/ready. Returns 200 when the database and
// media-storage checks pass and 503 otherwise. Failing checks are logged
// at WARN so a flapping dependency shows up without the probe body.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	w.Header().Set("Cache-Control", "no-store")
	if healthy {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	var failing []string
	for _, name := range slices.Sorted(maps.Keys(resp.Checks)) {
		if resp.Checks[name] != dto.CheckOK {
			failing = append(failing, name)
		}
	}
	logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
		slog.Any("failing", failing),
	)
	writeJSON(w, http.StatusServiceUnavailable, resp)
}
