package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// OverviewHandler serves the home-page payload.
type OverviewHandler struct {
	svc       ports.OverviewService
	converter *civiltime.Converter
}

// NewOverviewHandler creates a new OverviewHandler with the given service port.
func NewOverviewHandler(svc ports.OverviewService, converter *civiltime.Converter) *OverviewHandler {
	return &OverviewHandler{svc: svc, converter: converter}
}

// Overview handles GET /api/v1/overview.
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOverviewResponse(h.converter, o))
}
