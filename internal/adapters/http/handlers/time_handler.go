package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// TimeHandler exposes the civil-time conversions over HTTP.
type TimeHandler struct {
	svc ports.TimeService
}

// NewTimeHandler creates a new TimeHandler with the given service port.
func NewTimeHandler(svc ports.TimeService) *TimeHandler {
	return &TimeHandler{svc: svc}
}

// Now handles GET /health/time: server UTC, civil now and the zone state.
func (h *TimeHandler) Now(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToTimeResponse(h.svc.Snapshot(r.Context())))
}

// Convert handles GET /api/v1/time/convert. Exactly one of time=HH:MM[:SS]
// or datetime=YYYY-MM-DDTHH:MM[:SS] is required; direction is to_utc
// (default) or from_utc.
func (h *TimeHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tod := strings.TrimSpace(q.Get("time"))
	dt := strings.TrimSpace(q.Get("datetime"))

	dir := ports.Direction(strings.ToLower(strings.TrimSpace(q.Get("direction"))))
	if dir == "" {
		dir = ports.ToUTC
	}
	if !dir.IsValid() {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("direction", "must be to_utc or from_utc"))
		return
	}

	switch {
	case tod != "" && dt != "":
		dto.WriteErrorResponse(w, r, domain.NewValidationError("time", "give either time or datetime, not both"))
	case tod != "":
		out, err := h.svc.ConvertTimeOfDay(r.Context(), tod, dir)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToTimeOfDayConvertResponse(tod, dir, out))
	case dt != "":
		utc, local, err := h.svc.ConvertDateTime(r.Context(), dt, dir)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToDateTimeConvertResponse(dt, dir, utc, local))
	default:
		dto.WriteErrorResponse(w, r, domain.NewValidationError("time", domain.MsgRequired))
	}
}
