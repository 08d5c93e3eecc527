package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

const (
	defaultActiveLimit = 10
	maxActiveLimit     = 50
)

// EventHandler handles HTTP requests for events. Anonymous callers only
// see published events.
type EventHandler struct {
	*Resource[event.Event, dto.EventResponse]
	svc       ports.EventService
	converter *civiltime.Converter
}

// NewEventHandler creates a new EventHandler with the given service port.
func NewEventHandler(svc ports.EventService, converter *civiltime.Converter) *EventHandler {
	decode := decoder(func(req *dto.EventRequest) (*event.Event, error) {
		return req.ToEntity(converter)
	})
	encode := func(e *event.Event) dto.EventResponse {
		return dto.ToEventResponse(converter, e)
	}
	return &EventHandler{
		Resource: newResource[event.Event, dto.EventResponse](svc, decode, encode, listConfig{
			orderBy: "starts_at",
			filters: []queryFilter{boolFilter("published")},
			public:  domain.Filter{"published": "true"},
		}, func(e *event.Event) bool { return e.Published }),
		svc:       svc,
		converter: converter,
	}
}

// Active handles GET /api/v1/events/active?limit=N.
func (h *EventHandler) Active(w http.ResponseWriter, r *http.Request) {
	limit := defaultActiveLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = min(n, maxActiveLimit)
	}

	events, err := h.svc.Active(r.Context(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(h.converter, &events[i])
	}
	writeJSON(w, http.StatusOK, resp)
}
