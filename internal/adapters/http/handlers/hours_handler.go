package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// HoursHandler handles HTTP requests for weekly operation hours. Times
// arrive and leave in civil time; the service stores UTC.
type HoursHandler struct {
	*Resource[hours.OperationHours, dto.HoursResponse]
	svc       ports.HoursService
	converter *civiltime.Converter
}

// NewHoursHandler creates a new HoursHandler with the given service port.
func NewHoursHandler(svc ports.HoursService, converter *civiltime.Converter) *HoursHandler {
	decode := decoder(func(req *dto.HoursRequest) (*hours.OperationHours, error) {
		return req.ToEntity(converter)
	})
	encode := func(h *hours.OperationHours) dto.HoursResponse {
		return dto.ToHoursResponse(converter, h)
	}
	return &HoursHandler{
		Resource: newResource[hours.OperationHours, dto.HoursResponse](svc, decode, encode, listConfig{
			orderBy: "day_of_week",
			filters: []queryFilter{dayFilter(), boolFilter("enabled")},
		}, nil),
		svc:       svc,
		converter: converter,
	}
}

// ReplaceWeek handles PUT /api/v1/hours. Entries succeed or fail
// independently; the response is 200 when all succeed and 207 otherwise.
func (h *HoursHandler) ReplaceWeek(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceWeekRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	week, err := req.ToEntities(h.converter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.ReplaceWeek(r.Context(), week)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, dto.ToBulkHoursResponse(h.converter, result))
}

// Status handles GET /api/v1/hours/status.
func (h *HoursHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHoursStatusResponse(status))
}
