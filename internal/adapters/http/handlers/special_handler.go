package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// SpecialHandler handles HTTP requests for specials. Anonymous callers only
// see active specials.
type SpecialHandler struct {
	*Resource[special.Special, dto.SpecialResponse]
	svc       ports.SpecialService
	converter *civiltime.Converter
}

// NewSpecialHandler creates a new SpecialHandler with the given service port.
func NewSpecialHandler(svc ports.SpecialService, converter *civiltime.Converter) *SpecialHandler {
	decode := decoder(func(req *dto.SpecialRequest) (*special.Special, error) {
		return req.ToEntity(converter)
	})
	encode := func(s *special.Special) dto.SpecialResponse {
		return dto.ToSpecialResponse(converter, s)
	}
	return &SpecialHandler{
		Resource: newResource[special.Special, dto.SpecialResponse](svc, decode, encode, listConfig{
			filters: []queryFilter{boolFilter("active"), dayFilter()},
			public:  domain.Filter{"active": "true"},
		}, func(s *special.Special) bool { return s.Active }),
		svc:       svc,
		converter: converter,
	}
}

// Today handles GET /api/v1/specials/today.
func (h *SpecialHandler) Today(w http.ResponseWriter, r *http.Request) {
	specials, err := h.svc.Today(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := make([]dto.SpecialResponse, len(specials))
	for i := range specials {
		resp[i] = dto.ToSpecialResponse(h.converter, &specials[i])
	}
	writeJSON(w, http.StatusOK, resp)
}
