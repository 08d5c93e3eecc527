package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// queryFilter maps a query parameter onto an equality filter on a stored
// field. parse normalizes the raw value into the field's textual form; its
// error text becomes the field message.
type queryFilter struct {
	param string
	field string
	parse func(string) (string, error)
}

func boolFilter(param string) queryFilter {
	return queryFilter{param: param, field: param, parse: func(s string) (string, error) {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return "", errors.New("must be true or false")
		}
		return strconv.FormatBool(b), nil
	}}
}

func idFilter(param string) queryFilter {
	return queryFilter{param: param, field: param, parse: func(s string) (string, error) {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return "", errors.New("must be a positive integer")
		}
		return strconv.FormatInt(id, 10), nil
	}}
}

// dayFilter accepts "day=5", "day=fri" or "day=Friday".
func dayFilter() queryFilter {
	return queryFilter{param: "day", field: "day_of_week", parse: func(s string) (string, error) {
		d, err := hours.ParseWeekday(s)
		if err != nil {
			return "", errors.New("must be 0-6 or a day name")
		}
		return strconv.Itoa(int(d)), nil
	}}
}

// parseListParams reads page, page_size and the allowed filters from the
// query string. Unknown parameters are ignored.
func parseListParams(r *http.Request, orderBy string, filters ...queryFilter) (domain.ListParams, error) {
	q := r.URL.Query()
	params := domain.ListParams{OrderBy: orderBy}
	fields := make(map[string]string)

	for _, name := range []string{"page", "page_size"} {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fields[name] = "must be a positive integer"
			continue
		}
		if name == "page" {
			params.Page = n
		} else {
			params.PageSize = n
		}
	}

	for _, f := range filters {
		raw := strings.TrimSpace(q.Get(f.param))
		if raw == "" {
			continue
		}
		v, err := f.parse(raw)
		if err != nil {
			fields[f.param] = err.Error()
			continue
		}
		if params.Filter == nil {
			params.Filter = domain.Filter{}
		}
		params.Filter[f.field] = v
	}

	if len(fields) > 0 {
		return domain.ListParams{}, &domain.ValidationError{Fields: fields}
	}
	return params, nil
}
