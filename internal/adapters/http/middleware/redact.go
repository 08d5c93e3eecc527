package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts an http.Header map into slog.Attr values sorted by
// header name. Headers listed in logging.SensitiveHeaders are replaced with
// "[REDACTED]"; an Authorization value keeps its scheme so "Bearer" and
// "Basic" attempts stay distinguishable in admin login logs. Multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		vals := headers[key]
		lower := strings.ToLower(key)
		switch {
		case lower == "authorization" || lower == "proxy-authorization":
			attrs = append(attrs, slog.String(key, redactCredentials(vals)))
		case logging.SensitiveHeaders[lower]:
			attrs = append(attrs, slog.String(key, redacted))
		default:
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

func redactCredentials(vals []string) string {
	if len(vals) != 1 {
		return redacted
	}
	scheme, _, ok := strings.Cut(strings.TrimSpace(vals[0]), " ")
	if !ok {
		return redacted
	}
	return scheme + " " + redacted
}
