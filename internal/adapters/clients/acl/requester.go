package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/httpclient"
)

// Requester runs one call against the media-storage API: it builds the
// request, sends it through httpclient.Client, checks the status, maps
// failures to domain errors and decodes the JSON reply.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends a request without a body and decodes the reply into respBody
// when it is non-nil.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, respBody any) error {
	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	return r.execute(req, wantStatus, respBody)
}

// Send streams body to path with the given content type. It is used for
// binary uploads; the reply is handled as in Do.
func (r *Requester) Send(ctx context.Context, method, path, contentType string, body io.Reader, wantStatus int, respBody any) error {
	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", contentType)

	return r.execute(req, wantStatus, respBody)
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends req and always closes the response body. A final 5xx comes
// back from the client as both resp and err; the response wins so the
// problem detail reaches the caller.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != wantStatus:
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)

	case err != nil:
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return transportError(req, err)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}

// transportError maps failures that produced no usable response. Caller
// cancellation and deadlines keep their identity; everything else (open
// breaker, refused connection, client timeout) means the media service is
// unavailable.
func transportError(req *http.Request, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(req.Context().Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
}
