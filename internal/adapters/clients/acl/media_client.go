package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/clients/acl/media"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MediaClient   = (*MediaClient)(nil)
	_ ports.HealthChecker = (*MediaClient)(nil)
)

// MediaClient is the outbound adapter for the downstream media-storage API.
// It implements [ports.MediaClient].
//
// Uploads are sent as raw bodies to PUT /api/v1/objects/{key} under a
// generated key; HTTP errors are mapped to domain errors by
// [TranslateHTTPError]. The underlying [httpclient.Client] provides circuit
// breaking, rate limiting, retry and tracing.
type MediaClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewMediaClient creates a MediaClient that sends requests through client.
func NewMediaClient(client *httpclient.Client, logger *slog.Logger) *MediaClient {
	logger = logging.OrDiscard(logger)
	return &MediaClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Upload stores the body under a fresh key and returns the stored object.
func (c *MediaClient) Upload(ctx context.Context, upload ports.MediaUpload) (*ports.MediaObject, error) {
	key := media.NewObjectKey(upload.Filename)

	var dto media.ObjectDTO
	err := c.req.Send(ctx, http.MethodPut, media.ObjectPath(key), upload.ContentType, upload.Body, http.StatusCreated, &dto)
	if err != nil {
		return nil, err
	}

	obj := media.ToMediaObject(&dto)
	if obj.Key == "" {
		obj.Key = key
	}
	return &obj, nil
}

// Delete removes the object stored under key.
// Returns [domain.ErrNotFound] if the downstream API returns 404.
func (c *MediaClient) Delete(ctx context.Context, key string) error {
	return c.req.Do(ctx, http.MethodDelete, media.ObjectPath(key), http.StatusNoContent, nil)
}
