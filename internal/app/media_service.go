package app

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that MediaService implements ports.MediaService.
var _ ports.MediaService = (*MediaService)(nil)

// MediaService implements ports.MediaService. It checks type and size
// locally and forwards accepted uploads to the media-storage service.
type MediaService struct {
	client       ports.MediaClient
	allowedTypes []string
	maxBytes     int64
	logger       *slog.Logger
}

// NewMediaService creates a MediaService. An empty allowedTypes accepts any
// content type; maxBytes of zero or less disables the size check.
func NewMediaService(client ports.MediaClient, allowedTypes []string, maxBytes int64, logger *slog.Logger) *MediaService {
	return &MediaService{
		client:       client,
		allowedTypes: allowedTypes,
		maxBytes:     maxBytes,
		logger:       logging.OrDiscard(logger),
	}
}

// Upload validates and stores an upload.
func (s *MediaService) Upload(ctx context.Context, upload ports.MediaUpload) (*ports.MediaObject, error) {
	s.logger.InfoContext(ctx, "uploading media",
		slog.String("filename", upload.Filename),
		slog.String("content_type", upload.ContentType),
		slog.Int64("size", upload.Size),
	)

	if err := s.validate(&upload); err != nil {
		return nil, err
	}

	obj, err := s.client.Upload(ctx, upload)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upload media",
			slog.String("operation", "Upload"),
			slog.String("filename", upload.Filename),
			slog.Any("error", err),
		)
		return nil, err
	}

	return obj, nil
}

func (s *MediaService) validate(upload *ports.MediaUpload) error {
	fields := make(map[string]string)

	upload.Filename = path.Base(strings.ReplaceAll(upload.Filename, `\`, "/"))
	if upload.Filename == "" || upload.Filename == "." || upload.Filename == "/" {
		fields["filename"] = domain.MsgRequired
	}

	mediaType, _, err := mime.ParseMediaType(upload.ContentType)
	switch {
	case err != nil:
		fields["content_type"] = fmt.Sprintf("invalid: %q", upload.ContentType)
	case len(s.allowedTypes) > 0 && !slices.Contains(s.allowedTypes, mediaType):
		fields["content_type"] = fmt.Sprintf("must be one of %s", strings.Join(s.allowedTypes, ", "))
	default:
		upload.ContentType = mediaType
	}

	switch {
	case upload.Size <= 0:
		fields["file"] = "must not be empty"
	case s.maxBytes > 0 && upload.Size > s.maxBytes:
		fields["file"] = fmt.Sprintf("must be at most %d bytes", s.maxBytes)
	}

	if upload.Body == nil {
		fields["file"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Delete removes a stored object by key.
func (s *MediaService) Delete(ctx context.Context, key string) error {
	s.logger.InfoContext(ctx, "deleting media", slog.String("key", key))

	if strings.TrimSpace(key) == "" {
		return domain.NewValidationError("key", domain.MsgRequired)
	}

	if err := s.client.Delete(ctx, key); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete media",
			slog.String("operation", "Delete"),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
