package ports

import (
	"context"
	"io"
)

// MediaUpload is an image or file an admin attaches to an event, special,
// menu item or story.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaObject describes a stored upload.
type MediaObject struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// MediaClient defines the client port for the downstream media-storage API.
// Implemented by the media adapter; called by the application layer.
type MediaClient interface {
	// Upload stores the body and returns where it can be fetched from.
	// Returns domain.ErrValidation if the media service rejects the file.
	Upload(ctx context.Context, upload MediaUpload) (*MediaObject, error)

	// Delete removes a previously uploaded object.
	// Returns domain.ErrNotFound if the key is unknown.
	Delete(ctx context.Context, key string) error
}
