package media

import (
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// ToMediaObject converts a downstream ObjectDTO to a ports.MediaObject.
func ToMediaObject(dto *ObjectDTO) ports.MediaObject {
	return ports.MediaObject{
		Key:         dto.Key,
		URL:         dto.URL,
		ContentType: dto.ContentType,
		Size:        dto.Size,
	}
}

// NewObjectKey returns a collision-free key that keeps the upload's
// lowercased extension, e.g. "3f2c...9a.png".
func NewObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 10 || strings.ContainsAny(ext, "/?#% ") {
		ext = ""
	}
	return uuid.NewString() + ext
}

// ObjectPath returns the downstream path for key.
func ObjectPath(key string) string {
	return "/api/v1/objects/" + url.PathEscape(key)
}
