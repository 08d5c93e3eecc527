// Package media implements the Anti-Corruption Layer translators for the
// downstream media-storage API's object resources.
package media

// ObjectDTO matches the downstream StoredObject schema.
type ObjectDTO struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	CreatedAt   string `json:"created_at"`
}
