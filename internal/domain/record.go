package domain

import "time"

// Meta is the identity and audit metadata every stored entity embeds.
type Meta struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Metadata returns the embedded metadata so stores can assign IDs and
// timestamps without knowing the concrete entity type.
func (m *Meta) Metadata() *Meta {
	return m
}

// Record is implemented by pointers to entities that embed Meta.
type Record interface {
	Metadata() *Meta
	Validate() error
}

// RecordPtr constrains a type parameter to *T where *T is a Record. Stores
// keep T values and reach the metadata through the pointer.
type RecordPtr[T any] interface {
	*T
	Record
}
