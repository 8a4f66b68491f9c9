package ids

import "github.com/google/uuid"

// Source hands out opaque unique identifiers for variants and bound
// trigger elements. Callers only rely on uniqueness, never on shape.
type Source interface {
	NewID() string
}

type uuidSource struct{}

// NewSource returns the default UUID-backed identifier source.
func NewSource() Source {
	return uuidSource{}
}

func (uuidSource) NewID() string {
	return uuid.NewString()
}
