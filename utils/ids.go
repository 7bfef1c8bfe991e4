package utils

import (
	"github.com/google/uuid"
)

// NewID returns a random (v4) identifier for a stored record.
func NewID() string {
	return uuid.NewString()
}
