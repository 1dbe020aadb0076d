package utils

import "github.com/google/uuid"

// NewID generates a prefixed entity id, e.g. "req-5f1c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
