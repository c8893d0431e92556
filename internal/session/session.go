// Package session issues the opaque IDs that key cart ownership. A browser
// presents its ID on every cart call; carts are never shared across IDs.
package session

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque session identifier.
func NewID() string {
	return uuid.NewString()
}

// Valid reports whether a client-presented session ID is well formed. Only
// IDs this package issued are accepted, which keeps redis keys predictable.
func Valid(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
