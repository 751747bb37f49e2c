// Package identity provides the uuid-backed identifier generator.
package identity

import (
	"github.com/google/uuid"

	"github.com/milkledger/server/internal/model"
)

var _ model.IDGenerator = (*UUID)(nil)

// UUID generates random 128-bit identifiers.
type UUID struct{}

// NewUUID creates a new UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a new random identifier.
func (g *UUID) NewID() string {
	return uuid.NewString()
}
