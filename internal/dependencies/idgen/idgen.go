package idgen

import "github.com/google/uuid"

// IDGen provides ledger entry ID generation that can be mocked for testing
type IDGen interface {
	// NewID returns a new unique identifier
	NewID() string
}

// UUIDGen implements IDGen using random UUIDs
type UUIDGen struct{}

// New creates a new UUIDGen
func New() *UUIDGen {
	return &UUIDGen{}
}

// NewID returns a new random UUID string
func (g *UUIDGen) NewID() string {
	return uuid.NewString()
}
