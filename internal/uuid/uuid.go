// uuid wraps ID generation behind an interface so tests can supply fixed IDs.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique record IDs.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// FixedGenerator returns a preset sequence of IDs, cycling when exhausted.
// Test helper.
type FixedGenerator struct {
	IDs  []string
	next int
}

// NewFixedGenerator creates a FixedGenerator yielding the given IDs
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{IDs: ids}
}

// New returns the next preset ID.
func (g *FixedGenerator) New() string {
	if len(g.IDs) == 0 {
		return "fixed-id"
	}
	id := g.IDs[g.next%len(g.IDs)]
	g.next++
	return id
}
