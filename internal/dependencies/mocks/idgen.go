package mocks

import (
	"fmt"

	"github.com/boredgamers/tally/internal/dependencies/idgen"
)

// MockIDGen is a mock implementation of IDGen for testing
type MockIDGen struct {
	// Results is a queue of IDs to return from NewID
	Results []string
	index   int
}

// Ensure MockIDGen implements IDGen
var _ idgen.IDGen = (*MockIDGen)(nil)

// NewMockIDGen creates a new MockIDGen
func NewMockIDGen() *MockIDGen {
	return &MockIDGen{}
}

// NewID returns the next queued ID, or a sequential placeholder if the
// queue is exhausted
func (g *MockIDGen) NewID() string {
	if g.index >= len(g.Results) {
		g.index++
		return fmt.Sprintf("id-%d", g.index)
	}
	result := g.Results[g.index]
	g.index++
	return result
}

// Queue adds IDs to the result queue
func (g *MockIDGen) Queue(ids ...string) {
	g.Results = append(g.Results, ids...)
}

// Reset clears all queued IDs
func (g *MockIDGen) Reset() {
	g.Results = nil
	g.index = 0
}
