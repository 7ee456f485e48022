package factory

import (
	"time"

	"github.com/boredgamers/tally/internal/dependencies/mocks"
	"github.com/boredgamers/tally/internal/storage/memory"
	"github.com/boredgamers/tally/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDGen *mocks.MockIDGen
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDGen := mocks.NewMockIDGen()

	app := newWithDependencies(store, mockClock, mockIDGen, "", testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDGen: mockIDGen,
	}
}
