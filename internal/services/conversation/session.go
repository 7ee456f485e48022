package conversation

import (
	"sync"

	"github.com/boredgamers/tally/internal/model"
)

// State is one step of the game-entry flow. Each inbound message advances a
// session at most one state; a bad input re-prompts the same state.
type State string

const (
	StateAwaitingGameName State = "awaiting_game_name"
	StateAwaitingGameType State = "awaiting_game_type"
	StateAwaitingPlayers  State = "awaiting_players"
	StateAwaitingRanks    State = "awaiting_ranks"
	StateAwaitingPoints   State = "awaiting_points"
	StateAwaitingDate     State = "awaiting_date"
	StateTerminal         State = "terminal"
)

// Mode selects how the recorded game gets its points.
type Mode string

const (
	// ModeAuto derives points from placements via the scoring engine.
	ModeAuto Mode = "auto"
	// ModeManual takes user-entered points verbatim.
	ModeManual Mode = "manual"
)

// Session is the explicit per-conversation state object. Sessions are
// isolated per conversation ID and never share mutable scratch state.
type Session struct {
	mu sync.Mutex

	ID    string
	Mode  Mode
	State State

	// Collected inputs, filled in as the flow advances.
	GameName string
	GameType model.GameType
	Players  []model.PlayerKey
	Ranks    []int
	Points   []float64
}

func newSession(id string, mode Mode) *Session {
	return &Session{
		ID:    id,
		Mode:  mode,
		State: StateAwaitingGameName,
	}
}
