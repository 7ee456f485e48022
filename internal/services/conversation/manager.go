package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/ledger"
	"github.com/boredgamers/tally/internal/services/player"
)

// ErrNoConversation is returned when a message arrives for a conversation
// that has no active game-entry flow.
var ErrNoConversation = errors.New("no active conversation")

// Reply is what the orchestrator sends back to the user after a message.
type Reply struct {
	// Prompt is the next question, or the confirmation text when Done.
	Prompt string
	// Done is true once the game has been recorded and the session closed.
	Done bool
	// Recorded is set on the final reply.
	Recorded *ledger.RecordedGame
}

// Manager drives the multi-step game-entry flow. One session per
// conversation ID; sessions are independent and only the ledger behind the
// controller is shared.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ledger        *ledger.Controller
	playerService player.ServiceInterface
	logger        *slog.Logger
}

// NewManager creates a new conversation manager
func NewManager(ledger *ledger.Controller, playerService player.ServiceInterface, logger *slog.Logger) *Manager {
	return &Manager{
		sessions:      make(map[string]*Session),
		ledger:        ledger,
		playerService: playerService,
		logger:        logger,
	}
}

// Start opens a new game-entry flow for the conversation, replacing any
// flow already in progress there.
func (m *Manager) Start(conversationID string, mode Mode) *Reply {
	m.mu.Lock()
	m.sessions[conversationID] = newSession(conversationID, mode)
	m.mu.Unlock()

	m.logger.Info("conversation started",
		slog.String("conversation_id", conversationID),
		slog.String("mode", string(mode)),
	)

	return &Reply{Prompt: "What game was played? (e.g. 'Catan')"}
}

// Abandon drops the conversation's session, if any.
func (m *Manager) Abandon(conversationID string) {
	m.mu.Lock()
	delete(m.sessions, conversationID)
	m.mu.Unlock()
}

// Advance feeds one user message into the conversation's session. Invalid
// input returns a domain error and leaves the session at the same state so
// the step can be retried; the ledger is only touched on the final step.
func (m *Manager) Advance(ctx context.Context, conversationID, text string) (*Reply, error) {
	m.mu.Lock()
	session, ok := m.sessions[conversationID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNoConversation
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	text = strings.TrimSpace(text)

	switch session.State {
	case StateAwaitingGameName:
		return m.handleGameName(session, text)
	case StateAwaitingGameType:
		return m.handleGameType(ctx, session, text)
	case StateAwaitingPlayers:
		return m.handlePlayers(session, text)
	case StateAwaitingRanks:
		return m.handleRanks(session, text)
	case StateAwaitingPoints:
		return m.handlePoints(session, text)
	case StateAwaitingDate:
		return m.handleDate(ctx, session, text)
	default:
		return nil, ErrNoConversation
	}
}

func (m *Manager) handleGameName(session *Session, text string) (*Reply, error) {
	if text == "" {
		return nil, &model.InvalidInputError{Raw: text}
	}
	session.GameName = text
	session.State = StateAwaitingGameType
	return &Reply{Prompt: "Is this a 'solo', 'team', or 'pair' game?"}, nil
}

func (m *Manager) handleGameType(ctx context.Context, session *Session, text string) (*Reply, error) {
	gameType, err := model.ParseGameType(strings.ToLower(text))
	if err != nil {
		return nil, err
	}
	session.GameType = gameType
	session.State = StateAwaitingPlayers

	prompt := "Who played? Provide player names separated by commas."
	if known, err := m.ledger.KnownPlayers(ctx); err == nil && len(known) > 0 {
		names := make([]string, len(known))
		for i, k := range known {
			names[i] = m.playerService.Display(k)
		}
		prompt += "\nPrevious players: " + strings.Join(names, ", ")
	}
	return &Reply{Prompt: prompt}, nil
}

func (m *Manager) handlePlayers(session *Session, text string) (*Reply, error) {
	players, err := m.playerService.SplitList(text)
	if err != nil {
		return nil, err
	}
	seen := make(map[model.PlayerKey]bool, len(players))
	for _, p := range players {
		if seen[p] {
			return nil, model.ErrDuplicatePlayer
		}
		seen[p] = true
	}
	session.Players = players

	if session.Mode == ModeManual {
		session.State = StateAwaitingPoints
		return &Reply{Prompt: "Enter the points for each player in the same order (e.g. '6, 3, 1, 0')."}, nil
	}
	session.State = StateAwaitingRanks
	return &Reply{Prompt: "Enter the rankings for each player in the same order (1 = first place)."}, nil
}

func (m *Manager) handleRanks(session *Session, text string) (*Reply, error) {
	tokens := splitTokens(text)
	ranks := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		rank, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &model.InvalidInputError{Raw: tok}
		}
		ranks = append(ranks, rank)
	}
	if len(ranks) != len(session.Players) {
		return nil, &model.MismatchedCountError{
			Players: len(session.Players),
			Values:  len(ranks),
			What:    "ranks",
		}
	}
	session.Ranks = ranks
	session.State = StateAwaitingDate
	return &Reply{Prompt: "What date was the game? (YYYY-MM-DD, or 'today')"}, nil
}

func (m *Manager) handlePoints(session *Session, text string) (*Reply, error) {
	tokens := splitTokens(text)
	points := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		pts, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &model.InvalidInputError{Raw: tok}
		}
		points = append(points, pts)
	}
	if len(points) != len(session.Players) {
		return nil, &model.MismatchedCountError{
			Players: len(session.Players),
			Values:  len(points),
			What:    "points",
		}
	}
	session.Points = points
	session.State = StateAwaitingDate
	return &Reply{Prompt: "What date was the game? (YYYY-MM-DD, or 'today')"}, nil
}

func (m *Manager) handleDate(ctx context.Context, session *Session, text string) (*Reply, error) {
	rawNames := make([]string, len(session.Players))
	for i, p := range session.Players {
		rawNames[i] = string(p)
	}

	var recorded *ledger.RecordedGame
	var err error
	if session.Mode == ModeManual {
		recorded, err = m.ledger.RecordManualGame(ctx, ledger.ManualGameInput{
			GameName: session.GameName,
			GameType: session.GameType,
			Players:  rawNames,
			Points:   session.Points,
			Date:     text,
		})
	} else {
		recorded, err = m.ledger.RecordGame(ctx, ledger.GameInput{
			GameName: session.GameName,
			GameType: session.GameType,
			Players:  rawNames,
			Ranks:    session.Ranks,
			Date:     text,
		})
	}
	if err != nil {
		// Date parse failures and storage hiccups both retry this step; the
		// ledger is never left half-written.
		return nil, err
	}

	session.State = StateTerminal
	m.mu.Lock()
	delete(m.sessions, session.ID)
	m.mu.Unlock()

	var lines []string
	lines = append(lines, fmt.Sprintf("Game '%s' on %s recorded. Points awarded:", session.GameName, recorded.Date))
	for _, p := range recorded.Players {
		lines = append(lines, fmt.Sprintf("%s: %+.1f", m.playerService.Display(p), recorded.Awards[p]))
	}

	return &Reply{
		Prompt:   strings.Join(lines, "\n"),
		Done:     true,
		Recorded: recorded,
	}, nil
}

// splitTokens splits comma- or whitespace-separated input tokens.
func splitTokens(text string) []string {
	var tokens []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
