package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/boredgamers/tally/internal/dependencies/mocks"
	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/dates"
	"github.com/boredgamers/tally/internal/services/ledger"
	"github.com/boredgamers/tally/internal/services/player"
	"github.com/boredgamers/tally/internal/services/scoring"
	"github.com/boredgamers/tally/internal/storage/memory"
	"github.com/boredgamers/tally/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ManagerSuite struct {
	suite.Suite
	storage *memory.Storage
	manager *Manager
	ctx     context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.storage = memory.New()
	playerService := player.New()
	controller := ledger.NewController(
		s.storage,
		playerService,
		scoring.New(),
		dates.New(),
		mocks.NewMockClock(time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)),
		mocks.NewMockIDGen(),
		testutil.NopLogger(),
	)
	s.manager = NewManager(controller, playerService, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ManagerSuite) advance(conversationID, text string) *Reply {
	reply, err := s.manager.Advance(s.ctx, conversationID, text)
	s.Require().NoError(err)
	return reply
}

// Full flow tests

func (s *ManagerSuite) TestAutoFlowRecordsGame() {
	reply := s.manager.Start("chat-1", ModeAuto)
	s.Contains(reply.Prompt, "What game")

	reply = s.advance("chat-1", "Catan")
	s.Contains(reply.Prompt, "'solo', 'team', or 'pair'")

	reply = s.advance("chat-1", "solo")
	s.Contains(reply.Prompt, "Who played")

	reply = s.advance("chat-1", "Alice, Bob, Carol")
	s.Contains(reply.Prompt, "rankings")

	reply = s.advance("chat-1", "1, 2, 3")
	s.Contains(reply.Prompt, "date")

	reply = s.advance("chat-1", "today")
	s.True(reply.Done)
	s.Require().NotNil(reply.Recorded)
	s.Contains(reply.Prompt, "Game 'Catan' on 2024-01-15 recorded.")
	s.Contains(reply.Prompt, "Alice: +6.0")
	s.Contains(reply.Prompt, "Bob: +3.0")
	s.Contains(reply.Prompt, "Carol: +1.0")

	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(rows, 3)
}

func (s *ManagerSuite) TestManualFlowRecordsPointsVerbatim() {
	s.manager.Start("chat-1", ModeManual)

	s.advance("chat-1", "Wingspan")
	s.advance("chat-1", "pair")
	reply := s.advance("chat-1", "alice, bob")
	s.Contains(reply.Prompt, "points")

	s.advance("chat-1", "2.5, -1")
	reply = s.advance("chat-1", "2024-01-10")
	s.True(reply.Done)
	s.Equal(2.5, reply.Recorded.Awards["alice"])
	s.Equal(-1.0, reply.Recorded.Awards["bob"])

	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(model.ManualRank, rows[0].Rank)
}

func (s *ManagerSuite) TestSessionClosedAfterCompletion() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")
	s.advance("chat-1", "solo")
	s.advance("chat-1", "alice")
	s.advance("chat-1", "1")
	s.advance("chat-1", "today")

	_, err := s.manager.Advance(s.ctx, "chat-1", "anything")
	s.ErrorIs(err, ErrNoConversation)
}

// Error and retry tests

func (s *ManagerSuite) TestNoConversation() {
	_, err := s.manager.Advance(s.ctx, "nonexistent", "hello")
	s.ErrorIs(err, ErrNoConversation)
}

func (s *ManagerSuite) TestBadInputRetriesSameStep() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")

	// Unknown game type re-prompts the same step.
	_, err := s.manager.Advance(s.ctx, "chat-1", "coop")
	s.ErrorIs(err, model.ErrInvalidGameType)

	reply := s.advance("chat-1", "solo")
	s.Contains(reply.Prompt, "Who played")
}

func (s *ManagerSuite) TestGameTypeCaseInsensitive() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")

	reply := s.advance("chat-1", "SOLO")
	s.Contains(reply.Prompt, "Who played")
}

func (s *ManagerSuite) TestEmptyGameNameRejected() {
	s.manager.Start("chat-1", ModeAuto)

	_, err := s.manager.Advance(s.ctx, "chat-1", "   ")
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *ManagerSuite) TestDuplicatePlayersRejected() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")
	s.advance("chat-1", "solo")

	_, err := s.manager.Advance(s.ctx, "chat-1", "Alice, alice")
	s.ErrorIs(err, model.ErrDuplicatePlayer)
}

func (s *ManagerSuite) TestRankCountMismatchRetries() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")
	s.advance("chat-1", "solo")
	s.advance("chat-1", "alice, bob")

	_, err := s.manager.Advance(s.ctx, "chat-1", "1")
	s.ErrorIs(err, model.ErrMismatchedCount)

	// The step can be retried with corrected input.
	reply := s.advance("chat-1", "1 2")
	s.Contains(reply.Prompt, "date")
}

func (s *ManagerSuite) TestNonNumericRankRejected() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")
	s.advance("chat-1", "solo")
	s.advance("chat-1", "alice")

	_, err := s.manager.Advance(s.ctx, "chat-1", "first")
	s.Require().Error(err)

	var invalid *model.InvalidInputError
	s.ErrorAs(err, &invalid)
	s.Equal("first", invalid.Raw)
}

func (s *ManagerSuite) TestBadDateRetries() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")
	s.advance("chat-1", "solo")
	s.advance("chat-1", "alice")
	s.advance("chat-1", "1")

	_, err := s.manager.Advance(s.ctx, "chat-1", "gibberish input")
	s.ErrorIs(err, model.ErrInvalidInput)

	// Nothing was written and the flow can still finish.
	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(rows)

	reply := s.advance("chat-1", "today")
	s.True(reply.Done)
}

// Session management tests

func (s *ManagerSuite) TestConversationsAreIsolated() {
	s.manager.Start("chat-1", ModeAuto)
	s.manager.Start("chat-2", ModeAuto)

	s.advance("chat-1", "Catan")
	reply := s.advance("chat-2", "Azul")

	// Both advanced independently past the game-name step.
	s.Contains(reply.Prompt, "'solo', 'team', or 'pair'")
	reply = s.advance("chat-1", "solo")
	s.Contains(reply.Prompt, "Who played")
}

func (s *ManagerSuite) TestStartReplacesExistingFlow() {
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")

	// Restarting resets to the first step.
	s.manager.Start("chat-1", ModeAuto)
	reply := s.advance("chat-1", "Azul")
	s.Contains(reply.Prompt, "'solo', 'team', or 'pair'")
}

func (s *ManagerSuite) TestAbandonDropsSession() {
	s.manager.Start("chat-1", ModeAuto)
	s.manager.Abandon("chat-1")

	_, err := s.manager.Advance(s.ctx, "chat-1", "Catan")
	s.ErrorIs(err, ErrNoConversation)
}

func (s *ManagerSuite) TestKnownPlayersShownInPrompt() {
	// Seed the ledger through a first complete flow.
	s.manager.Start("chat-1", ModeAuto)
	s.advance("chat-1", "Catan")
	s.advance("chat-1", "solo")
	s.advance("chat-1", "bob, alice")
	s.advance("chat-1", "1, 2")
	s.advance("chat-1", "today")

	s.manager.Start("chat-2", ModeAuto)
	s.advance("chat-2", "Azul")
	reply := s.advance("chat-2", "solo")
	s.Contains(reply.Prompt, "Previous players: Alice, Bob")
}
