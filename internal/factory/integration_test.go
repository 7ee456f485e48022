package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/ledger"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: full game-night flow from recording to the leaderboard
func (s *IntegrationSuite) TestRecordGamesAndComputeLeaderboard() {
	s.app.MockIDGen.Queue("game-1", "game-2", "game-3", "adj-1")

	// Three solo games: Alice wins them all, Bob comes second each time.
	for i := 0; i < 3; i++ {
		_, err := s.app.LedgerController.RecordGame(s.ctx, ledger.GameInput{
			GameName: "Catan",
			GameType: model.GameTypeSolo,
			Players:  []string{"Alice", "Bob"},
			Ranks:    []int{1, 2},
		})
		s.Require().NoError(err)
	}

	// A penalty against Alice.
	_, err := s.app.LedgerController.RecordAdjustment(s.ctx, "Alice", -4, "table flip", "")
	s.Require().NoError(err)

	boards, err := s.app.LeaderboardService.Compute(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(boards.Overall, 2)
	// Alice: 18 - 4 = 14, Bob: 9. Both past the provisional threshold.
	s.Equal(model.PlayerKey("alice"), boards.Overall[0].Player)
	s.Equal(14.0, boards.Overall[0].Points)
	s.False(boards.Overall[0].IsProvisional)
	s.Equal(9.0, boards.Overall[1].Points)

	// Solo-only ignores the adjustment.
	s.Equal(18.0, boards.SoloOnly[0].Points)

	// Classification from the adjusted overall averages: 14/3 > 3 is A,
	// 9/3 sits at the B/A boundary and 3 is not > 3, so B.
	s.Equal(model.ClassA, boards.Overall[0].Class)
	s.Equal(model.ClassB, boards.Overall[1].Class)
}

// Test: conversation flow writes through the shared ledger
func (s *IntegrationSuite) TestConversationRecordsIntoLedger() {
	s.app.MockIDGen.Queue("game-1")

	s.app.ConversationManager.Start("chat-1", "auto")
	for _, text := range []string{"Azul", "pair", "Alice, Bob", "1, 1", "today"} {
		_, err := s.app.ConversationManager.Advance(s.ctx, "chat-1", text)
		s.Require().NoError(err)
	}

	games, err := s.app.LedgerController.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.GameID("game-1"), games[0].GameID)
	s.Equal("Azul", games[0].GameName)
	// Date comes from the mocked clock.
	s.Equal("2024-01-01", games[0].Date)

	// Tied pair winners split the first place pot.
	for _, row := range games[0].Rows {
		s.Equal(3.0, row.Points)
	}
}

// Test: deleting a game removes every row and updates derived views
func (s *IntegrationSuite) TestDeleteGameUpdatesDerivedState() {
	s.app.MockIDGen.Queue("game-1", "game-2")

	_, err := s.app.LedgerController.RecordGame(s.ctx, ledger.GameInput{
		GameName: "Catan",
		GameType: model.GameTypeSolo,
		Players:  []string{"Alice", "Bob"},
		Ranks:    []int{1, 2},
	})
	s.Require().NoError(err)

	_, err = s.app.LedgerController.RecordGame(s.ctx, ledger.GameInput{
		GameName: "Azul",
		GameType: model.GameTypeSolo,
		Players:  []string{"Carol"},
		Ranks:    []int{1},
	})
	s.Require().NoError(err)

	err = s.app.LedgerController.DeleteEntry(s.ctx, model.LedgerKindGame, "game-1")
	s.Require().NoError(err)

	players, err := s.app.LedgerController.KnownPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PlayerKey{"carol"}, players)

	boards, err := s.app.LeaderboardService.Compute(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(boards.Overall, 1)
	s.Equal(model.PlayerKey("carol"), boards.Overall[0].Player)
}

// Test: production factory wires a working memory-backed app
func (s *IntegrationSuite) TestProductionFactoryDefaults() {
	app, err := New(Config{})
	s.Require().NoError(err)

	s.NotNil(app.Storage)
	s.NotNil(app.LedgerController)
	s.False(app.AuthService.Enabled())

	recorded, err := app.LedgerController.RecordGame(s.ctx, ledger.GameInput{
		GameName: "Catan",
		GameType: model.GameTypeSolo,
		Players:  []string{"Alice"},
		Ranks:    []int{1},
	})
	s.Require().NoError(err)
	s.NotEmpty(recorded.GameID)
}

func (s *IntegrationSuite) TestFactoryRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "cassandra"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryRequiresRedisConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}
