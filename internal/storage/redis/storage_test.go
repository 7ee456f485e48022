package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/boredgamers/tally/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func gameRows(id string, players ...model.PlayerKey) []*model.GameResult {
	rows := make([]*model.GameResult, len(players))
	for i, p := range players {
		rows[i] = &model.GameResult{
			GameID:       model.GameID(id),
			GameName:     "catan",
			Player:       p,
			Date:         "2024-01-15",
			GameType:     model.GameTypeSolo,
			Rank:         i + 1,
			Participants: players,
			Points:       float64(6 - i),
		}
	}
	return rows
}

// Game ledger tests

func (s *StorageSuite) TestAppendAndListGames() {
	err := s.storage.AppendGame(s.ctx, gameRows("g1", "alice", "bob"))
	s.Require().NoError(err)

	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(model.GameID("g1"), rows[0].GameID)
	s.Equal("catan", rows[0].GameName)
	s.Equal([]model.PlayerKey{"alice", "bob"}, rows[0].Participants)
}

func (s *StorageSuite) TestGameRowsKeptTogether() {
	// All rows of one game live under one value, so a listing never sees a
	// partial game.
	_ = s.storage.AppendGame(s.ctx, gameRows("g1", "alice", "bob", "carol"))

	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(rows, 3)
	for _, row := range rows {
		s.Equal(model.GameID("g1"), row.GameID)
	}
}

func (s *StorageSuite) TestAppendEmptyGameIsNoop() {
	err := s.storage.AppendGame(s.ctx, nil)
	s.Require().NoError(err)

	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.AppendGame(s.ctx, gameRows("g1", "alice", "bob"))
	_ = s.storage.AppendGame(s.ctx, gameRows("g2", "carol"))

	err := s.storage.DeleteGame(s.ctx, "g1")
	s.Require().NoError(err)

	rows, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(model.GameID("g2"), rows[0].GameID)
}

func (s *StorageSuite) TestDeleteGameNotFound() {
	err := s.storage.DeleteGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Adjustment ledger tests

func (s *StorageSuite) TestAppendAndListAdjustments() {
	adj := &model.Adjustment{
		ID:     "a1",
		Player: "alice",
		Date:   "2024-01-16",
		Points: -2.5,
		Reason: "late cleanup",
	}
	err := s.storage.AppendAdjustment(s.ctx, adj)
	s.Require().NoError(err)

	adjustments, err := s.storage.ListAdjustments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(adjustments, 1)
	s.Equal(adj.ID, adjustments[0].ID)
	s.Equal(adj.Points, adjustments[0].Points)
	s.Equal(adj.Reason, adjustments[0].Reason)
}

func (s *StorageSuite) TestDeleteAdjustment() {
	_ = s.storage.AppendAdjustment(s.ctx, &model.Adjustment{ID: "a1", Player: "alice"})

	err := s.storage.DeleteAdjustment(s.ctx, "a1")
	s.Require().NoError(err)

	adjustments, err := s.storage.ListAdjustments(s.ctx)
	s.Require().NoError(err)
	s.Empty(adjustments)
}

func (s *StorageSuite) TestDeleteAdjustmentNotFound() {
	err := s.storage.DeleteAdjustment(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAdjustmentNotFound)
}

// DistinctPlayers tests

func (s *StorageSuite) TestDistinctPlayers() {
	_ = s.storage.AppendGame(s.ctx, gameRows("g1", "bob", "alice"))
	_ = s.storage.AppendGame(s.ctx, gameRows("g2", "alice", "carol"))

	players, err := s.storage.DistinctPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 3)
	s.Contains(players, model.PlayerKey("alice"))
	s.Contains(players, model.PlayerKey("bob"))
	s.Contains(players, model.PlayerKey("carol"))
}

// Failure tests

func (s *StorageSuite) TestUnavailableWhenServerDown() {
	s.mini.Close()

	_, err := s.storage.ListGames(s.ctx)
	s.ErrorIs(err, model.ErrStorageUnavailable)

	err = s.storage.AppendGame(s.ctx, gameRows("g1", "alice"))
	s.ErrorIs(err, model.ErrStorageUnavailable)
}
