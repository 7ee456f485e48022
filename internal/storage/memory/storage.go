package memory

import (
	"context"
	"sync"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The mutex is the synchronization point guaranteeing a multi-row game
// append is never observed half-written.
type Storage struct {
	mu sync.RWMutex

	// games holds ledger rows in insertion order; all rows of one game are
	// contiguous because AppendGame holds the lock for the whole batch.
	games       []*model.GameResult
	adjustments []*model.Adjustment
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game ledger operations

func (s *Storage) AppendGame(ctx context.Context, rows []*model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append(s.games, rows...)
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.GameResult, len(s.games))
	copy(out, s.games)
	return out, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.games[:0]
	removed := 0
	for _, row := range s.games {
		if row.GameID == id {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	if removed == 0 {
		return model.ErrGameNotFound
	}
	s.games = kept
	return nil
}

// Adjustment ledger operations

func (s *Storage) AppendAdjustment(ctx context.Context, adj *model.Adjustment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustments = append(s.adjustments, adj)
	return nil
}

func (s *Storage) ListAdjustments(ctx context.Context) ([]*model.Adjustment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Adjustment, len(s.adjustments))
	copy(out, s.adjustments)
	return out, nil
}

func (s *Storage) DeleteAdjustment(ctx context.Context, id model.AdjustmentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, adj := range s.adjustments {
		if adj.ID == id {
			s.adjustments = append(s.adjustments[:i], s.adjustments[i+1:]...)
			return nil
		}
	}
	return model.ErrAdjustmentNotFound
}

func (s *Storage) DistinctPlayers(ctx context.Context) ([]model.PlayerKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[model.PlayerKey]bool)
	var players []model.PlayerKey
	for _, row := range s.games {
		if !seen[row.Player] {
			seen[row.Player] = true
			players = append(players, row.Player)
		}
	}
	return players, nil
}
