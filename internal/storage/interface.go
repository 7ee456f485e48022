package storage

import (
	"context"

	"github.com/boredgamers/tally/internal/model"
)

// Storage defines the interface for ledger persistence. Both ledgers are
// append-only aside from whole-entry deletion.
type Storage interface {
	// Game ledger operations.
	// AppendGame persists all rows of one recorded game atomically: a
	// concurrent ListGames never observes a half-written game.
	AppendGame(ctx context.Context, rows []*model.GameResult) error
	ListGames(ctx context.Context) ([]*model.GameResult, error)
	// DeleteGame removes every row sharing the given game ID.
	DeleteGame(ctx context.Context, id model.GameID) error

	// Adjustment ledger operations.
	AppendAdjustment(ctx context.Context, adj *model.Adjustment) error
	ListAdjustments(ctx context.Context) ([]*model.Adjustment, error)
	DeleteAdjustment(ctx context.Context, id model.AdjustmentID) error

	// DistinctPlayers returns every player key that appears in the game
	// ledger, in no particular order.
	DistinctPlayers(ctx context.Context) ([]model.PlayerKey, error)
}
