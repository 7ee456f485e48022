package leaderboard

import (
	"context"
	"sort"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/storage"
)

// Service folds the full ledger into ranked leaderboards. It owns no durable
// state; every call reads the ledger fresh.
type Service struct {
	storage storage.Storage
}

// New creates a new leaderboard service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Compute builds the overall and solo-only leaderboards and per-player game
// counts from every game row and adjustment.
//
// Every game row adds its points to the player's overall total (and solo
// total for solo games) and bumps the game count by one. Adjustments add to
// the overall total only; they are out-of-game corrections and never touch
// solo standings. Rows sort by points descending; ties break alphabetically
// by player key, which makes repeated calls over an unchanged ledger yield
// identical output.
func (s *Service) Compute(ctx context.Context) (*model.Leaderboards, error) {
	rows, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	adjustments, err := s.storage.ListAdjustments(ctx)
	if err != nil {
		return nil, err
	}

	totalPoints := make(map[model.PlayerKey]float64)
	soloPoints := make(map[model.PlayerKey]float64)
	gameCount := make(map[model.PlayerKey]int)

	for _, row := range rows {
		totalPoints[row.Player] += row.Points
		if row.GameType == model.GameTypeSolo {
			soloPoints[row.Player] += row.Points
		}
		gameCount[row.Player]++
	}

	for _, adj := range adjustments {
		totalPoints[adj.Player] += adj.Points
	}

	overall := buildRows(totalPoints, gameCount)
	// Classification applies to the overall list only, and only to players
	// past the provisional threshold.
	for i := range overall {
		row := &overall[i]
		if !row.IsProvisional && row.GameCount > 0 {
			row.Class = model.ClassifyAverage(row.Points / float64(row.GameCount))
		}
	}

	return &model.Leaderboards{
		Overall:    overall,
		SoloOnly:   buildRows(soloPoints, gameCount),
		GameCounts: gameCount,
	}, nil
}

func buildRows(points map[model.PlayerKey]float64, gameCount map[model.PlayerKey]int) []model.LeaderboardRow {
	rows := make([]model.LeaderboardRow, 0, len(points))
	for p, pts := range points {
		rows = append(rows, model.LeaderboardRow{
			Player:        p,
			Points:        pts,
			GameCount:     gameCount[p],
			IsProvisional: gameCount[p] < model.ProvisionalThreshold,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}

// Interface for dependency injection
type ServiceInterface interface {
	Compute(ctx context.Context) (*model.Leaderboards, error)
}

var _ ServiceInterface = (*Service)(nil)
