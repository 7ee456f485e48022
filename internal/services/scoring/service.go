package scoring

import (
	"github.com/boredgamers/tally/internal/model"
)

// Payout pots per rank. A rank outside the table pays nothing.
const (
	firstPlacePot  = 6.0
	secondPlacePot = 3.0
	thirdPlacePot  = 1.0
)

// Service computes per-player point deltas for a recorded game.
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// AwardPoints computes each player's point delta from the paired players and
// ranks sequences.
//
// Modes:
//   - solo: {1:6, 2:3, 3:1, other:0}; every player at a rank receives that
//     rank's full value.
//   - team: only rank 1 pays. A lone rank-1 player (the challenger beat the
//     team) receives 6; otherwise the rank-1 group splits 6 evenly. Everyone
//     else receives 0.
//   - pair: same pots as solo, but each rank's pot is split evenly among the
//     players sharing it.
//
// Both sequences must be non-empty and the same length, and a player may not
// appear twice in one game.
func (s *Service) AwardPoints(gameType model.GameType, players []model.PlayerKey, ranks []int) (map[model.PlayerKey]float64, error) {
	if len(players) == 0 || len(players) != len(ranks) {
		return nil, &model.MismatchedCountError{
			Players: len(players),
			Values:  len(ranks),
			What:    "ranks",
		}
	}

	awarded := make(map[model.PlayerKey]float64, len(players))
	rankMap := make(map[int][]model.PlayerKey)
	for i, p := range players {
		if _, seen := awarded[p]; seen {
			return nil, model.ErrDuplicatePlayer
		}
		awarded[p] = 0
		rankMap[ranks[i]] = append(rankMap[ranks[i]], p)
	}

	switch gameType {
	case model.GameTypeSolo:
		for rank, group := range rankMap {
			pot := potForRank(rank)
			for _, p := range group {
				awarded[p] = pot
			}
		}

	case model.GameTypeTeam:
		winners := rankMap[1]
		if len(winners) == 1 {
			// The lone challenger beat the team.
			awarded[winners[0]] = firstPlacePot
		} else {
			for _, p := range winners {
				awarded[p] = firstPlacePot / float64(len(winners))
			}
		}

	case model.GameTypePair:
		for rank, group := range rankMap {
			split := potForRank(rank) / float64(len(group))
			for _, p := range group {
				awarded[p] = split
			}
		}

	default:
		// Unknown types are rejected at the parse boundary; reaching here
		// with one is a programming error, but it must still fail loudly
		// rather than score everyone to zero.
		return nil, &model.InvalidGameTypeError{Value: string(gameType)}
	}

	return awarded, nil
}

// ValidateManualPoints checks a manually-entered points sequence against the
// player list. Points are taken verbatim; only the pairing is validated.
func (s *Service) ValidateManualPoints(players []model.PlayerKey, points []float64) error {
	if len(players) == 0 || len(players) != len(points) {
		return &model.MismatchedCountError{
			Players: len(players),
			Values:  len(points),
			What:    "points",
		}
	}
	seen := make(map[model.PlayerKey]bool, len(players))
	for _, p := range players {
		if seen[p] {
			return model.ErrDuplicatePlayer
		}
		seen[p] = true
	}
	return nil
}

func potForRank(rank int) float64 {
	switch rank {
	case 1:
		return firstPlacePot
	case 2:
		return secondPlacePot
	case 3:
		return thirdPlacePot
	default:
		return 0
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	AwardPoints(gameType model.GameType, players []model.PlayerKey, ranks []int) (map[model.PlayerKey]float64, error)
	ValidateManualPoints(players []model.PlayerKey, points []float64) error
}

var _ ServiceInterface = (*Service)(nil)
