package model

// ProvisionalThreshold is the number of recorded game rows below which a
// player is provisional and excluded from classification.
const ProvisionalThreshold = 3

// PlayerClass buckets non-provisional players by average points per game.
type PlayerClass string

const (
	ClassA PlayerClass = "A"
	ClassB PlayerClass = "B"
	ClassC PlayerClass = "C"
	// ClassNone is reported for provisional players, which are never
	// classified.
	ClassNone PlayerClass = ""
)

// LeaderboardRow is one derived ranking entry. Rows are computed fresh on
// every request by folding the full ledger; they are never persisted.
type LeaderboardRow struct {
	Player        PlayerKey   `json:"player_key"`
	Points        float64     `json:"points"`
	GameCount     int         `json:"game_count"`
	IsProvisional bool        `json:"is_provisional"`
	Class         PlayerClass `json:"class,omitempty"`
}

// Leaderboards is the full aggregation result: the overall ranking, the
// solo-only ranking, and per-player game counts.
type Leaderboards struct {
	Overall    []LeaderboardRow    `json:"overall"`
	SoloOnly   []LeaderboardRow    `json:"solo_only"`
	GameCounts map[PlayerKey]int   `json:"game_counts"`
}

// ClassifyAverage maps an average points-per-game to a class.
// Thresholds: >3 is A, >1 and <=3 is B, otherwise C.
func ClassifyAverage(avg float64) PlayerClass {
	switch {
	case avg > 3:
		return ClassA
	case avg > 1:
		return ClassB
	default:
		return ClassC
	}
}
