package model

// GameID identifies one recorded game. Every per-player row of that game
// shares the same GameID.
type GameID string

// GameType is a closed enum over the supported scoring modes.
// Anything else is rejected at the validation boundary with
// InvalidGameTypeError; the scoring engine never sees an unknown type.
type GameType string

const (
	// GameTypeSolo is a free-for-all: full payout per rank, no splitting.
	GameTypeSolo GameType = "solo"
	// GameTypeTeam is the asymmetric challenger-vs-group mode: only rank 1
	// pays out.
	GameTypeTeam GameType = "team"
	// GameTypePair splits each rank's pot evenly among the players tied at
	// that rank.
	GameTypePair GameType = "pair"
)

// ParseGameType validates a user-supplied game type token.
func ParseGameType(raw string) (GameType, error) {
	switch GameType(raw) {
	case GameTypeSolo, GameTypeTeam, GameTypePair:
		return GameType(raw), nil
	default:
		return "", &InvalidGameTypeError{Value: raw}
	}
}

// ManualRank is the rank sentinel stored when points were entered manually
// rather than derived from placement.
const ManualRank = -1

// GameResult is one ledger row: one player's outcome in one recorded game.
type GameResult struct {
	GameID   GameID    `json:"game_id"`
	GameName string    `json:"game_name"`
	Player   PlayerKey `json:"player_key"`
	// Date is the calendar date of the game in ISO form (YYYY-MM-DD).
	Date     string   `json:"date"`
	GameType GameType `json:"game_type"`
	// Rank is the player's placement, 1 = best. ManualRank (-1) when the
	// points were supplied directly.
	Rank int `json:"rank"`
	// Participants is the normalized set of all players in the game, stored
	// redundantly on every row for display.
	Participants []PlayerKey `json:"participants"`
	Points       float64     `json:"points_awarded"`
}

// GameSummary groups the rows of one recorded game for listing and removal.
type GameSummary struct {
	GameID       GameID      `json:"game_id"`
	GameName     string      `json:"game_name"`
	Date         string      `json:"date"`
	GameType     GameType    `json:"game_type"`
	Participants []PlayerKey `json:"participants"`
	Rows         []*GameResult `json:"rows"`
}

// LedgerKind discriminates which ledger a deletion targets.
type LedgerKind string

const (
	LedgerKindGame       LedgerKind = "game"
	LedgerKindAdjustment LedgerKind = "adjustment"
)

// ParseLedgerKind validates a deletion discriminator token.
func ParseLedgerKind(raw string) (LedgerKind, error) {
	switch LedgerKind(raw) {
	case LedgerKindGame, LedgerKindAdjustment:
		return LedgerKind(raw), nil
	default:
		return "", &InvalidInputError{Raw: raw}
	}
}
