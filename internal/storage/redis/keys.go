package redis

import (
	"fmt"

	"github.com/boredgamers/tally/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "tally"

// gameKey returns the Redis key holding all rows of one recorded game.
// Storing the whole row batch as a single value is what makes the multi-row
// game insert atomic.
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of recorded game IDs
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// adjustmentKey returns the Redis key for an Adjustment
func adjustmentKey(id model.AdjustmentID) string {
	return fmt.Sprintf("%s:adjustment:%s", keyPrefix, id)
}

// adjustmentsIndexKey returns the Redis key for the SET of adjustment IDs
func adjustmentsIndexKey() string {
	return fmt.Sprintf("%s:idx:adjustments", keyPrefix)
}
