package model

// AdjustmentID identifies one manual point adjustment.
type AdjustmentID string

// Adjustment is an ad hoc signed point correction outside any game.
// Adjustments count toward the overall leaderboard only, never toward
// solo-only totals.
type Adjustment struct {
	ID     AdjustmentID `json:"adj_id"`
	Player PlayerKey    `json:"player_key"`
	// Date is the calendar date of the adjustment in ISO form (YYYY-MM-DD).
	Date   string  `json:"date"`
	Points float64 `json:"points"`
	Reason string  `json:"reason,omitempty"`
}
