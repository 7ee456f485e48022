package request

// RecordGameRequest is the request body for recording an auto-scored game
type RecordGameRequest struct {
	GameName string   `json:"game_name"`
	GameType string   `json:"game_type"`
	Players  []string `json:"players"`
	Ranks    []int    `json:"ranks"`
	// Date accepts ISO form or natural phrases like "today"; empty means
	// today.
	Date string `json:"date,omitempty"`
}

// RecordManualGameRequest is the request body for recording a game with
// manually specified points
type RecordManualGameRequest struct {
	GameName string    `json:"game_name"`
	GameType string    `json:"game_type"`
	Players  []string  `json:"players"`
	Points   []float64 `json:"points"`
	Date     string    `json:"date,omitempty"`
}

// RecordAdjustmentRequest is the request body for recording a manual point
// adjustment
type RecordAdjustmentRequest struct {
	Player string  `json:"player"`
	Points float64 `json:"points"`
	Reason string  `json:"reason,omitempty"`
	Date   string  `json:"date,omitempty"`
}

// StartConversationRequest is the request body for starting a game-entry
// conversation
type StartConversationRequest struct {
	// Mode is "auto" (points from ranks) or "manual" (points entered)
	Mode string `json:"mode"`
}

// ConversationMessageRequest is the request body for one user message in a
// conversation
type ConversationMessageRequest struct {
	Text string `json:"text"`
}
