package model

// PlayerKey is the canonical identity of a player: lowercased, trimmed.
// All ledger rows and aggregates are keyed by it; the display form is
// derived, never stored.
type PlayerKey string
