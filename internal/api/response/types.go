package response

import (
	"fmt"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/ledger"
)

// DisplayFunc renders a player key for presentation.
type DisplayFunc func(model.PlayerKey) string

// PlayerAward is one player's delta from a recorded game
type PlayerAward struct {
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Points      float64 `json:"points"`
}

// RecordedGame is the response for recording a game
type RecordedGame struct {
	GameID string        `json:"game_id"`
	Date   string        `json:"date"`
	Awards []PlayerAward `json:"awards"`
}

// RecordedGameFromResult converts a ledger record result
func RecordedGameFromResult(r *ledger.RecordedGame, display DisplayFunc) RecordedGame {
	awards := make([]PlayerAward, 0, len(r.Players))
	for _, p := range r.Players {
		awards = append(awards, PlayerAward{
			Player:      string(p),
			DisplayName: display(p),
			Points:      r.Awards[p],
		})
	}
	return RecordedGame{
		GameID: string(r.GameID),
		Date:   r.Date,
		Awards: awards,
	}
}

// GameRow is one player's row within a game listing
type GameRow struct {
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Rank        int     `json:"rank"`
	Points      float64 `json:"points"`
}

// GameSummary is one recorded game in a listing. GameID is the stable
// identifier usable for deletion.
type GameSummary struct {
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Date         string    `json:"date"`
	GameType     string    `json:"game_type"`
	Participants []string  `json:"participants"`
	Rows         []GameRow `json:"rows"`
}

// GameSummaryFromModel converts a model.GameSummary
func GameSummaryFromModel(g *model.GameSummary, display DisplayFunc) GameSummary {
	participants := make([]string, len(g.Participants))
	for i, p := range g.Participants {
		participants[i] = display(p)
	}
	rows := make([]GameRow, 0, len(g.Rows))
	for _, row := range g.Rows {
		rows = append(rows, GameRow{
			Player:      string(row.Player),
			DisplayName: display(row.Player),
			Rank:        row.Rank,
			Points:      row.Points,
		})
	}
	return GameSummary{
		GameID:       string(g.GameID),
		GameName:     g.GameName,
		Date:         g.Date,
		GameType:     string(g.GameType),
		Participants: participants,
		Rows:         rows,
	}
}

// GamesResponse lists all recorded games
type GamesResponse struct {
	Games []GameSummary `json:"games"`
}

// Adjustment is one manual adjustment in a listing. ID is the stable
// identifier usable for deletion.
type Adjustment struct {
	ID          string  `json:"adj_id"`
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Date        string  `json:"date"`
	Points      float64 `json:"points"`
	Reason      string  `json:"reason,omitempty"`
}

// AdjustmentFromModel converts a model.Adjustment
func AdjustmentFromModel(a *model.Adjustment, display DisplayFunc) Adjustment {
	return Adjustment{
		ID:          string(a.ID),
		Player:      string(a.Player),
		DisplayName: display(a.Player),
		Date:        a.Date,
		Points:      a.Points,
		Reason:      a.Reason,
	}
}

// AdjustmentsResponse lists all adjustments
type AdjustmentsResponse struct {
	Adjustments []Adjustment `json:"adjustments"`
}

// LeaderboardRow is one ranked entry shaped for presentation: display name,
// points to one decimal, provisional flag, and classification or none.
type LeaderboardRow struct {
	Position    int    `json:"position"`
	Player      string `json:"player"`
	DisplayName string `json:"display_name"`
	Points      string `json:"points"`
	Provisional bool   `json:"provisional"`
	Class       string `json:"class,omitempty"`
}

// LeaderboardResponse is the response for the leaderboard endpoint
type LeaderboardResponse struct {
	Overall    []LeaderboardRow `json:"overall"`
	SoloOnly   []LeaderboardRow `json:"solo_only"`
	GameCounts map[string]int   `json:"game_counts"`
}

// LeaderboardFromModel converts model.Leaderboards into presentation shape
func LeaderboardFromModel(lb *model.Leaderboards, display DisplayFunc) LeaderboardResponse {
	counts := make(map[string]int, len(lb.GameCounts))
	for p, n := range lb.GameCounts {
		counts[string(p)] = n
	}
	return LeaderboardResponse{
		Overall:    leaderboardRows(lb.Overall, display),
		SoloOnly:   leaderboardRows(lb.SoloOnly, display),
		GameCounts: counts,
	}
}

func leaderboardRows(rows []model.LeaderboardRow, display DisplayFunc) []LeaderboardRow {
	out := make([]LeaderboardRow, 0, len(rows))
	for i, row := range rows {
		out = append(out, LeaderboardRow{
			Position:    i + 1,
			Player:      string(row.Player),
			DisplayName: display(row.Player),
			Points:      fmt.Sprintf("%.1f", row.Points),
			Provisional: row.IsProvisional,
			Class:       string(row.Class),
		})
	}
	return out
}

// PlayersResponse lists known players
type PlayersResponse struct {
	Players []string `json:"players"`
}

// ConversationReply is the orchestrator's answer to one user message
type ConversationReply struct {
	Prompt   string        `json:"prompt"`
	Done     bool          `json:"done"`
	Recorded *RecordedGame `json:"recorded,omitempty"`
}
