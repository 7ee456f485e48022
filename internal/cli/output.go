package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RecordedGame:
		o.printRecordedGame(v)
	case GamesResult:
		o.printGames(v)
	case Adjustment:
		o.printAdjustment(v)
	case AdjustmentsResult:
		o.printAdjustments(v)
	case LeaderboardResult:
		o.printLeaderboard(v)
	case PlayersResult:
		o.printPlayers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerAward response type (matches API)
type PlayerAward struct {
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Points      float64 `json:"points"`
}

// RecordedGame response type
type RecordedGame struct {
	GameID string        `json:"game_id"`
	Date   string        `json:"date"`
	Awards []PlayerAward `json:"awards"`
}

// GameRow response type
type GameRow struct {
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Rank        int     `json:"rank"`
	Points      float64 `json:"points"`
}

// GameSummary response type
type GameSummary struct {
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Date         string    `json:"date"`
	GameType     string    `json:"game_type"`
	Participants []string  `json:"participants"`
	Rows         []GameRow `json:"rows"`
}

// GamesResult response type
type GamesResult struct {
	Games []GameSummary `json:"games"`
}

// Adjustment response type
type Adjustment struct {
	ID          string  `json:"adj_id"`
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Date        string  `json:"date"`
	Points      float64 `json:"points"`
	Reason      string  `json:"reason,omitempty"`
}

// AdjustmentsResult response type
type AdjustmentsResult struct {
	Adjustments []Adjustment `json:"adjustments"`
}

// LeaderboardRow response type
type LeaderboardRow struct {
	Position    int    `json:"position"`
	Player      string `json:"player"`
	DisplayName string `json:"display_name"`
	Points      string `json:"points"`
	Provisional bool   `json:"provisional"`
	Class       string `json:"class,omitempty"`
}

// LeaderboardResult response type
type LeaderboardResult struct {
	Overall    []LeaderboardRow `json:"overall"`
	SoloOnly   []LeaderboardRow `json:"solo_only"`
	GameCounts map[string]int   `json:"game_counts"`
}

// PlayersResult response type
type PlayersResult struct {
	Players []string `json:"players"`
}

// ConversationReply response type
type ConversationReply struct {
	Prompt   string        `json:"prompt"`
	Done     bool          `json:"done"`
	Recorded *RecordedGame `json:"recorded,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRecordedGame(g RecordedGame) {
	fmt.Printf("Recorded game %s (%s)\n", g.GameID, g.Date)
	for _, a := range g.Awards {
		fmt.Printf("  %s: %+.1f\n", a.DisplayName, a.Points)
	}
}

func (o *Output) printGames(result GamesResult) {
	if len(result.Games) == 0 {
		fmt.Println("No games recorded.")
		return
	}
	for _, g := range result.Games {
		fmt.Printf("[%s] %s on %s (%s) with %s\n",
			g.GameID, g.GameName, g.Date, g.GameType, strings.Join(g.Participants, ", "))
		for _, row := range g.Rows {
			if row.Rank > 0 {
				fmt.Printf("  #%d %s: %+.1f\n", row.Rank, row.DisplayName, row.Points)
			} else {
				fmt.Printf("  %s: %+.1f\n", row.DisplayName, row.Points)
			}
		}
	}
}

func (o *Output) printAdjustment(a Adjustment) {
	line := fmt.Sprintf("[%s] %s: %+.1f on %s", a.ID, a.DisplayName, a.Points, a.Date)
	if a.Reason != "" {
		line += " (" + a.Reason + ")"
	}
	fmt.Println(line)
}

func (o *Output) printAdjustments(result AdjustmentsResult) {
	if len(result.Adjustments) == 0 {
		fmt.Println("No adjustments recorded.")
		return
	}
	for _, a := range result.Adjustments {
		o.printAdjustment(a)
	}
}

func (o *Output) printLeaderboard(result LeaderboardResult) {
	fmt.Println("Overall Leaderboard")
	o.printLeaderboardRows(result.Overall)
	fmt.Println()
	fmt.Println("Solo-Only Leaderboard")
	o.printLeaderboardRows(result.SoloOnly)
}

func (o *Output) printLeaderboardRows(rows []LeaderboardRow) {
	if len(rows) == 0 {
		fmt.Println("  (empty)")
		return
	}
	for _, row := range rows {
		marker := ""
		if row.Provisional {
			marker = " (Provisional)"
		} else if row.Class != "" {
			marker = fmt.Sprintf(" (Type %s Player)", row.Class)
		}
		fmt.Printf("%d. %s - %s pts%s\n", row.Position, row.DisplayName, row.Points, marker)
	}
}

func (o *Output) printPlayers(result PlayersResult) {
	if len(result.Players) == 0 {
		fmt.Println("No players found.")
		return
	}
	fmt.Println(strings.Join(result.Players, ", "))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
