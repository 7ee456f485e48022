package ledger

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/boredgamers/tally/internal/dependencies/clock"
	"github.com/boredgamers/tally/internal/dependencies/idgen"
	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/dates"
	"github.com/boredgamers/tally/internal/services/player"
	"github.com/boredgamers/tally/internal/services/scoring"
	"github.com/boredgamers/tally/internal/storage"
)

// Controller owns all writes to the two ledgers and the read shapes the
// presentation layer consumes.
type Controller struct {
	storage        storage.Storage
	playerService  player.ServiceInterface
	scoringService scoring.ServiceInterface
	dateService    dates.ServiceInterface
	clock          clock.Clock
	idgen          idgen.IDGen
	logger         *slog.Logger
}

// NewController creates a new ledger controller
func NewController(
	storage storage.Storage,
	playerService player.ServiceInterface,
	scoringService scoring.ServiceInterface,
	dateService dates.ServiceInterface,
	clock clock.Clock,
	idgen idgen.IDGen,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		playerService:  playerService,
		scoringService: scoringService,
		dateService:    dateService,
		clock:          clock,
		idgen:          idgen,
		logger:         logger,
	}
}

// GameInput describes an auto-scored game to record: the engine derives the
// per-player points from the ranks.
type GameInput struct {
	GameName string
	GameType model.GameType
	// Players are raw names; they are normalized before anything else.
	Players []string
	Ranks   []int
	// Date is free-form user input ("today", "2025-06-01"); empty means today.
	Date string
}

// ManualGameInput describes a game whose points were entered directly.
type ManualGameInput struct {
	GameName string
	GameType model.GameType
	Players  []string
	Points   []float64
	Date     string
}

// RecordedGame reports what was persisted, for confirmation rendering.
type RecordedGame struct {
	GameID  model.GameID
	Date    string
	Players []model.PlayerKey
	// Awards holds each player's delta in Players order.
	Awards map[model.PlayerKey]float64
}

// RecordGame validates, scores and persists an auto-scored game as one row
// per player under a shared game ID. Validation failures leave the ledger
// untouched.
func (c *Controller) RecordGame(ctx context.Context, input GameInput) (*RecordedGame, error) {
	players, err := c.playerService.NormalizeAll(input.Players)
	if err != nil {
		return nil, err
	}

	awards, err := c.scoringService.AwardPoints(input.GameType, players, input.Ranks)
	if err != nil {
		return nil, err
	}

	date, err := c.dateService.Parse(input.Date, c.clock.Now())
	if err != nil {
		return nil, err
	}

	gameID := model.GameID(c.idgen.NewID())
	rows := make([]*model.GameResult, 0, len(players))
	for i, p := range players {
		rows = append(rows, &model.GameResult{
			GameID:       gameID,
			GameName:     input.GameName,
			Player:       p,
			Date:         date,
			GameType:     input.GameType,
			Rank:         input.Ranks[i],
			Participants: players,
			Points:       awards[p],
		})
	}

	if err := c.storage.AppendGame(ctx, rows); err != nil {
		c.logger.Error("failed to append game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game recorded",
		slog.String("game_id", string(gameID)),
		slog.String("game_name", input.GameName),
		slog.String("game_type", string(input.GameType)),
		slog.Int("player_count", len(players)),
	)

	return &RecordedGame{GameID: gameID, Date: date, Players: players, Awards: awards}, nil
}

// RecordManualGame persists a game whose points were supplied verbatim.
// Rows carry the manual-entry rank sentinel instead of a placement.
func (c *Controller) RecordManualGame(ctx context.Context, input ManualGameInput) (*RecordedGame, error) {
	players, err := c.playerService.NormalizeAll(input.Players)
	if err != nil {
		return nil, err
	}

	if err := c.scoringService.ValidateManualPoints(players, input.Points); err != nil {
		return nil, err
	}
	for _, pts := range input.Points {
		if math.IsNaN(pts) || math.IsInf(pts, 0) {
			return nil, &model.InvalidInputError{Raw: "points must be finite"}
		}
	}

	date, err := c.dateService.Parse(input.Date, c.clock.Now())
	if err != nil {
		return nil, err
	}

	gameID := model.GameID(c.idgen.NewID())
	awards := make(map[model.PlayerKey]float64, len(players))
	rows := make([]*model.GameResult, 0, len(players))
	for i, p := range players {
		awards[p] = input.Points[i]
		rows = append(rows, &model.GameResult{
			GameID:       gameID,
			GameName:     input.GameName,
			Player:       p,
			Date:         date,
			GameType:     input.GameType,
			Rank:         model.ManualRank,
			Participants: players,
			Points:       input.Points[i],
		})
	}

	if err := c.storage.AppendGame(ctx, rows); err != nil {
		c.logger.Error("failed to append game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("manual game recorded",
		slog.String("game_id", string(gameID)),
		slog.String("game_name", input.GameName),
		slog.Int("player_count", len(players)),
	)

	return &RecordedGame{GameID: gameID, Date: date, Players: players, Awards: awards}, nil
}

// RecordAdjustment persists a signed out-of-game correction for one player.
func (c *Controller) RecordAdjustment(ctx context.Context, rawName string, points float64, reason, date string) (*model.Adjustment, error) {
	key, err := c.playerService.Normalize(rawName)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(points) || math.IsInf(points, 0) {
		return nil, &model.InvalidInputError{Raw: "points must be finite"}
	}

	isoDate, err := c.dateService.Parse(date, c.clock.Now())
	if err != nil {
		return nil, err
	}

	adj := &model.Adjustment{
		ID:     model.AdjustmentID(c.idgen.NewID()),
		Player: key,
		Date:   isoDate,
		Points: points,
		Reason: reason,
	}

	if err := c.storage.AppendAdjustment(ctx, adj); err != nil {
		c.logger.Error("failed to append adjustment",
			slog.String("adj_id", string(adj.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("adjustment recorded",
		slog.String("adj_id", string(adj.ID)),
		slog.String("player", string(key)),
		slog.Float64("points", points),
	)

	return adj, nil
}

// ListGames returns all recorded games grouped into per-game summaries,
// ordered by date then game ID for stable rendering.
func (c *Controller) ListGames(ctx context.Context) ([]*model.GameSummary, error) {
	rows, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[model.GameID]*model.GameSummary)
	var summaries []*model.GameSummary
	for _, row := range rows {
		summary, ok := byID[row.GameID]
		if !ok {
			summary = &model.GameSummary{
				GameID:       row.GameID,
				GameName:     row.GameName,
				Date:         row.Date,
				GameType:     row.GameType,
				Participants: row.Participants,
			}
			byID[row.GameID] = summary
			summaries = append(summaries, summary)
		}
		summary.Rows = append(summary.Rows, row)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date < summaries[j].Date
		}
		return summaries[i].GameID < summaries[j].GameID
	})
	return summaries, nil
}

// ListAdjustments returns all adjustments ordered by date then ID.
func (c *Controller) ListAdjustments(ctx context.Context) ([]*model.Adjustment, error) {
	adjs, err := c.storage.ListAdjustments(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(adjs, func(i, j int) bool {
		if adjs[i].Date != adjs[j].Date {
			return adjs[i].Date < adjs[j].Date
		}
		return adjs[i].ID < adjs[j].ID
	})
	return adjs, nil
}

// DeleteEntry removes one ledger entry by kind and opaque ID. Deleting a
// game removes every row of that game. An unknown ID is a reported no-op
// failure.
func (c *Controller) DeleteEntry(ctx context.Context, kind model.LedgerKind, id string) error {
	var err error
	switch kind {
	case model.LedgerKindGame:
		err = c.storage.DeleteGame(ctx, model.GameID(id))
	case model.LedgerKindAdjustment:
		err = c.storage.DeleteAdjustment(ctx, model.AdjustmentID(id))
	default:
		return &model.InvalidInputError{Raw: string(kind)}
	}
	if err != nil {
		return err
	}

	c.logger.Info("ledger entry deleted",
		slog.String("kind", string(kind)),
		slog.String("id", id),
	)
	return nil
}

// KnownPlayers returns every player seen in the game ledger, sorted, for
// the "previous players" prompt.
func (c *Controller) KnownPlayers(ctx context.Context) ([]model.PlayerKey, error) {
	players, err := c.storage.DistinctPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool { return players[i] < players[j] })
	return players, nil
}
