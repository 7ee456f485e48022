package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// unavailable wraps a transport failure so callers can treat it as retryable.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}

// Game ledger operations

func (s *Storage) AppendGame(ctx context.Context, rows []*model.GameResult) error {
	if len(rows) == 0 {
		return nil
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	id := rows[0].GameID

	// Value write and index update go through one transaction, so a reader
	// either sees the whole game or none of it.
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, gameKey(id), data, 0)
	pipe.SAdd(ctx, gamesIndexKey(), string(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.GameResult, error) {
	ids, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	var all []*model.GameResult
	for _, id := range ids {
		data, err := s.client.Get(ctx, gameKey(model.GameID(id))).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Index entry without a value: deletion raced us; skip.
				continue
			}
			return nil, unavailable(err)
		}

		var rows []*model.GameResult
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, gameKey(id))
	pipe.SRem(ctx, gamesIndexKey(), string(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(err)
	}
	if delCmd.Val() == 0 {
		return model.ErrGameNotFound
	}
	return nil
}

// Adjustment ledger operations

func (s *Storage) AppendAdjustment(ctx context.Context, adj *model.Adjustment) error {
	data, err := json.Marshal(adj)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, adjustmentKey(adj.ID), data, 0)
	pipe.SAdd(ctx, adjustmentsIndexKey(), string(adj.ID))
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Storage) ListAdjustments(ctx context.Context) ([]*model.Adjustment, error) {
	ids, err := s.client.SMembers(ctx, adjustmentsIndexKey()).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	var all []*model.Adjustment
	for _, id := range ids {
		data, err := s.client.Get(ctx, adjustmentKey(model.AdjustmentID(id))).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, unavailable(err)
		}

		var adj model.Adjustment
		if err := json.Unmarshal(data, &adj); err != nil {
			return nil, err
		}
		all = append(all, &adj)
	}
	return all, nil
}

func (s *Storage) DeleteAdjustment(ctx context.Context, id model.AdjustmentID) error {
	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, adjustmentKey(id))
	pipe.SRem(ctx, adjustmentsIndexKey(), string(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(err)
	}
	if delCmd.Val() == 0 {
		return model.ErrAdjustmentNotFound
	}
	return nil
}

func (s *Storage) DistinctPlayers(ctx context.Context) ([]model.PlayerKey, error) {
	rows, err := s.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[model.PlayerKey]bool)
	var players []model.PlayerKey
	for _, row := range rows {
		if !seen[row.Player] {
			seen[row.Player] = true
			players = append(players, row.Player)
		}
	}
	return players, nil
}
