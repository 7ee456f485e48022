package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/boredgamers/tally/internal/dependencies/clock"
	"github.com/boredgamers/tally/internal/dependencies/idgen"
	"github.com/boredgamers/tally/internal/services/auth"
	"github.com/boredgamers/tally/internal/services/conversation"
	"github.com/boredgamers/tally/internal/services/dates"
	"github.com/boredgamers/tally/internal/services/leaderboard"
	"github.com/boredgamers/tally/internal/services/ledger"
	"github.com/boredgamers/tally/internal/services/player"
	"github.com/boredgamers/tally/internal/services/scoring"
	"github.com/boredgamers/tally/internal/storage"
	"github.com/boredgamers/tally/internal/storage/memory"
	redisstorage "github.com/boredgamers/tally/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDGen idgen.IDGen

	// Services
	PlayerService       *player.Service
	ScoringService      *scoring.Service
	DateService         *dates.Service
	LedgerController    *ledger.Controller
	LeaderboardService  *leaderboard.Service
	ConversationManager *conversation.Manager
	AuthService         *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// WriteTokenHash is the bcrypt hash guarding mutating operations
	// (optional; empty disables auth)
	WriteTokenHash string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), idgen.New(), cfg.WriteTokenHash, logger), nil
}

// newWithDependencies wires the service graph around explicit dependencies.
// Shared between production and test construction.
func newWithDependencies(store storage.Storage, clk clock.Clock, ids idgen.IDGen, writeTokenHash string, logger *slog.Logger) *App {
	playerService := player.New()
	scoringService := scoring.New()
	dateService := dates.New()

	ledgerController := ledger.NewController(store, playerService, scoringService, dateService, clk, ids, logger)
	leaderboardService := leaderboard.New(store)
	conversationManager := conversation.NewManager(ledgerController, playerService, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		IDGen:               ids,
		PlayerService:       playerService,
		ScoringService:      scoringService,
		DateService:         dateService,
		LedgerController:    ledgerController,
		LeaderboardService:  leaderboardService,
		ConversationManager: conversationManager,
		AuthService:         auth.New(writeTokenHash),
	}
}
