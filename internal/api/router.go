package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boredgamers/tally/internal/api/handler"
	"github.com/boredgamers/tally/internal/api/middleware"
	"github.com/boredgamers/tally/internal/services/auth"
	"github.com/boredgamers/tally/internal/services/conversation"
	"github.com/boredgamers/tally/internal/services/leaderboard"
	"github.com/boredgamers/tally/internal/services/ledger"
	"github.com/boredgamers/tally/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	AuthService         *auth.Service
	LedgerController    *ledger.Controller
	LeaderboardService  *leaderboard.Service
	PlayerService       *player.Service
	ConversationManager *conversation.Manager
	// Registry receives HTTP metrics and backs /metrics. Optional; nil
	// disables metrics.
	Registry *prometheus.Registry
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.LedgerController, cfg.PlayerService)
	adjustmentHandler := handler.NewAdjustmentHandler(cfg.LedgerController, cfg.PlayerService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.PlayerService)
	playerHandler := handler.NewPlayerHandler(cfg.LedgerController, cfg.PlayerService)
	conversationHandler := handler.NewConversationHandler(cfg.ConversationManager, cfg.PlayerService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	if cfg.Registry != nil {
		metrics := middleware.NewMetrics(cfg.Registry)
		api.Use(metrics.Middleware(routeTemplate))
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Read routes (no auth)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/adjustments", adjustmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)

	// Mutating routes require the write token
	write := api.NewRoute().Subrouter()
	write.Use(authMiddleware)
	write.HandleFunc("/games", gameHandler.Record).Methods(http.MethodPost)
	write.HandleFunc("/games/manual", gameHandler.RecordManual).Methods(http.MethodPost)
	write.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	write.HandleFunc("/adjustments", adjustmentHandler.Record).Methods(http.MethodPost)
	write.HandleFunc("/adjustments/{id}", adjustmentHandler.Delete).Methods(http.MethodDelete)
	write.HandleFunc("/conversations/{id}", conversationHandler.Start).Methods(http.MethodPost)
	write.HandleFunc("/conversations/{id}/messages", conversationHandler.Message).Methods(http.MethodPost)
	write.HandleFunc("/conversations/{id}", conversationHandler.Abandon).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// routeTemplate returns the mux route template for metrics labels, falling
// back to the raw path for unmatched requests
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
