// Package web serves the leaderboard API used by host pages and posts
// finished runs to a host webhook.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/registry"
	"github.com/tinypulse/arcade/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreStore is the part of the score store the API needs.
type ScoreStore interface {
	SaveResult(r core.Result) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server exposes scores over HTTP.
type Server struct {
	store  ScoreStore
	logger *log.Logger
}

// NewServer creates a server. A nil logger uses log.Default().
func NewServer(store ScoreStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, logger: logger}
}

// Routes configures all routes and returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/games", s.listGames)

		r.Route("/scores/{game}", func(r chi.Router) {
			r.Use(requireGame)
			r.Get("/", s.listScores)
			r.Get("/best", s.bestScore)
			r.Post("/", s.postScore)
		})
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// requireGame rejects requests for games that are not registered.
func requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !registry.Exists(chi.URLParam(r, "game")) {
			respondError(w, http.StatusNotFound, "Game not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// listGames handles GET /api/games
func (s *Server) listGames(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, registry.List())
}

// listScores handles GET /api/scores/{game}?limit=N
func (s *Server) listScores(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	scores, err := s.store.TopScores(chi.URLParam(r, "game"), limit)
	if err != nil {
		s.logger.Error("cannot list scores", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load scores")
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	respondJSON(w, http.StatusOK, scores)
}

// bestScore handles GET /api/scores/{game}/best
func (s *Server) bestScore(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetGameStats(chi.URLParam(r, "game"))
	if err != nil {
		s.logger.Error("cannot load stats", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load scores")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// submission is the body of POST /api/scores/{game}. It has the shape of
// core.Result so a WebhookReporter can post here directly.
type submission struct {
	GameID string `json:"game_id"`
	RunID  string `json:"run_id"`
	Score  int    `json:"score"`
	Lines  int    `json:"lines"`
}

// postScore handles POST /api/scores/{game}
func (s *Server) postScore(w http.ResponseWriter, r *http.Request) {
	var body submission
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	gameID := chi.URLParam(r, "game")
	if body.GameID != "" && body.GameID != gameID {
		respondError(w, http.StatusBadRequest, "game_id does not match the URL")
		return
	}
	if body.Score < 0 || body.Lines < 0 {
		respondError(w, http.StatusBadRequest, "score and lines must not be negative")
		return
	}
	if body.RunID == "" {
		body.RunID = uuid.NewString()
	}

	result := core.Result{
		GameID: gameID,
		RunID:  body.RunID,
		Score:  body.Score,
		Lines:  body.Lines,
	}
	id, err := s.store.SaveResult(result)
	if err != nil {
		s.logger.Error("cannot save score", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save score")
		return
	}

	s.logger.Info("score submitted", "game", result.GameID, "score", result.Score, "run", result.RunID)
	respondJSON(w, http.StatusCreated, map[string]any{"id": id, "run_id": result.RunID})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Headers are already sent
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
