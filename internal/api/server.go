// Package api exposes the classification engine over HTTP: on-demand
// parses of single games and feeds, plus read access to stored results
// and sweep bookkeeping.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/player"
	"github.com/moonball-archive/scorebook/internal/schema"
	"github.com/moonball-archive/scorebook/internal/store"
	"github.com/moonball-archive/scorebook/internal/team"
)

// Store is the slice of the database the server needs.
type Store interface {
	SaveRawGame(ctx context.Context, gameID string, season, day int, doc json.RawMessage) error
	SaveParsedEvents(ctx context.Context, gameID string, events []gamelog.ParsedEvent) error
	GetParsedEvents(ctx context.Context, gameID string) ([]store.StoredEvent, error)
	SaveFeedRecords(ctx context.Context, entityType, entityID string, msgs []schema.FeedMessage) error
	GetFeedRecords(ctx context.Context, entityType, entityID string) ([]store.FeedRecord, error)
	GetSweepRun(ctx context.Context, id uuid.UUID) (*store.SweepRun, error)
	ListFindings(ctx context.Context, runID uuid.UUID) ([]store.Finding, error)
}

// Archive is the slice of the league client the server needs.
type Archive interface {
	Game(ctx context.Context, id string) (*gamelog.Game, error)
	Team(ctx context.Context, id string) (*team.Team, error)
	Player(ctx context.Context, id string) (*player.Player, error)
}

type Server struct {
	router *chi.Mux
	port   int
	store  Store
	arc    Archive
	logger *slog.Logger
}

func NewServer(port int, apiToken string, db Store, arc Archive, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		store:  db,
		arc:    arc,
		logger: logger,
	}

	router.Get("/health", s.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/scorebook/status", s.status)
		r.Get("/games/{id}/events", s.getGameEvents)
		r.Get("/feeds/{type}/{id}", s.getFeedRecords)
		r.Get("/runs/{id}", s.getSweepRun)
		r.Get("/runs/{id}/findings", s.getFindings)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuthMiddleware(apiToken))
			r.Post("/games/{id}/parse", s.parseGame)
			r.Post("/feeds/{type}/{id}/parse", s.parseFeed)
		})
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router, mainly so main can run the server with
// its own http.Server for graceful shutdown.
func (s *Server) Handler() http.Handler { return s.router }

// BearerAuthMiddleware rejects requests whose Authorization header does
// not carry the configured token. An empty configured token disables
// the protected routes entirely.
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				writeError(w, http.StatusServiceUnavailable, "api token not configured")
				return
			}
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || got != token {
				writeError(w, http.StatusUnauthorized, "invalid or missing bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "scorebook",
		"status":  "ok",
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
