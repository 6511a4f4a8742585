package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rowanhale/moodring/internal/handler"
	"github.com/rowanhale/moodring/internal/middleware"
	"github.com/rowanhale/moodring/internal/store"
)

type Server struct {
	userH     *handler.UserHandler
	moodH     *handler.MoodHandler
	staticDir string
	logger    *slog.Logger
}

// New wires the handlers over the selected persistence backend. staticDir
// holds the single-page UI; pass "" to run API-only (tests do this).
func New(st store.Store, staticDir string, logger *slog.Logger) *Server {
	return &Server{
		userH:     handler.NewUserHandler(st, logger.With("component", "user")),
		moodH:     handler.NewMoodHandler(st, logger.With("component", "mood")),
		staticDir: staticDir,
		logger:    logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /users", s.userH.List)
	mux.HandleFunc("POST /users", s.userH.Login)

	mux.HandleFunc("GET /moods", s.moodH.List)
	mux.HandleFunc("POST /moods", s.moodH.Create)
	mux.HandleFunc("DELETE /moods", s.moodH.Clear)

	mux.HandleFunc("GET /health", s.healthHandler)

	if s.staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
	}

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
