package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes health, metrics and read-only lock state over HTTP
type Server struct {
	cfg    *config.Config
	store  *store.Store
	logger *slog.Logger
	server *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, store *store.Store) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: slog.Default(),
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the routed handler with logging and recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /chats", s.handleChats)
	mux.HandleFunc("GET /chats/{chatID}/locks", s.handleLocks)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server. It returns nil once Shutdown is called.
func (s *Server) Start() error {
	s.server.Handler = s.Handler()
	s.logger.Info("HTTP server starting", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleChats lists the lock state of every chat the bot has seen, ordered by chat ID.
func (s *Server) handleChats(w http.ResponseWriter, r *http.Request) {
	configs := s.store.LockConfigs()
	sort.Slice(configs, func(i, j int) bool { return configs[i].ChatID < configs[j].ChatID })

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(configs); err != nil {
		s.logger.Error("Error encoding chats", "error", err)
	}
}

func (s *Server) handleLocks(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(r.PathValue("chatID"), 10, 64)
	if err != nil {
		http.Error(w, "Chat ID must be numeric", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s.store.GetLockConfig(chatID)); err != nil {
		s.logger.Error("Error encoding locks", "chat_id", chatID, "error", err)
	}
}
