// Package http exposes the Lychee engine as a stateless JSON API.
//
// State is carried in the request and response bodies; the server keeps no
// session table, so any number of replicas can serve the same clients.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	"github.com/litchilabs/lychee"
	"github.com/litchilabs/lychee/pkg/domain"
	"github.com/litchilabs/lychee/pkg/ports"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Server holds the engine and serves the chat endpoints.
type Server struct {
	engine ports.StatelessEngine
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger  *slog.Logger
	metrics http.Handler
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetrics mounts a metrics handler (e.g. promhttp) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(c *handlerConfig) {
		c.metrics = h
	}
}

// NewHandler creates the HTTP handler for the engine. The embedded OpenAPI
// document is validated once at construction so a drifting spec fails fast.
func NewHandler(engine ports.StatelessEngine, opts ...Option) (http.Handler, error) {
	cfg := &handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := openapi3.NewLoader().LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("embedded openapi spec is unreadable: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("embedded openapi spec is invalid: %w", err)
	}

	server := &Server{engine: engine, logger: cfg.logger}

	r := chi.NewRouter()
	r.Get("/", server.Info)
	r.Get("/health", server.Health)
	r.Post("/api/v1/chat", server.Chat)
	r.Post("/api/v1/chat/clarify", server.Clarify)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Info handles GET / with basic service metadata.
func (s *Server) Info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "lychee",
		"version": lychee.Version,
		"status":  "running",
		"docs":    "/openapi.yaml",
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Chat handles POST /api/v1/chat: the initial prompt submission.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var body ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}
	if body.UserPrompt == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("user_prompt is required"))
		return
	}

	res, err := s.engine.ProcessInitial(r.Context(), body.UserPrompt)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Clarify handles POST /api/v1/chat/clarify: answers to clarifying questions.
func (s *Server) Clarify(w http.ResponseWriter, r *http.Request) {
	var body ClarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}
	if body.State == nil {
		s.writeError(w, http.StatusBadRequest, errors.New("state is required"))
		return
	}
	// The echoed state is untrusted; reject malformed ones before they reach
	// the engine.
	if err := body.State.Validate(); err != nil {
		s.writeEngineError(w, err)
		return
	}

	res, err := s.engine.ProcessClarification(r.Context(), body.State, body.Answers)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

var errInvalidBody = errors.New("invalid request body")

// writeEngineError maps engine failures to status codes: caller contract
// violations get a rejected-input status, everything else is a server fault.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if domain.IsClientFault(err) {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.logger.Error("request failed", "error", err)
	s.writeError(w, http.StatusInternalServerError, err)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	kind := "server"
	if status < http.StatusInternalServerError {
		kind = "client"
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
