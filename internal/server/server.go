// Package server exposes the question-answering pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"clubgraph/internal/agent"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the success body of POST /ask. Context is present only when
// the graph path was taken.
type AskResponse struct {
	Answer         string `json:"answer"`
	Classification string `json:"classification"`
	Context        string `json:"context,omitempty"`
}

// errorResponse carries a fault description for server errors.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Server routes HTTP requests to the pipeline.
type Server struct {
	pipeline *agent.Pipeline
	logger   *zap.Logger
	router   chi.Router
}

// New creates the HTTP server around a pipeline.
func New(pipeline *agent.Pipeline, logger *zap.Logger) *Server {
	s := &Server{
		pipeline: pipeline,
		logger:   logger,
		router:   chi.NewRouter(),
	}

	s.router.Use(s.requestLogger)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/ask", s.handleAsk)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger tags every request with an ID and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)

		s.logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "clubgraph is running. POST to /ask",
	})
}

// handleAsk runs the pipeline for one question. Store faults inside the
// pipeline come back as a degraded 200 answer; generation channel failures
// surface as a 500 with a detail field.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "question is required"})
		return
	}

	result, err := s.pipeline.Run(r.Context(), req.Question)
	if err != nil {
		s.logger.Error("pipeline failed", zap.String("question", req.Question), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, AskResponse{
		Answer:         result.Answer,
		Classification: string(result.Classification),
		Context:        result.Context,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs the server until ctx is cancelled, then drains
// in-flight requests within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{Addr: addr, Handler: s}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	s.logger.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
