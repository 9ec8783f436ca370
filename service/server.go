// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/preset"
	"github.com/katalvlaran/lvdata/synth"
)

// Request header carrying the per-request ID.
const headerRequestID = "X-Request-ID"

// Endpoint paths.
const (
	pathGenerate = "/v1/generate"
	pathStats    = "/v1/stats"
	pathHealth   = "/healthz"
	pathMetrics  = "/metrics"
)

// Request body sizing: every value is at most bytesPerValue bytes of JSON
// (sign, 19 digits, separator, whitespace) and values plus probe may each
// hold MaxValueCount entries; bodySlack covers the remaining fields.
const (
	bytesPerValue = 24
	bodySlack     = 4 << 10
)

// Config holds server configuration.
type Config struct {
	Addr            string
	GenerateTimeout time.Duration // wall-clock budget per generation
	MaxValueCount   int           // largest accepted count or literal value list
	MaxBodyBytes    int64         // request body cap; 0 derives it from MaxValueCount
	MaxAttempts     int           // rejection-loop ceiling per generation
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	Presets         preset.Catalog
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		GenerateTimeout: 2 * time.Second,
		MaxValueCount:   10_000,
		MaxAttempts:     synth.DefaultMaxAttempts,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
	}
}

// Server serves the HTTP API.
type Server struct {
	cfg     Config
	log     logr.Logger
	metrics *Metrics
	mux     *http.ServeMux
}

// New creates a Server. Metrics are registered on reg, which also backs /metrics.
func New(cfg Config, log logr.Logger, reg *prometheus.Registry) *Server {
	def := DefaultConfig()
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = def.GenerateTimeout
	}
	if cfg.MaxValueCount <= 0 {
		cfg.MaxValueCount = def.MaxValueCount
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = int64(cfg.MaxValueCount)*2*bytesPerValue + bodySlack
	}

	s := &Server{
		cfg:     cfg,
		log:     log.WithName("service"),
		metrics: NewMetrics(reg),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc(pathGenerate, s.handleGenerate)
	s.mux.HandleFunc(pathStats, s.handleStats)
	s.mux.HandleFunc(pathHealth, s.handleHealth)
	s.mux.Handle(pathMetrics, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	id := requestID(w, r)
	if r.Method != http.MethodGet {
		s.writeError(w, pathHealth, id, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}
	s.writeJSON(w, pathHealth, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	id := requestID(w, r)
	if r.Method != http.MethodPost {
		s.writeError(w, pathGenerate, id, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req GenerateRequest
	if !s.decode(w, r, pathGenerate, id, &req) {
		return
	}

	cfg, err := s.configFor(req)
	if err != nil {
		s.writeGenerateError(w, id, err)
		return
	}
	if cfg.ValueCount() > s.cfg.MaxValueCount {
		s.writeError(w, pathGenerate, id, http.StatusBadRequest, "invalid_request",
			fmt.Sprintf("count exceeds %d", s.cfg.MaxValueCount), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.GenerateTimeout)
	defer cancel()

	ds, err := synth.Generate(ctx, cfg)
	if err != nil {
		s.writeGenerateError(w, id, err)
		return
	}

	s.log.V(1).Info("generated", "id", id, "count", ds.Len())
	s.writeJSON(w, pathGenerate, http.StatusOK, DatasetResponse{
		ID:      id,
		Values:  ds.Values(),
		Stats:   Describe(ds),
		Matches: Matches(ds, req.Probe),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id := requestID(w, r)
	if r.Method != http.MethodPost {
		s.writeError(w, pathStats, id, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req StatsRequest
	if !s.decode(w, r, pathStats, id, &req) {
		return
	}
	if len(req.Values) == 0 {
		s.writeError(w, pathStats, id, http.StatusBadRequest, "empty_dataset", "Values required",
			dataset.ErrEmptyDataset.Error())
		return
	}
	if len(req.Values) > s.cfg.MaxValueCount || len(req.Probe) > s.cfg.MaxValueCount {
		s.writeError(w, pathStats, id, http.StatusBadRequest, "invalid_request",
			fmt.Sprintf("values and probe are limited to %d entries", s.cfg.MaxValueCount), "")
		return
	}

	ds := dataset.New(req.Values)
	s.writeJSON(w, pathStats, http.StatusOK, DatasetResponse{
		ID:      id,
		Values:  ds.Values(),
		Stats:   Describe(ds),
		Matches: Matches(ds, req.Probe),
	})
}

// configFor resolves a request into a synth.Config wired to the metrics observer.
func (s *Server) configFor(req GenerateRequest) (synth.Config, error) {
	// The server ceiling applies unless a preset asks for fewer attempts.
	attempts := s.cfg.MaxAttempts
	if req.Preset != "" {
		if p, err := s.cfg.Presets.Lookup(req.Preset); err == nil && p.MaxAttempts > 0 {
			attempts = min(attempts, p.MaxAttempts)
		}
	}

	common := []synth.Option{
		synth.WithMaxAttempts(attempts),
		synth.WithObserver(s.metrics),
		synth.WithLogger(s.log),
	}
	if req.Seed != nil {
		common = append(common, synth.WithSeed(*req.Seed))
	}

	if req.Preset != "" {
		return s.cfg.Presets.Config(req.Preset, common...)
	}

	if req.ModeCount < 0 {
		return synth.Config{}, fmt.Errorf("mode_count %d < 0: %w", req.ModeCount, synth.ErrConfiguration)
	}
	opts := []synth.Option{
		synth.WithModeCount(req.ModeCount),
		synth.WithUnique(req.Unique),
		synth.WithFromFactor(req.FromFactor),
	}
	if req.AllowPrime != nil {
		opts = append(opts, synth.WithAllowPrime(*req.AllowPrime))
	}
	return synth.NewConfig(req.Count, req.Min, req.Max, append(opts, common...)...)
}

// decode reads a JSON body capped at MaxBodyBytes into v. It writes the error
// response itself and reports whether the handler may continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, endpoint, id string, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, endpoint, id, http.StatusRequestEntityTooLarge, "request_too_large",
			fmt.Sprintf("Body exceeds %d bytes", tooLarge.Limit), "")
		return false
	}
	s.writeError(w, endpoint, id, http.StatusBadRequest, "invalid_request", "Invalid JSON", err.Error())
	return false
}

func (s *Server) writeGenerateError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, synth.ErrConfiguration):
		s.writeError(w, pathGenerate, id, http.StatusBadRequest, "invalid_configuration", "Invalid configuration", err.Error())
	case errors.Is(err, preset.ErrUnknownPreset):
		s.writeError(w, pathGenerate, id, http.StatusNotFound, "unknown_preset", "Preset not found", err.Error())
	case errors.Is(err, synth.ErrUnsatisfiable):
		s.writeError(w, pathGenerate, id, http.StatusUnprocessableEntity, "unsatisfiable", "Constraints cannot be met", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, pathGenerate, id, http.StatusGatewayTimeout, "timeout", "Generation budget exceeded", err.Error())
	case errors.Is(err, context.Canceled):
		s.writeError(w, pathGenerate, id, http.StatusRequestTimeout, "cancelled", "Request cancelled", err.Error())
	default:
		s.log.Error(err, "generation failed", "id", id)
		s.writeError(w, pathGenerate, id, http.StatusInternalServerError, "internal_error", "Generation failed", err.Error())
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, endpoint string, status int, v any) {
	s.metrics.requests.WithLabelValues(endpoint, fmt.Sprint(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error(err, "encode response", "endpoint", endpoint)
	}
}

func (s *Server) writeError(w http.ResponseWriter, endpoint, id string, status int, code, message, details string) {
	s.writeJSON(w, endpoint, status, ErrorResponse{ID: id, Code: code, Message: message, Details: details})
}

// requestID reuses the caller's X-Request-ID or assigns a new UUID, and echoes it.
func requestID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(headerRequestID, id)
	return id
}
