// Package http exposes the engine over a JSON API: validation and repair
// of posted scene documents, plus retrieval of stored repair runs.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iconlint/iconlint"
	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/internal/scene"
	"github.com/iconlint/iconlint/pkg/adapters/memory"
	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/ports"
)

// Server handles the JSON API. Posted icons are repaired against the
// in-memory mutator: the API returns the would-be mutations, it has no
// access to a live host scene.
type Server struct {
	engine *iconlint.Engine
	set    *rules.Set
	store  ports.RunStore
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request/error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer wires the API around an engine and a run store.
func NewServer(engine *iconlint.Engine, set *rules.Set, store ports.RunStore, opts ...Option) *Server {
	s := &Server{
		engine: engine,
		set:    set,
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router. The gatherer feeds GET /metrics; pass
// prometheus.DefaultGatherer unless you use a private registry.
func (s *Server) Handler(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/repair", s.handleRepair)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})
	return r
}

// progressEntry is the wire shape of one progress callback.
type progressEntry struct {
	Step  string `json:"step"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

type validateResponse struct {
	IsValid  bool                     `json:"isValid"`
	Report   *iconlint.Report         `json:"report"`
	Combined *domain.ValidationResult `json:"combined"`
}

type repairResponse struct {
	RunID    string           `json:"runId"`
	Run      domain.RunResult `json:"run"`
	Report   *iconlint.Report `json:"report"`
	Progress []progressEntry  `json:"progress"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc, err := scene.DecodeJSON(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := s.engine.Validate(r.Context(), doc.Icon, doc.Category)
	s.writeJSON(w, http.StatusOK, validateResponse{
		IsValid:  report.IsValid(),
		Report:   report,
		Combined: report.Combined(),
	})
}

func (s *Server) handleRepair(w http.ResponseWriter, r *http.Request) {
	doc, err := scene.DecodeJSON(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var progress []progressEntry
	mut := memory.NewMutator(s.set)
	result, report, err := s.engine.Repair(r.Context(), doc.Icon, doc.Category, mut,
		func(step string, index, total int) {
			progress = append(progress, progressEntry{Step: step, Index: index, Total: total})
		})
	if err != nil {
		// Planning failed before any mutation: the icon is unrepairable.
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  err.Error(),
			"report": report,
		})
		return
	}

	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	if err := s.store.Save(r.Context(), runID, &result); err != nil {
		s.logger.Error("failed to persist run", "run_id", runID, "err", err)
		http.Error(w, "failed to persist run", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, repairResponse{
		RunID:    runID,
		Run:      result,
		Report:   report,
		Progress: progress,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Load(r.Context(), id)
	if err != nil {
		if err == domain.ErrRunNotFound {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}
