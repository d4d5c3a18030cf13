// Package server exposes the assessment engine over HTTP for the
// intake form frontend.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/assess-cli/internal/assess"
	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/config"
	"github.com/sells-group/assess-cli/internal/model"
	"github.com/sells-group/assess-cli/internal/store"
)

// Server routes assessment requests to the engine and the store. Store
// may be nil, in which case persistence endpoints return 503.
type Server struct {
	cat       *catalog.Catalog
	assembler *assess.Assembler
	st        store.Store
	cfg       config.ServerConfig
}

// New builds a Server. st may be nil to run without persistence.
func New(cat *catalog.Catalog, assembler *assess.Assembler, st store.Store, cfg config.ServerConfig) *Server {
	return &Server{cat: cat, assembler: assembler, st: st, cfg: cfg}
}

// Router builds the chi router with CORS and rate limiting applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(rateLimit(rate.Limit(s.cfg.RatePerSecond), s.cfg.RateBurst))

	r.Get("/health", s.handleHealth)
	r.Get("/catalog", s.handleCatalog)
	r.Post("/assess", s.handleAssess)
	r.Get("/results", s.handleListResults)
	r.Get("/results/{id}", s.handleGetResult)

	return r
}

// rateLimit applies a process-wide token bucket. Requests over the
// limit get 429.
func rateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat)
}

// assessRequest is the POST /assess payload: a submission plus an
// optional agency name and save flag.
type assessRequest struct {
	model.Submission
	AgencyName string `json:"agency_name"`
	Save       bool   `json:"save"`
}

type assessResponse struct {
	ID     string              `json:"id,omitempty"`
	Record model.ResultsRecord `json:"record"`
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := s.cat.AnswerErrors(req.Answers); len(errs) > 0 {
		for _, err := range errs {
			zap.L().Warn("server: submission answer ignored by scoring", zap.Error(err))
		}
	}

	record := s.assembler.Assemble(req.Submission)
	resp := assessResponse{Record: record}

	if req.Save {
		if s.st == nil {
			writeError(w, http.StatusServiceUnavailable, "persistence is not configured")
			return
		}
		saved, err := s.st.SaveAssessment(r.Context(), req.AgencyName, req.Submission, record)
		if err != nil {
			zap.L().Error("server: save assessment", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save assessment")
			return
		}
		resp.ID = saved.ID
	}

	zap.L().Info("server: submission scored",
		zap.Int("overall", record.Scores.Overall),
		zap.String("classification", record.Valuation.Classification),
		zap.Bool("saved", resp.ID != ""),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.st == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	filter := store.ListFilter{
		AgencyName:     r.URL.Query().Get("agency_name"),
		Classification: r.URL.Query().Get("classification"),
		Limit:          20,
	}
	assessments, err := s.st.ListAssessments(r.Context(), filter)
	if err != nil {
		zap.L().Error("server: list assessments", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}
	writeJSON(w, http.StatusOK, assessments)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.st == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id := chi.URLParam(r, "id")
	a, err := s.st.GetAssessment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
