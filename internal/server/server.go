// Package server exposes the codon engine as a local HTTP API, the same
// surface the desktop UI consumes.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Server routes analysis, synthesis and library calculation requests to
// the engine. It holds no mutable state of its own: every request is a
// pure function of its payload.
type Server struct {
	mux      *http.ServeMux
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New builds a Server with all routes and metrics registered.
func New() *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		mux: http.NewServeMux(),
		requests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "codonlib_requests_total",
			Help: "Requests served, by handler and status code.",
		}, []string{"handler", "code"}),
		duration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codonlib_request_duration_seconds",
			Help:    "Request latency, by handler.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
	}

	s.mux.HandleFunc("/", s.instrument("root", s.handleRoot))
	s.mux.HandleFunc("/health", s.instrument("health", s.handleHealth))
	s.mux.HandleFunc("/analyze", s.instrument("analyze", s.handleAnalyze))
	s.mux.HandleFunc("/synthesize", s.instrument("synthesize", s.handleSynthesize))
	s.mux.HandleFunc("/libraries/calculate", s.instrument("calculate", s.handleCalculate))
	s.mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return s
}

// Handler returns the server's routing handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	stderr.Printf("serving on http://%s", addr)
	server := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

// statusWriter records the response code for metrics.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// instrument counts and times a handler.
func (s *Server) instrument(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		h(sw, r)
		s.requests.WithLabelValues(name, fmt.Sprintf("%d", sw.code)).Inc()
		s.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "running",
		"service": "codonlib",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

type analyzeRequest struct {
	Codon string `json:"codon"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decode(w, r, &req) {
		return
	}

	analysis, err := codon.Analyze(req.Codon)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

type synthesizeRequest struct {
	AminoAcids string `json:"aminoAcids"`
	Strategy   string `json:"strategy"`
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if !decode(w, r, &req) {
		return
	}

	strategy, err := codon.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := codon.Synthesize(req.AminoAcids, strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type calculateRequest struct {
	Positions []*codon.Position `json:"positions"`
}

type calculateResponse struct {
	Analyses  []*codon.Analysis `json:"analyses"`
	Diversity string            `json:"diversity"`
}

// handleCalculate analyzes a full position set in one shot. Remote callers
// get the same all-or-nothing contract as the CLI: any invalid position
// fails the whole request and no partial results are returned.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Positions) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no positions passed"))
		return
	}

	lib, err := codon.FromRecord(&codon.LibraryRecord{Name: "request", Positions: req.Positions})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	analyses, err := lib.Recalculate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	diversity, err := lib.Diversity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		Analyses:  analyses,
		Diversity: codon.FormatDiversity(diversity),
	})
}

// decode parses a JSON POST body, writing the error response itself when
// the request is unusable.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("expecting POST"))
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		stderr.Println(err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
