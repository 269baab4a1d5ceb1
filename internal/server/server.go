// Package server exposes a completed ranking run over HTTP.
//
// The server is read-only: it serves the report, the crawled graph, and the
// rendered SVG from a single pipeline result computed at startup. There is
// no state beyond that result and no persistence.
//
// # Endpoints
//
//	GET /            Minimal HTML index with run stats
//	GET /healthz     Liveness probe
//	GET /api/report  Full JSON report (ranks, parameters, run metadata)
//	GET /api/graph   Crawled graph in node-link JSON
//	GET /graph.svg   Rank-shaded Graphviz rendering (if rendered)
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/linkgraph"
	"github.com/surfrank/surfrank/pkg/pipeline"
)

// Server serves a single pipeline result.
type Server struct {
	result *pipeline.Result
	logger *log.Logger
}

// New creates a server for the given result.
// A nil logger falls back to log.Default().
func New(res *pipeline.Result, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{result: res, logger: logger}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/report", s.handleReport)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/graph.svg", s.handleSVG)

	return r
}

// requestLogger logs each request with method, path, status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)
		s.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.result.Report.WriteJSON(w); err != nil {
		s.logger.Error("write report", "err", err)
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := linkgraph.WriteJSON(s.result.Graph, w); err != nil {
		s.logger.Error("write graph", "err", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, req *http.Request) {
	svg, ok := s.result.Artifacts[pipeline.FormatSVG]
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "run was executed without the svg format"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexTemplate,
		s.result.Report.Corpus,
		s.result.Stats.PageCount,
		s.result.Stats.LinkCount,
		s.result.Report.Damping,
		s.result.Report.Samples,
		s.result.RunID)
}

// errorResponse is the JSON body for error statuses.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps an application error to an HTTP status with a JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForCode(code))
	json.NewEncoder(w).Encode(errorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodePageNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidParameter, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>surfrank</title></head>
<body>
<h1>surfrank</h1>
<p>Corpus <code>%s</code>: %d pages, %d links. Damping %.2f, %d samples.</p>
<p>Run <code>%s</code></p>
<ul>
<li><a href="/api/report">JSON report</a></li>
<li><a href="/api/graph">Link graph</a></li>
<li><a href="/graph.svg">Rank diagram</a></li>
</ul>
</body>
</html>
`
