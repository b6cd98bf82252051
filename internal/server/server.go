// Package server exposes the solver over HTTP.
//
// Routes:
//
//	GET  /cube?U=...&L=...&F=...&R=...&B=...&D=...   plain-text solution
//	POST /solve                                      JSON solve with payload
//	GET  /metrics                                    Prometheus metrics
//	GET  /healthz                                    liveness
//
// Every request solves its own Cube; nothing is shared between requests
// except the read-only move catalog and the metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

// Store records solver runs. *storage.SolveRepository satisfies it.
type Store interface {
	Save(in storage.SolveInput) (string, error)
}

// Server serves solve requests.
type Server struct {
	log        zerolog.Logger
	metrics    *Metrics
	store      Store
	solverOpts []cubecipher.SolverOption
	mux        *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithStore records every solve in store.
func WithStore(store Store) Option {
	return func(s *Server) { s.store = store }
}

// WithSolverOptions passes options to every solver run.
func WithSolverOptions(opts ...cubecipher.SolverOption) Option {
	return func(s *Server) { s.solverOpts = append(s.solverOpts, opts...) }
}

// New creates a server with its own metrics registry.
func New(opts ...Option) *Server {
	s := &Server{
		log:     zerolog.Nop(),
		metrics: NewMetrics(),
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /cube", s.instrument("cube", s.handleCube))
	s.mux.HandleFunc("POST /solve", s.instrument("solve", s.handleSolve))
	s.mux.Handle("GET /metrics", s.metrics.Handler())
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		h(rec, r)
		s.metrics.requests.WithLabelValues(route, fmt.Sprint(rec.code)).Inc()
		s.log.Debug().
			Str("route", route).
			Int("code", rec.code).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// statusFor maps solver errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cubecipher.ErrInvalidLength), errors.Is(err, cubecipher.ErrUnknownMove):
		return http.StatusBadRequest
	case errors.Is(err, cubecipher.ErrUnsolvableState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// result is one solver run.
type result struct {
	id     string
	cube   *cubecipher.Cube
	moves  cubecipher.Sequence
	phases []cubecipher.PhaseMark
}

// solve runs the solver on c, records metrics and, when configured, stores
// the run.
func (s *Server) solve(c *cubecipher.Cube, source string) (*result, error) {
	colors, payload := c.FlatColors(), c.FlatPayload()
	solver := cubecipher.NewSolver(c, s.solverOpts...)

	start := time.Now()
	moves, err := solver.Solve()
	elapsed := time.Since(start)

	outcome := storage.OutcomeSolved
	if err != nil {
		outcome = storage.OutcomeUnsolvable
	}
	s.metrics.RecordSolve(outcome, len(moves), elapsed)

	res := &result{cube: c, moves: moves, phases: solver.Phases()}
	if s.store != nil {
		id, serr := s.store.Save(storage.SolveInput{
			Colors:   colors,
			Payload:  payload,
			Moves:    moves,
			Phases:   res.phases,
			Err:      err,
			Duration: elapsed,
			Source:   source,
		})
		if serr != nil {
			s.log.Error().Err(serr).Msg("failed to store solve")
		}
		res.id = id
	}
	return res, err
}

// handleCube answers the query protocol: nine stickers per face, each face
// read row by row as seen from outside. The body is the solution on one
// line and the move count on the next.
func (s *Server) handleCube(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var b strings.Builder
	for _, face := range cubecipher.OuterFaces {
		b.WriteString(q.Get(string(face)))
	}

	net, err := cubecipher.FaceMajorToNet(b.String())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	c, err := cubecipher.New(net)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	res, err := s.solve(c, "http")
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s\n%d\n", res.moves, len(res.moves))
}

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Colors string `json:"colors"`
	// Payload is optional, one rune per facet.
	Payload string `json:"payload,omitempty"`
	// FaceMajor reads Colors and Payload face by face instead of in net
	// order.
	FaceMajor bool `json:"face_major,omitempty"`
}

// SolveResponse is the body of a successful POST /solve.
type SolveResponse struct {
	ID      string                 `json:"id,omitempty"`
	Moves   string                 `json:"moves"`
	Count   int                    `json:"count"`
	Colors  string                 `json:"colors"`
	Payload string                 `json:"payload,omitempty"`
	Phases  []cubecipher.PhaseMark `json:"phases"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	colors, payload := req.Colors, req.Payload
	if req.FaceMajor {
		var err error
		if colors, err = cubecipher.FaceMajorToNet(colors); err != nil {
			writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
			return
		}
		if payload != "" {
			if payload, err = cubecipher.FaceMajorToNet(payload); err != nil {
				writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
				return
			}
		}
	}

	var opts []cubecipher.Option
	if payload != "" {
		opts = append(opts, cubecipher.WithPayload(payload))
	}
	c, err := cubecipher.New(colors, opts...)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	res, err := s.solve(c, "http")
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	resp := SolveResponse{
		ID:      res.id,
		Moves:   res.moves.String(),
		Count:   len(res.moves),
		Colors:  res.cube.FlatColors(),
		Payload: res.cube.FlatPayload(),
		Phases:  res.phases,
	}
	if req.FaceMajor {
		resp.Colors = res.cube.FaceMajorColors()
		resp.Payload = res.cube.FaceMajorPayload()
	}
	writeJSON(w, http.StatusOK, resp)
}
