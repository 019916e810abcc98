// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api exposes a simulation run's health, metrics, and live
// event log to external tooling over HTTP. It is strictly an
// observation surface: nothing in snow/consensus, adversary, config,
// or engine imports it, matching spec.md §1's exclusion of
// visualization from the core (SPEC_FULL.md §6).
package api

import (
	"context"
	"net/http"
	"time"

	gosundheit "github.com/AppsFlyer/go-sundheit"
	healthhttp "github.com/AppsFlyer/go-sundheit/http"
	"github.com/ava-labs/avasim/logging"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Server is the admin HTTP surface for one simulation run.
type Server struct {
	httpServer  *http.Server
	health      gosundheit.Health
	broadcaster *logging.Broadcaster
	upgrader    websocket.Upgrader
	log         logging.Logger
}

// NewServer wires routes onto a fresh mux.Router:
//
//	GET /health  — go-sundheit JSON liveness report
//	GET /metrics — Prometheus text exposition over registry
//	GET /events  — websocket stream tailing broadcaster
//
// Responses are wrapped in gorilla/handlers' combined-log format and
// rs/cors' permissive-by-default CORS handler, since this is a
// same-host operator surface rather than a public API.
func NewServer(addr string, registry *prometheus.Registry, broadcaster *logging.Broadcaster, log logging.Logger) *Server {
	if log == nil {
		log = logging.NoLog
	}

	s := &Server{
		health:      gosundheit.New(),
		broadcaster: broadcaster,
		upgrader:    websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		log:         log,
	}

	router := mux.NewRouter()
	router.Handle("/health", healthhttp.HandleHealthJSON(s.health)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/events", s.serveEvents).Methods(http.MethodGet)

	handler := cors.Default().Handler(handlers.CombinedLoggingHandler(combinedLogWriter{log}, router))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// RegisterCheck adds a liveness probe, polled at executionPeriod after
// initialDelay, to the /health report.
func (s *Server) RegisterCheck(check *RunCheck, initialDelay, executionPeriod time.Duration) error {
	return s.health.RegisterCheck(&gosundheit.Config{
		Check:            check,
		InitialDelay:     initialDelay,
		ExecutionPeriod:  executionPeriod,
		InitiallyPassing: true,
	})
}

// ListenAndServe blocks serving HTTP until the server is shut down.
func (s *Server) ListenAndServe() error {
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) serveEvents(w http.ResponseWriter, r *http.Request) {
	if s.broadcaster == nil {
		http.Error(w, "event log streaming not configured", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("api: websocket upgrade failed: %s", err)
		return
	}
	defer conn.Close()

	lines, cancel := s.broadcaster.Subscribe()
	defer cancel()

	for line := range lines {
		if err := conn.WriteMessage(websocket.TextMessage, line); err != nil {
			return
		}
	}
}

// combinedLogWriter adapts logging.Logger to the io.Writer
// gorilla/handlers.CombinedLoggingHandler expects.
type combinedLogWriter struct{ log logging.Logger }

func (w combinedLogWriter) Write(p []byte) (int, error) {
	w.log.Info("%s", string(p))
	return len(p), nil
}
