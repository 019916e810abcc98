// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avasim/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestServerServesMetrics(t *testing.T) {
	require := require.New(t)
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total"})
	counter.Inc()
	require.NoError(registry.Register(counter))

	s := NewServer("127.0.0.1:0", registry, nil, logging.NoLog)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(http.StatusOK, rec.Code)
	require.Contains(rec.Body.String(), "probe_total")
}

func TestServerServesHealth(t *testing.T) {
	require := require.New(t)
	registry := prometheus.NewRegistry()
	s := NewServer("127.0.0.1:0", registry, nil, logging.NoLog)

	require.NoError(s.RegisterCheck(NewRunCheck("always-ok", func() error { return nil }), 0, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(http.StatusOK, rec.Code)
}

func TestServerEventsRequiresBroadcaster(t *testing.T) {
	require := require.New(t)
	registry := prometheus.NewRegistry()
	s := NewServer("127.0.0.1:0", registry, nil, logging.NoLog)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(http.StatusServiceUnavailable, rec.Code)
}
