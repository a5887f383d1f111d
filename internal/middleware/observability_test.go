package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarmon/go-solaredge/internal/middleware"
	"github.com/solarmon/go-solaredge/observability"
)

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ ...observability.Field) { l.log(msg) }
func (l *recordingLogger) Info(msg string, _ ...observability.Field)  { l.log(msg) }
func (l *recordingLogger) Warn(msg string, _ ...observability.Field)  { l.log(msg) }
func (l *recordingLogger) Error(msg string, _ ...observability.Field) { l.log(msg) }

func (l *recordingLogger) With(...observability.Field) observability.Logger { return l }

type recordingMetrics struct {
	mu    sync.Mutex
	paths []string
	codes []int
}

func (m *recordingMetrics) RecordHTTPRequest(_, path string, statusCode int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
	m.codes = append(m.codes, statusCode)
}

func (m *recordingMetrics) RecordRateLimit(string, time.Duration) {}
func (m *recordingMetrics) RecordError(string, string)            {}

func TestObservabilityLogsAndRecords(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &recordingLogger{}
	metrics := &recordingMetrics{}
	transport := middleware.Observability(logger, metrics)(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/site/1234123/overview", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Contains(t, logger.messages, "http request started")
	assert.Contains(t, logger.messages, "http request completed")

	// Site ids are normalized out of the metrics path.
	require.Len(t, metrics.paths, 1)
	assert.Equal(t, "/site/:id/overview", metrics.paths[0])
	assert.Equal(t, []int{http.StatusOK}, metrics.codes)
}

func TestObservabilityWarnsOnErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	logger := &recordingLogger{}
	transport := middleware.Observability(logger, nil)(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/sites/list", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Contains(t, logger.messages, "http request completed with error")
}

func TestObservabilityNilCollaborators(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.Observability(nil, nil)(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
