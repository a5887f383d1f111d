package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarmon/go-solaredge/internal/middleware"
)

func TestQueryAuth(t *testing.T) {
	t.Parallel()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("api_key")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.QueryAuth("api_key", "secret-key")(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/sites/list", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "secret-key", gotQuery)
}

func TestQueryAuthPreservesExistingParams(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.QueryAuth("api_key", "secret-key")(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/site/1/energy?timeUnit=DAY", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, []string{"DAY"}, gotQuery["timeUnit"])
	assert.Equal(t, []string{"secret-key"}, gotQuery["api_key"])
}

func TestQueryAuthDoesNotMutateOriginalRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.QueryAuth("api_key", "secret-key")(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/sites/list", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// The credential must not leak back into the caller's request.
	assert.Empty(t, req.URL.Query().Get("api_key"))
}
