// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewMockServer creates a test HTTP server with a predefined response.
// It validates the request path and the api_key query parameter, then
// returns the given body and status.
func NewMockServer(t *testing.T, expectedPath, apiKey, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path, "request path should match expected")

		if apiKey != "" {
			assert.Equal(t, apiKey, r.URL.Query().Get("api_key"), "api_key query parameter should be set")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "failed to write response body")
	}))
}

// NewMockServerWithHandler creates a test HTTP server with a custom handler.
// Use this for scenarios that need to inspect query parameters or fail the
// connection in specific ways.
func NewMockServerWithHandler(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}
