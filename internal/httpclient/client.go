// Package httpclient wraps net/http with RoundTripper middleware chaining.
package httpclient

import (
	"net/http"
	"time"
)

// Middleware wraps an http.RoundTripper to add behavior. The first
// middleware in a chain is the outermost layer.
type Middleware func(http.RoundTripper) http.RoundTripper

// Client is an http.Client whose transport is assembled from middleware.
type Client struct {
	base       *http.Client
	middleware []Middleware
}

// New builds a client from the given options and composes the middleware
// chain onto the base transport.
func New(opts ...Option) *Client {
	c := &Client{
		base: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Apply in reverse so the first middleware ends up outermost:
		// WithMiddleware(A, B, C) yields A(B(C(transport))).
		for i := len(c.middleware) - 1; i >= 0; i-- {
			transport = c.middleware[i](transport)
		}

		c.base.Transport = transport
	}

	return c
}

// Do executes the request through the middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.base.Do(req)
}
