// Package middleware provides http.RoundTripper layers for the client:
// query-parameter authentication, client-side rate limiting, and
// request/response observability.
package middleware

import (
	"maps"
	"net/http"
)

// QueryAuth returns a middleware that attaches a credential as a query
// parameter on every request. The monitoring API authenticates with an
// "api_key" parameter rather than a header.
func QueryAuth(param, value string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &queryAuthTransport{
			next:  next,
			param: param,
			value: value,
		}
	}
}

type queryAuthTransport struct {
	next  http.RoundTripper
	param string
	value string
}

func (t *queryAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so the caller's request (and anything logged by outer layers)
	// never carries the credential.
	req = cloneRequest(req)

	q := req.URL.Query()
	q.Set(t.param, t.value)
	req.URL.RawQuery = q.Encode()

	//nolint:wrapcheck // middleware passes through errors from the next layer
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with its own URL and
// header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	u := *req.URL
	r.URL = &u
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
