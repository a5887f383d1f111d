package middleware

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/solarmon/go-solaredge/observability"
)

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Limiter *rate.Limiter
	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// RateLimit returns a middleware that waits on the limiter before each
// request. The wait is advisory pacing against the server-side hourly
// quota; a nil limiter disables it.
func RateLimit(cfg RateLimitConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &rateLimitTransport{
			next:    next,
			limiter: cfg.Limiter,
			logger:  cfg.Logger,
			metrics: cfg.Metrics,
		}
	}
}

type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter == nil {
		//nolint:wrapcheck // middleware passes through errors from the next layer
		return t.next.RoundTrip(req)
	}

	start := time.Now()
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "rate limiter wait failed")
	}

	if waited := time.Since(start); waited > time.Millisecond {
		t.logger.Debug("rate limited",
			observability.Field{Key: "path", Value: req.URL.Path},
			observability.Field{Key: "wait", Value: waited},
		)
		t.metrics.RecordRateLimit(req.URL.Path, waited)
	}

	//nolint:wrapcheck // middleware passes through errors from the next layer
	return t.next.RoundTrip(req)
}
