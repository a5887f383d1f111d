package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/solarmon/go-solaredge/internal/ratelimit"
)

func TestNewHourlyLimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		requestsPerHour int
		wantLimit       rate.Limit
		wantBurst       int
	}{
		{name: "documented quota", requestsPerHour: 300, wantLimit: rate.Limit(300.0 / 3600.0), wantBurst: 300},
		{name: "one per hour", requestsPerHour: 1, wantLimit: rate.Limit(1.0 / 3600.0), wantBurst: 1},
		{name: "high quota", requestsPerHour: 7200, wantLimit: rate.Limit(2.0), wantBurst: 7200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter := ratelimit.NewHourlyLimiter(tt.requestsPerHour)
			require.NotNil(t, limiter)

			assert.InDelta(t, float64(tt.wantLimit), float64(limiter.Limit()), 1e-9)
			assert.Equal(t, tt.wantBurst, limiter.Burst())
		})
	}
}

func TestHourlyLimiterAllowsBurst(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewHourlyLimiter(3)

	for i := range 3 {
		assert.True(t, limiter.Allow(), "request %d should be within burst", i+1)
	}
	assert.False(t, limiter.Allow(), "fourth immediate request should exceed the bucket")
}
