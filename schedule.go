package solaredge

import "time"

const (
	// DefaultRefreshInterval is the observed spacing between published
	// measurements. The API does not document it; treat it as an empirical
	// constant, not a guarantee.
	DefaultRefreshInterval = 15 * time.Minute

	// DefaultPublishGrace absorbs the jitter between a measurement being
	// taken and it appearing on the API.
	DefaultPublishGrace = 10 * time.Second
)

// EstimateNextUpdate computes when a new measurement should be available
// given the timestamp of the last one. It returns the candidate time and
// its signed distance from now; a negative duration means the candidate has
// already passed and a poll can be issued immediately.
//
// This is advisory scheduling guidance only. Nothing waits and nothing is
// enforced; the server applies the actual hourly quota and answers with an
// APIError when it is exceeded.
func EstimateNextUpdate(lastReading, now time.Time) (time.Time, time.Duration) {
	return EstimateNextUpdateWith(lastReading, now, DefaultRefreshInterval, DefaultPublishGrace)
}

// EstimateNextUpdateWith is EstimateNextUpdate with explicit refresh
// interval and grace margin, for callers that have observed different
// upstream behavior.
func EstimateNextUpdateWith(lastReading, now time.Time, refresh, grace time.Duration) (time.Time, time.Duration) {
	next := lastReading.Add(refresh + grace)
	return next, next.Sub(now)
}

// EstimatedNextUpdate computes when the next overview reading should be
// available, based on this overview's own last-update timestamp and the
// wall clock. See EstimateNextUpdate.
func (o *Overview) EstimatedNextUpdate() (time.Time, time.Duration) {
	return EstimateNextUpdate(o.LastUpdateTime, time.Now())
}
