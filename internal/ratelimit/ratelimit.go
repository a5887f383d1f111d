// Package ratelimit sizes token-bucket limiters for the monitoring API's
// hourly request quota.
package ratelimit

import "golang.org/x/time/rate"

// NewHourlyLimiter creates a rate limiter for the given number of requests
// per hour. Tokens replenish continuously at requestsPerHour/3600 per second
// with a burst capacity equal to the full hourly allowance, mirroring how
// the server accounts the quota per rolling hour.
func NewHourlyLimiter(requestsPerHour int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), requestsPerHour)
}
