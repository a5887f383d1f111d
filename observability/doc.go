// Package observability provides the logging and metrics interfaces used by
// the go-solaredge client.
//
// The client treats both as pluggable collaborators: supply your own
// implementations through solaredge.ClientConfig, or supply nothing and
// get zero-overhead no-op defaults.
//
// # Logger
//
//	logger := myLogger{} // implements observability.Logger
//	client, err := solaredge.NewWithConfig(&solaredge.ClientConfig{
//		APIKey: apiKey,
//		Logger: logger,
//	})
//
// Outgoing request URLs and raw response bodies are logged at debug level,
// so a debug-enabled logger gives a full wire trace while an info-level one
// stays quiet.
//
// # MetricsRecorder
//
//	metrics := myRecorder{} // implements observability.MetricsRecorder
//	client, err := solaredge.NewWithConfig(&solaredge.ClientConfig{
//		APIKey:  apiKey,
//		Metrics: metrics,
//	})
//
// Recorded events are HTTP request outcomes, client-side rate limiter waits,
// and errors by kind.
//
// See examples/observability for a working slog-backed logger.
package observability
