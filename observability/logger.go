package observability

// Field is a structured logging key-value pair.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging interface the client emits records through.
// Implementations can be backed by any logging library (slog, zap, logrus).
type Logger interface {
	// Debug logs detailed diagnostics, including outgoing request URLs and
	// raw response bodies.
	Debug(msg string, fields ...Field)

	// Info logs general informational messages.
	Info(msg string, fields ...Field)

	// Warn logs potentially problematic situations, such as non-2xx replies.
	Warn(msg string, fields ...Field)

	// Error logs failures.
	Error(msg string, fields ...Field)

	// With returns a logger that includes the given fields on every record.
	With(fields ...Field) Logger
}

type noopLogger struct{}

// NoopLogger returns a logger that discards everything. It is the default
// when no logger is configured, so logging can be switched off without
// touching any client behavior.
//
//nolint:ireturn // factory returns the interface for dependency injection
func NoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(string, ...Field) {}
func (l *noopLogger) Info(string, ...Field)  {}
func (l *noopLogger) Warn(string, ...Field)  {}
func (l *noopLogger) Error(string, ...Field) {}

//nolint:ireturn // method returns the interface to satisfy Logger
func (l *noopLogger) With(...Field) Logger { return l }
