package log

// Logger is the logging interface used across the planner.
// It decouples packages from the concrete logging library.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	// WithField returns a derived logger that appends key=value to every line.
	WithField(key string, value interface{}) Logger
	// WithFields is the multi-field variant of WithField.
	WithFields(fields map[string]interface{}) Logger
}
