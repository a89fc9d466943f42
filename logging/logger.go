package logging

// Logger is responsible for storing and displaying output from the transpiler
// as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version header, phase progress, closing message (DEFAULT)
)

// ParseLogLevel converts a log level name into a log level.  Unknown names
// default to verbose.
func ParseLogLevel(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarning
	default:
		return LogLevelVerbose
	}
}

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{LogLevel: loglevel}
}

// handleError records an error and displays it if the log level allows
func (l *Logger) handleError(display func()) {
	l.errorCount++

	if l.LogLevel > LogLevelSilent {
		displayEndPhase(false)
		display()
	}
}
