package logging

import (
	"mommy/report"
)

// logger is a global reference to a shared Logger (created/initialized by the
// CLI, but separated for general usage)
var logger = newLogger(LogLevelVerbose)

// Initialize initializes the global logger with the provided log level name
func Initialize(loglevelname string) {
	logger = newLogger(ParseLogLevel(loglevelname))
}

// ShouldProceed indicates whether or not the logger has encountered any errors
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// ErrorCount returns the number of errors logged since initialization
func ErrorCount() int {
	return logger.errorCount
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs a compilation error along with the offending source line.
// `lines` are the lines of the source file.
func LogCompileError(srcPath string, lines []string, ce *report.CompileError) {
	logger.handleError(func() {
		displayCompileError(srcPath, lines, ce)
	})
}

// LogStdError logs a standard Go error: I/O, configuration, toolchain, etc.
func LogStdError(tag string, err error) {
	logger.handleError(func() {
		PrintErrorMessage(tag, err)
	})
}

// LogPartialOutput displays the C code that was generated before a compilation
// error occurred.
func LogPartialOutput(code string) {
	if logger.LogLevel >= LogLevelWarning {
		displayPartialOutput(code)
	}
}

// LogWarning logs a warning message
func LogWarning(tag, msg string) {
	if logger.LogLevel >= LogLevelWarning {
		PrintWarningMessage(tag, msg)
	}
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" log functions that will only run if the log
// level is verbose.  They provide additional information about the build
// process to the user.

// LogHeader logs the version header before transpilation begins
func LogHeader(srcPath, mode string) {
	if logger.LogLevel == LogLevelVerbose {
		displayHeader(srcPath, mode)
	}
}

// LogBeginPhase logs the beginning of a build phase
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase logs the successful end of the current build phase
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(true)
	}
}

// LogInfo logs an informational message
func LogInfo(tag, msg string) {
	if logger.LogLevel == LogLevelVerbose {
		PrintInfoMessage(tag, msg)
	}
}

// LogFinished logs the closing message of a build
func LogFinished() {
	if logger.LogLevel > LogLevelSilent {
		displayEndPhase(logger.errorCount == 0)
		displayFinished(logger.errorCount == 0, logger.errorCount)
	}
}
