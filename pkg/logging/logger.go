// Package logging builds the hclog loggers used by the permcalc command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// LogLevelEnv selects the log level when no flag overrides it.
	LogLevelEnv = "PERMCALC_LOG_LEVEL"
	// JSONLogEnv switches output to JSON when set to "1".
	JSONLogEnv = "PERMCALC_JSON_LOG"

	linePrefix = "🔐 "
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(JSONLogEnv) == "1"

	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(LogLevelEnv)
	if level == "" {
		level = "warn"
	}
	return level
}
