// Package diag is the internal debug channel. It is silent unless a
// debugging writer is installed, so analysis never writes to the output
// of the program being explained.
package diag

import (
	"io"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Enable directs debug logging to w.
func Enable(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Disable silences debug logging again.
func Disable() {
	logger = zerolog.Nop()
}

// Log returns the current logger.
func Log() *zerolog.Logger {
	return &logger
}
