// Package logger provides the charmbracelet/log factory shared by the
// fim command-line tools. Library packages stay silent; logging is a
// surface concern.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger writing to stderr, honoring the global
// level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetDebug switches the global level between Info and Debug.
func SetDebug(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)

		return
	}
	log.SetLevel(log.InfoLevel)
}
