// File: utils/logger.go
package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLogLevel maps a --log value onto a zerolog level. The second return
// value is false when the text is not a known level; the caller gets info.
func ParseLogLevel(text string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "error":
		return zerolog.ErrorLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "trace":
		return zerolog.TraceLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// InitLogger configures the process-global logger with a console writer.
func InitLogger(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
