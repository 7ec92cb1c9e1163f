package badger

import (
	"fmt"
	"log/slog"
	"strings"
)

// slogLogger routes badger's printf-style logging into slog.
// Badger's info output is chatty, so it is logged at debug level.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Errorf(format string, args ...any) {
	s.l.Error(message(format, args))
}

func (s slogLogger) Warningf(format string, args ...any) {
	s.l.Warn(message(format, args))
}

func (s slogLogger) Infof(format string, args ...any) {
	s.l.Debug(message(format, args))
}

func (s slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(message(format, args))
}

func message(format string, args []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
