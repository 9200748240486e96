package logging

import (
	"log/slog"
)

// NewNop returns a logger that discards everything. Meant for tests.
func NewNop() *SlogLogger {
	return &SlogLogger{l: slog.New(slog.DiscardHandler)}
}
