package impl

import (
	"io"
	"log/slog"
	"time"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is the clock used by every service under test.
var fixedNow = time.Date(2025, 4, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func strPtr(s string) *string {
	return &s
}
