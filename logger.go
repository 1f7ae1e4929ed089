package pix

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger and is swapped atomically.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes pix diagnostics to l. By default pix is silent. Pass
// nil to restore the silent default.
//
// pix logs only at [slog.LevelDebug]; every record names its operation:
//   - "resample": src, dst, filter and the contribution counts per axis
//   - "blit: rejected mode": the mode Blit refused with ErrUnsupportedBlitMode
//   - "palette: loaded": file and color count of a PAL file read by palette.Load
//
// Drawing primitives never log; they run per pixel.
//
//	pix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by pix. It is safe for
// concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugLogger returns the active logger and whether it accepts debug
// records, so callers can skip building attributes nobody reads.
func debugLogger() (*slog.Logger, bool) {
	l := loggerPtr.Load()
	return l, l.Enabled(context.Background(), slog.LevelDebug)
}
