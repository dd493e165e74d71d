package sdl3

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gosdl/sdl3/internal/fail"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for sdl3 and all its sub-packages.
// By default the bindings produce no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by the bindings:
//   - [slog.LevelDebug]: per-call diagnostics (shader formats, swapchain)
//   - [slog.LevelWarn]: non-fatal issues (release on nil handle, tool fallback)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share the
// same logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// SetErrorObserver registers a hook invoked once for every native failure
// the bindings signal, with the diagnostic string captured for that failure.
// It is the logging seam for applications that want to record every SDL
// error without threading a logger through each call site. Pass nil to
// remove the hook; the previously registered hook is returned.
//
// The hook runs on whatever goroutine triggered the failing call and must
// not call back into the bindings.
func SetErrorObserver(fn func(msg string)) (prev func(msg string)) {
	return fail.SetObserver(fn)
}
