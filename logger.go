package sweep

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/sweep/metrics"
)

// nopHandler drops every record. Enabled reports false at all levels, so
// attribute values passed to a disabled logger are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the silent default logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by extrusions and rig builders, which
// may run on several goroutines while SetLogger swaps it.
var loggerPtr atomic.Pointer[slog.Logger]

// metricsPtr stores the active collectors; nil means no metrics.
var metricsPtr atomic.Pointer[metrics.Metrics]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger routes the log output of sweep, rig and the CLI to l.
// Nothing is logged until it is called; nil silences output again.
// It may be called while extrusions are running.
//
// Levels:
//   - [slog.LevelDebug]: one record per extrusion and per posed rig
//   - [slog.LevelWarn]: a permissive Pop on an empty transform stack
//
// Example:
//
//	sweep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
// Package rig logs through it too.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// SetMetrics installs Prometheus collectors that record extrusions and
// unbalanced pops. Pass nil to stop recording.
func SetMetrics(m *metrics.Metrics) {
	metricsPtr.Store(m)
}

// currentMetrics returns the installed collectors or nil. All metrics.Metrics
// methods accept a nil receiver.
func currentMetrics() *metrics.Metrics {
	return metricsPtr.Load()
}
