// Package obslog defines the logging seam used by the rest of this module.
//
// Algorithms never call a global logger directly; they accept a Logger
// (usually via a Option such as bnb.WithLogger) and fall back to Discard.
// This keeps the library silent by default while letting a caller wire in
// real structured logging, following the injected-logger pattern used
// throughout the corpus rather than a package-level singleton.
package obslog

import "github.com/charmbracelet/log"

// Logger is the minimal leveled-logging surface the engine needs: phase
// transitions (BnB node counts, sort-kernel tier selection, traversal
// start/stop), never hot-loop-per-edge events.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// discard implements Logger by dropping every call. It is the default used
// throughout this module so importing it never produces output.
type discard struct{}

func (discard) Debugf(string, ...interface{}) {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Warnf(string, ...interface{})  {}

// Discard is the zero-cost default Logger.
var Discard Logger = discard{}

// charm adapts a *charmbracelet/log.Logger to this package's Logger
// interface, for callers who want real structured output.
type charm struct{ l *log.Logger }

func (c charm) Debugf(format string, args ...interface{}) { c.l.Debugf(format, args...) }
func (c charm) Infof(format string, args ...interface{})  { c.l.Infof(format, args...) }
func (c charm) Warnf(format string, args ...interface{})  { c.l.Warnf(format, args...) }

// FromCharm wraps an existing charmbracelet/log.Logger for use as a Logger.
// Passing nil returns Discard.
func FromCharm(l *log.Logger) Logger {
	if l == nil {
		return Discard
	}
	return charm{l: l}
}
