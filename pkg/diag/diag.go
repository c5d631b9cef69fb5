// Package diag carries per-entity diagnostics out of the conversion
// pipeline. Producers report through an injected Sink; nothing in the
// pipeline writes to a log directly, so callers decide what malformed
// input is worth.
package diag

import (
	"fmt"
	"log/slog"
)

// Severity grades an event.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one diagnostic: which hatch, which loop if any, and what
// happened to it.
type Event struct {
	Severity Severity
	Handle   string
	Loop     int // boundary loop index, -1 for entity-level events
	Message  string
}

func (e Event) String() string {
	if e.Loop >= 0 {
		return fmt.Sprintf("[%s] hatch %s: loop %d: %s", e.Severity, e.Handle, e.Loop, e.Message)
	}
	return fmt.Sprintf("[%s] hatch %s: %s", e.Severity, e.Handle, e.Message)
}

// Warningf builds a warning event with a formatted message.
func Warningf(handle string, loop int, format string, args ...any) Event {
	return Event{Severity: SeverityWarning, Handle: handle, Loop: loop, Message: fmt.Sprintf(format, args...)}
}

// Errorf builds an error event with a formatted message.
func Errorf(handle string, loop int, format string, args ...any) Event {
	return Event{Severity: SeverityError, Handle: handle, Loop: loop, Message: fmt.Sprintf(format, args...)}
}

// Sink receives events. Implementations must be safe for concurrent
// use when the conversion pipeline is shared across goroutines.
type Sink interface {
	Emit(e Event)
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Logger returns a sink that forwards events to a slog logger at the
// level matching their severity. A nil logger uses slog.Default.
func Logger(l *slog.Logger) Sink {
	if l == nil {
		l = slog.Default()
	}
	return &logSink{l: l}
}

type logSink struct {
	l *slog.Logger
}

func (s *logSink) Emit(e Event) {
	attrs := []any{slog.String("handle", e.Handle)}
	if e.Loop >= 0 {
		attrs = append(attrs, slog.Int("loop", e.Loop))
	}
	switch e.Severity {
	case SeverityError:
		s.l.Error(e.Message, attrs...)
	default:
		s.l.Warn(e.Message, attrs...)
	}
}
