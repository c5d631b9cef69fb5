package diag_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/chazu/hachure/pkg/diag"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		name  string
		event diag.Event
		want  string
	}{
		{
			name:  "loop level",
			event: diag.Warningf("2F", 1, "outer loop failed to stitch"),
			want:  "[warning] hatch 2F: loop 1: outer loop failed to stitch",
		},
		{
			name:  "entity level",
			event: diag.Errorf("A0", -1, "triangulation failed"),
			want:  "[error] hatch A0: triangulation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	if got := diag.SeverityWarning.String(); got != "warning" {
		t.Errorf("SeverityWarning.String() = %q, want %q", got, "warning")
	}
	if got := diag.SeverityError.String(); got != "error" {
		t.Errorf("SeverityError.String() = %q, want %q", got, "error")
	}
	if got := diag.Severity(99).String(); got != "unknown" {
		t.Errorf("Severity(99).String() = %q, want %q", got, "unknown")
	}
}

func TestDiscard(t *testing.T) {
	// Must accept events without blowing up.
	diag.Discard.Emit(diag.Warningf("2F", 0, "dropped"))
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.Logger(slog.New(slog.NewTextHandler(&buf, nil)))

	sink.Emit(diag.Warningf("2F", 1, "hole omitted"))
	out := buf.String()
	if !strings.Contains(out, "hole omitted") {
		t.Errorf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "handle=2F") {
		t.Errorf("log output missing handle attr: %q", out)
	}
	if !strings.Contains(out, "loop=1") {
		t.Errorf("log output missing loop attr: %q", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("log output at wrong level: %q", out)
	}

	buf.Reset()
	sink.Emit(diag.Errorf("A0", -1, "conversion failed"))
	out = buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("log output at wrong level: %q", out)
	}
	if strings.Contains(out, "loop=") {
		t.Errorf("entity-level event should not carry a loop attr: %q", out)
	}
}
