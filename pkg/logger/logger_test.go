package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below level were written: %q", out)
	}
	if !strings.Contains(out, "warn 3") || !strings.Contains(out, "error 4") {
		t.Errorf("expected warn and error output, got %q", out)
	}
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.SetLevel(LevelNone)
	l.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.SetFormat(FormatJSON)
	l.With("resource", "Claim").Info("validated")

	out := buf.String()
	for _, want := range []string{`"msg":"validated"`, `"resource":"Claim"`, `"component":"fhirmodel"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"warn", LevelWarn, true},
		{"", LevelInfo, true},
		{"off", LevelNone, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelError.String() != "ERROR" || LevelNone.String() != "" {
		t.Errorf("unexpected level strings")
	}
}
