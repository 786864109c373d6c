package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: WARN, output: &buf}

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("shown")
	l.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("low-level messages leaked:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] shown") || !strings.Contains(out, "[ERROR] also shown") {
		t.Fatalf("missing messages:\n%s", out)
	}
}

func TestFormattingArgs(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: DEBUG, output: &buf}

	l.Info("report has %d domains", 4)
	if !strings.Contains(buf.String(), "report has 4 domains") {
		t.Fatalf("args not formatted:\n%s", buf.String())
	}
}

func TestWithFieldSortedOutput(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: DEBUG, output: &buf}

	l.WithField("period", "daily").WithField("entries", 6).Info("generating")

	out := buf.String()
	if !strings.Contains(out, "entries=6 period=daily") {
		t.Fatalf("fields not sorted key order:\n%s", out)
	}
}

func TestWithFieldDoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: DEBUG, output: &buf}

	_ = l.WithField("k", "v")
	l.Info("plain")

	if strings.Contains(buf.String(), "k=v") {
		t.Fatalf("parent logger picked up child field:\n%s", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		DEBUG:     "DEBUG",
		INFO:      "INFO",
		WARN:      "WARN",
		ERROR:     "ERROR",
		Level(42): "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Fatalf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
