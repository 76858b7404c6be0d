// ABOUTME: Tests for the leveled logger
// ABOUTME: Validates level filtering, tags and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// capture redirects output for the duration of the test. Tests using it
// mutate global state and must not run in parallel.
func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	})
	return &buf
}

func TestDefaultLevelIsInfo(t *testing.T) {
	if GetLevel() != LevelInfo {
		t.Errorf("default level = %v; want %v", GetLevel(), LevelInfo)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelWarn)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug/info leaked at warn level: %q", got)
	}
	if !strings.Contains(got, "[WARN] shown 3\n") || !strings.Contains(got, "[ERROR] shown 4\n") {
		t.Errorf("missing warn/error lines: %q", got)
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("strategy=%s", "step(2)")
	if got := buf.String(); got != "[DEBUG] strategy=step(2)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, LevelError+4)

	Warn("hidden")
	Error("boom")
	if got := buf.String(); got != "[ERROR] boom\n" {
		t.Errorf("output = %q; want only the error line", got)
	}
}
