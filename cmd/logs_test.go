package cmd_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/otoate/scaledegree/cmd"
)

func TestNewLogger(t *testing.T) {
	var out strings.Builder
	logger := cmd.NewLogger(&out, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("answer", "correct", true)
	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message logged at info level: %q", got)
	}
	if strings.Contains(got, "time=") {
		t.Errorf("time logged: %q", got)
	}
	if !strings.Contains(got, "msg=answer correct=true") {
		t.Errorf("output = %q, want the message and its attributes", got)
	}
	if strings.Contains(got, "source=") {
		t.Errorf("source logged at info level: %q", got)
	}
}

func TestNewLoggerDebugSource(t *testing.T) {
	var out strings.Builder
	cmd.NewLogger(&out, slog.LevelDebug).Debug("shown")
	if got := out.String(); !strings.Contains(got, "source=") || !strings.Contains(got, "msg=shown") {
		t.Errorf("output = %q, want source and message", got)
	}
}
