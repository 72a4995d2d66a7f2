package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Init("warn")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString = %q, want warn", got)
	}

	Infof("should be dropped")
	Warnf("kept %d", 1)
	Errorf("kept %d", 2)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] kept 1") || !strings.Contains(out, "[ERROR] kept 2") {
		t.Fatalf("missing warn/error lines: %q", out)
	}
}

func TestInitDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString = %q, want info", got)
	}

	Debugf("debug line")
	Info("info line")
	if strings.Contains(buf.String(), "debug line") {
		t.Fatalf("debug logged at info level")
	}
	if !strings.Contains(buf.String(), "info line") {
		t.Fatalf("info line missing")
	}
}
