package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("expected warn message, got %q", out)
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "chatty")

	logger.Debug().Msg("hidden-debug")
	logger.Info().Msg("shown-info")

	out := buf.String()
	if strings.Contains(out, "hidden-debug") {
		t.Fatalf("debug message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown-info") {
		t.Fatalf("expected info message, got %q", out)
	}
}
