package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("Level(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if result := ParseLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, s := range []string{"debug", "Info", "warn", "warning", "ERROR"} {
		if !ValidLevel(s) {
			t.Errorf("ValidLevel(%q) = false", s)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true")
	}
}

func TestNewDefaultsOutput(t *testing.T) {
	logger := New(Config{})
	if logger.output == nil {
		t.Error("expected default output to be set")
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown %d", 1)
	logger.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "[WARN] test: shown 1") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] test: shown 2") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf}).
		WithComponent("plugin").
		WithFields(map[string]any{"rows": 24, "cols": 80})

	logger.Info("resized")

	if !strings.Contains(buf.String(), "resized {cols=80, component=plugin, rows=24}") {
		t.Errorf("unexpected field rendering: %q", buf.String())
	}
}

func TestDerivedLoggerDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: LevelDebug, Output: &buf})
	_ = parent.WithField("child", true)

	parent.Info("plain")
	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent picked up child field: %q", buf.String())
	}
}

func TestSetLevelAndEnabled(t *testing.T) {
	logger := New(Config{Level: LevelInfo, Output: &bytes.Buffer{}})
	if logger.Enabled(LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	logger.SetLevel(LevelDebug)
	if !logger.Enabled(LevelDebug) {
		t.Error("debug should be enabled after SetLevel")
	}
}

func TestNullLogger(t *testing.T) {
	if NullLogger.Enabled(LevelError) {
		t.Error("NullLogger should never be enabled")
	}
	NullLogger.WithComponent("x").Error("discarded")
}
