package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != LevelDebug {
		t.Errorf("expected debug, got %v", got)
	}
	if got := ParseLevel("WARNING"); got != LevelWarn {
		t.Errorf("expected warn, got %v", got)
	}
	if got := ParseLevel("bogus"); got != LevelInfo {
		t.Errorf("expected info fallback, got %v", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected low levels filtered, got %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("expected warn and error present, got %q", out)
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"})

	logger.Info("resize %dx%d", 80, 24)

	out := buf.String()
	if !strings.Contains(out, "resize 80x24") {
		t.Errorf("expected formatted message, got %q", out)
	}
	if !strings.Contains(out, "[INFO] test:") {
		t.Errorf("expected level and prefix, got %q", out)
	}
}

func TestFieldsSortedInOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf}).
		WithField("zeta", 1).
		WithField("alpha", 2)

	logger.Info("msg")

	out := buf.String()
	if !strings.Contains(out, "{alpha=2, zeta=1}") {
		t.Errorf("expected sorted fields, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: LevelDebug, Output: &buf})
	comp := base.WithComponent("compositor")

	comp.Info("msg")
	if !strings.Contains(buf.String(), "component=compositor") {
		t.Errorf("expected component field, got %q", buf.String())
	}

	// The base logger is unchanged.
	buf.Reset()
	base.Info("msg")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("expected base logger without component, got %q", buf.String())
	}
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf})
	logger.Disable()

	logger.Error("never")
	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	orig := Get()
	defer Set(orig)

	var buf bytes.Buffer
	Set(New(Config{Level: LevelDebug, Output: &buf}))
	Get().Info("global message")

	if !strings.Contains(buf.String(), "global message") {
		t.Errorf("expected global logger output, got %q", buf.String())
	}

	Set(nil)
	if Get() == nil {
		t.Error("expected Set(nil) to be ignored")
	}
}
