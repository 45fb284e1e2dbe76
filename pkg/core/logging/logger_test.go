package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/msto63/raql/foundation/core/config"
	mdwlog "github.com/msto63/raql/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"off", mdwlog.LevelOff},
		{"bogus", mdwlog.DefaultLevel()},
		{"", mdwlog.DefaultLevel()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("raql")
	if cfg.ServiceName != "raql" {
		t.Errorf("ServiceName = %v, want raql", cfg.ServiceName)
	}
	if cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("Level/Format = %v/%v, want warn/text", cfg.Level, cfg.Format)
	}
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings("raql-gateway", config.LogSettings{Level: "debug", Format: "json"})
	if cfg.Level != "debug" || cfg.Format != "json" || cfg.ServiceName != "raql-gateway" {
		t.Errorf("FromSettings() = %+v", cfg)
	}

	cfg = FromSettings("raql", config.LogSettings{})
	if cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("FromSettings() with empty section = %+v", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "raql",
		Level:       "info",
		Format:      "logfmt",
		Output:      &buf,
	})

	logger.Debug("hidden")
	logger.Info("visible", mdwlog.Fields{"statements": 3})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(out, `message="visible"`) || !strings.Contains(out, "statements=3") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewLoggerAdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Format:            "unknown-format",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("program recognized")

	if primary.String() == "" || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
	if !strings.Contains(primary.String(), "[INF]") {
		t.Errorf("unknown format should fall back to text, got %q", primary.String())
	}
}

func TestKeyValueLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LoggerConfig{ServiceName: "raql-gateway", Level: "debug", Format: "logfmt", Output: &buf})

	if logger.Name() != "raql-gateway" {
		t.Errorf("Name() = %v", logger.Name())
	}

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "count", 2, "odd")
	logger.Warn("warn message")
	logger.Error("error message", 42, "ignored")

	out := buf.String()
	for _, want := range []string{`key="value"`, "count=2", `message="warn message"`, `message="error message"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestToFields(t *testing.T) {
	if toFields() != nil {
		t.Error("toFields() with no pairs should be nil")
	}

	fields := toFields("a", 1, 2, "skipped", "b")
	if len(fields) != 1 || fields["a"] != 1 {
		t.Errorf("toFields() = %v", fields)
	}
}
