// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, levels and
//              the output formats.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-12 v0.2.0: Run ID, logfmt ordering and severity mapping tests
// - 2026-10-17 v0.2.1: WithFields and IsLevelEnabled tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/raql/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug).WithField("component", "parser").WithRunID("r1")

	if derived == logger {
		t.Fatal("With* should return a new logger instance")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify the original logger")
	}
	if _, ok := logger.contextFields["component"]; ok {
		t.Error("WithField() should not modify the original logger")
	}
	if derived.runID != "r1" {
		t.Errorf("runID = %q, want r1", derived.runID)
	}
}

func TestWithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	derived := logger.WithFields(Fields{"component": "driver", "verbosity": "result"}).WithFormat(FormatJSON)

	if len(logger.contextFields) != 0 {
		t.Error("WithFields() should not modify the original logger")
	}
	derived.Info("Run started")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("WithFormat(FormatJSON) output is not JSON: %v\n%s", err, buf.String())
	}
	if data["component"] != "driver" || data["verbosity"] != "result" {
		t.Errorf("context fields missing: %v", data)
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := Discard().WithLevel(LevelInfo)

	tests := []struct {
		level Level
		want  bool
	}{
		{LevelTrace, false},
		{LevelDebug, false},
		{LevelInfo, true},
		{LevelError, true},
	}
	for _, tt := range tests {
		if got := logger.IsLevelEnabled(tt.level); got != tt.want {
			t.Errorf("IsLevelEnabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
	if Discard().IsLevelEnabled(LevelError) {
		t.Error("a discarding logger should enable no level")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level were written:\n%s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got:\n%s", out)
	}
}

func TestLevelOff(t *testing.T) {
	logger, buf := newBufferLogger(LevelOff, FormatText)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff should drop everything, got %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithRunID("run-7").WithField("component", "driver").Info("Statement recognized", Fields{"index": 2})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := map[string]interface{}{
		"level":     "info",
		"message":   "Statement recognized",
		"logger":    "test",
		"run_id":    "run-7",
		"component": "driver",
		"index":     float64(2),
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestLogfmtOutputIsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)
	logger.Debug("x", Fields{"zeta": 1, "alpha": "a b"})

	out := buf.String()
	a := strings.Index(out, `alpha="a b"`)
	z := strings.Index(out, "zeta=1")
	if a < 0 || z < 0 || a > z {
		t.Errorf("fields not written in sorted order: %s", out)
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter()
	f.DisableTimestamp = true
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})
	logger.formatter = f

	logger.WithRunID("r").ErrorWithErr("Cannot open file", errors.New("missing"), Fields{"path": "p.txt"})

	want := `[ERR] (run=r) Cannot open file [path=p.txt] error="missing"` + "\n"
	if buf.String() != want {
		t.Errorf("text output = %q, want %q", buf.String(), want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, err := f.Format(NewEntry(LevelWarn, "slow statement"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(out) != "[WRN] slow statement\n" {
		t.Errorf("Format() = %q", out)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"low severity", mdwerror.New("syntax error").WithCode(mdwerror.CodeSyntax), "level=info"},
		{"medium severity", mdwerror.New("cannot read").WithCode(mdwerror.CodeSourceUnavailable), "level=warn"},
		{"high severity", mdwerror.New("bug").WithCode(mdwerror.CodeInternal), "level=error"},
		{"plain error", errors.New("plain"), "level=error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatLogfmt)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("LogError() output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat(logfmt) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	replacement := Discard()
	SetDefault(replacement)
	if GetDefault() != replacement {
		t.Error("SetDefault() did not replace the default logger")
	}
}
