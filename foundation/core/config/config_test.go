// File: config_test.go
// Title: Settings Tests
// Description: Tests for loading settings from TOML and YAML, environment
//              overrides, validation and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-13 v0.2.0: Tests for RAQL settings

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/raql/foundation/core/error"
)

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default() settings are invalid: %v", err)
	}
	if s.Parser.CaseInsensitive {
		t.Error("keyword matching must be case sensitive by default")
	}
	if s.Parser.Verbosity != 1 {
		t.Errorf("Parser.Verbosity = %d, want 1", s.Parser.Verbosity)
	}
	if s.Parser.MaxNesting != 6 {
		t.Errorf("Parser.MaxNesting = %d, want 6", s.Parser.MaxNesting)
	}
	if s.Gateway.Address() != "127.0.0.1:8470" {
		t.Errorf("Gateway.Address() = %q", s.Gateway.Address())
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML settings", func(t *testing.T) {
		path := filepath.Join(tempDir, "raql.toml")
		content := `
[parser]
case_insensitive = true
verbosity = 3

[driver]
halt_between = true

[gateway]
port = 9000
read_timeout = "2s"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !s.Parser.CaseInsensitive || s.Parser.Verbosity != 3 {
			t.Errorf("Parser = %+v", s.Parser)
		}
		if !s.Driver.HaltBetween {
			t.Error("Driver.HaltBetween should be true")
		}
		if s.Gateway.Port != 9000 || s.Gateway.ReadTimeout != 2*time.Second {
			t.Errorf("Gateway = %+v", s.Gateway)
		}
		if s.Gateway.Host != "127.0.0.1" {
			t.Errorf("missing keys should keep defaults, Host = %q", s.Gateway.Host)
		}
		if s.Source() != path {
			t.Errorf("Source() = %q, want %q", s.Source(), path)
		}
	})

	t.Run("load YAML settings", func(t *testing.T) {
		path := filepath.Join(tempDir, "raql.yaml")
		content := `
parser:
  verbosity: 4
log:
  level: debug
  format: json
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Parser.Verbosity != 4 || s.Log.Level != "debug" || s.Log.Format != "json" {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.toml")
		if err := os.WriteFile(path, []byte("[parser\nverbosity = "), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := Load(path)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		valid  bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"verbosity too high", func(s *Settings) { s.Parser.Verbosity = 5 }, false},
		{"verbosity negative", func(s *Settings) { s.Parser.Verbosity = -1 }, false},
		{"bad log level", func(s *Settings) { s.Log.Level = "loud" }, false},
		{"bad log format", func(s *Settings) { s.Log.Format = "xml" }, false},
		{"port zero", func(s *Settings) { s.Gateway.Port = 0 }, false},
		{"unlimited statements", func(s *Settings) { s.Parser.MaxStatementLength = 0 }, true},
		{"nesting at limit", func(s *Settings) { s.Parser.MaxNesting = MaxNestingLimit }, true},
		{"nesting above limit", func(s *Settings) { s.Parser.MaxNesting = MaxNestingLimit + 1 }, false},
		{"nesting negative", func(s *Settings) { s.Parser.MaxNesting = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() error = %v, want valid=%v", err, tt.valid)
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Validate() code = %v, want INVALID_CONFIG", mdwerror.GetCode(err))
			}
		})
	}
}

func TestCheckCollectsAllViolations(t *testing.T) {
	s := Default()
	s.Parser.Verbosity = 9
	s.Gateway.Port = -1

	result := s.Check()
	if result.Valid || len(result.Errors) != 2 {
		t.Errorf("Check() = %+v, want 2 errors", result)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"RAQL_PARSER_CASE_INSENSITIVE": "true",
		"RAQL_PARSER_VERBOSITY":        " 2 ",
		"RAQL_PARSER_MAX_NESTING":      "4",
		"RAQL_GATEWAY_READ_TIMEOUT":    "500ms",
		"RAQL_LOG_LEVEL":               "debug",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	s := Default()
	if err := s.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if !s.Parser.CaseInsensitive || s.Parser.Verbosity != 2 || s.Parser.MaxNesting != 4 {
		t.Errorf("Parser = %+v", s.Parser)
	}
	if s.Gateway.ReadTimeout != 500*time.Millisecond {
		t.Errorf("ReadTimeout = %s", s.Gateway.ReadTimeout)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", s.Log.Level)
	}

	env = map[string]string{"RAQL_GATEWAY_PORT": "eighty"}
	err := Default().ApplyEnv(lookup)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("ApplyEnv() error = %v, want INVALID_CONFIG", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raql.toml")
	if err := os.WriteFile(path, []byte("[parser]\nverbosity = 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("RAQL_PARSER_VERBOSITY", "0")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Parser.Verbosity != 0 {
		t.Errorf("Parser.Verbosity = %d, want the environment value 0", s.Parser.Verbosity)
	}
}

func TestEnvKey(t *testing.T) {
	if got := EnvKey("parser.max_statement_length"); got != "RAQL_PARSER_MAX_STATEMENT_LENGTH" {
		t.Errorf("EnvKey() = %q", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:      []string{dir},
		Filenames:  []string{"raql"},
		Extensions: []string{".toml", ".yaml"},
	}

	s, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() without file error = %v", err)
	}
	if s.Source() != "" {
		t.Errorf("Source() = %q, want defaults", s.Source())
	}

	path := filepath.Join(dir, "raql.yaml")
	if err := os.WriteFile(path, []byte("driver:\n  halt_between: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if FindConfigFile(options) != path {
		t.Errorf("FindConfigFile() = %q, want %q", FindConfigFile(options), path)
	}
	s, err = Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !s.Driver.HaltBetween {
		t.Error("Discover() did not load the discovered file")
	}
}
