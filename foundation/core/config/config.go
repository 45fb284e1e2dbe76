// File: config.go
// Title: RAQL Settings
// Description: Defines the Settings type and loads it from TOML or YAML files
//              with environment variable overrides.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-13 v0.2.0: Typed settings, RAQL_* environment overrides
// - 2026-10-17 v0.2.1: parser.max_nesting

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	mdwstringx "github.com/msto63/raql/foundation/utils/stringx"
)

// EnvPrefix is the prefix of all environment overrides
const EnvPrefix = "RAQL"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParserSettings configures statement recognition
type ParserSettings struct {
	CaseInsensitive    bool `toml:"case_insensitive" yaml:"case_insensitive"`
	Verbosity          int  `toml:"verbosity" yaml:"verbosity"`
	MaxStatementLength int  `toml:"max_statement_length" yaml:"max_statement_length"`
	MaxNesting         int  `toml:"max_nesting" yaml:"max_nesting"`
}

// DriverSettings configures the program and file drivers
type DriverSettings struct {
	HaltBetween bool `toml:"halt_between" yaml:"halt_between"`
}

// LogSettings configures the operational logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// GatewaySettings configures the recognition gateway
type GatewaySettings struct {
	Host        string        `toml:"host" yaml:"host"`
	Port        int           `toml:"port" yaml:"port"`
	ReadTimeout time.Duration `toml:"read_timeout" yaml:"read_timeout"`
}

// Settings holds the complete configuration of the RAQL tools
type Settings struct {
	Parser  ParserSettings  `toml:"parser" yaml:"parser"`
	Driver  DriverSettings  `toml:"driver" yaml:"driver"`
	Log     LogSettings     `toml:"log" yaml:"log"`
	Gateway GatewaySettings `toml:"gateway" yaml:"gateway"`

	source string
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Parser: ParserSettings{
			CaseInsensitive:    false,
			Verbosity:          1,
			MaxStatementLength: 64 * 1024,
			MaxNesting:         6,
		},
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
		Gateway: GatewaySettings{
			Host:        "127.0.0.1",
			Port:        8470,
			ReadTimeout: 15 * time.Second,
		},
	}
}

// Source returns the file the settings were loaded from, or "" for defaults
func (s *Settings) Source() string {
	return s.source
}

// Address returns the gateway listen address
func (g GatewaySettings) Address() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}

// Load reads settings from a file, detecting the format from its extension.
// Values missing from the file keep their defaults. Environment overrides
// are applied before validation.
func Load(filePath string) (*Settings, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeInvalidConfig
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	settings, err := LoadFromString(string(content), detectFormat(filePath))
	if err != nil {
		if mdwErr, ok := err.(*mdwerror.Error); ok {
			mdwErr.WithDetail("filePath", filePath)
		}
		return nil, err
	}
	settings.source = filePath
	return settings, nil
}

// LoadFromString parses settings from a string in the given format
func LoadFromString(content string, format Format) (*Settings, error) {
	settings := Default()
	if format == FormatAuto {
		format = FormatTOML
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal([]byte(content), settings)
	default:
		_, err = toml.Decode(content, settings)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

// LookupFunc looks up an environment variable
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from RAQL_<SECTION>_<KEY> variables
func (s *Settings) ApplyEnv(lookup LookupFunc) error {
	overrides := []struct {
		key   string
		apply func(string) error
	}{
		{"parser.case_insensitive", boolSetter(&s.Parser.CaseInsensitive)},
		{"parser.verbosity", intSetter(&s.Parser.Verbosity)},
		{"parser.max_statement_length", intSetter(&s.Parser.MaxStatementLength)},
		{"parser.max_nesting", intSetter(&s.Parser.MaxNesting)},
		{"driver.halt_between", boolSetter(&s.Driver.HaltBetween)},
		{"log.level", stringSetter(&s.Log.Level)},
		{"log.format", stringSetter(&s.Log.Format)},
		{"gateway.host", stringSetter(&s.Gateway.Host)},
		{"gateway.port", intSetter(&s.Gateway.Port)},
		{"gateway.read_timeout", durationSetter(&s.Gateway.ReadTimeout)},
	}

	for _, o := range overrides {
		envKey := EnvKey(o.key)
		value, ok := lookup(envKey)
		if !ok {
			continue
		}
		if err := o.apply(strings.TrimSpace(value)); err != nil {
			return mdwerror.Wrap(err, "invalid environment override").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", envKey)
		}
	}
	return nil
}

// EnvKey converts a dotted settings key to its environment variable name
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func boolSetter(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func intSetter(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func stringSetter(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func durationSetter(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}
