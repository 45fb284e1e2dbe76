// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the settings of the RAQL tools from TOML
//              or YAML files, applies RAQL_* environment overrides and
//              validates the result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-13 v0.2.0: Typed RAQL settings replace the generic key store

/*
Package config provides the typed settings of the RAQL recognizer, its
program driver, the logger and the recognition gateway.

A settings file looks like this:

	[parser]
	case_insensitive = false
	verbosity = 1
	max_statement_length = 65536
	max_nesting = 6

	[driver]
	halt_between = false

	[log]
	level = "warn"
	format = "text"

	[gateway]
	host = "127.0.0.1"
	port = 8470
	read_timeout = "15s"

The same keys are accepted in YAML. Every key can be overridden through the
environment, e.g. RAQL_PARSER_VERBOSITY=3 or RAQL_GATEWAY_PORT=9000.

Usage:

	settings, err := config.Load("raql.toml")
	if err != nil {
		return err
	}
	engine := raql.NewEngine(raql.OptionsFromSettings(settings))
*/
package config
