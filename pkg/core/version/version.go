// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     version
// Description: Central version management for the RAQL tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the RAQL components
const (
	// Release version of the tool set
	Platform = "0.3.0"

	// Component versions
	Parser  = "0.3.0"
	Gateway = "0.1.0"
	Console = "0.1.0"

	// Grammar revision accepted by the recognizer
	Grammar = "1"
)

// Build metadata, set with -ldflags "-X" at link time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "gateway":
		return Gateway
	case "console", "repl":
		return Console
	default:
		return Platform
	}
}

// String returns the full version line of the tool set
func String() string {
	return fmt.Sprintf("raql %s (grammar %s, commit %s, built %s)", Platform, Grammar, Commit, BuildDate)
}
