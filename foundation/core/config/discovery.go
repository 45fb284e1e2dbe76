// File: discovery.go
// Title: Settings File Discovery
// Description: Searches the usual locations for a raql settings file and
//              falls back to the defaults when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-13 v0.2.0: RAQL search paths, optional discovery

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines where Discover looks for a settings file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
}

// DefaultDiscoveryOptions returns the standard search locations:
// the working directory, ./config and the user config directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "raql"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"raql"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile returns the first existing settings file, or ""
func FindConfigFile(options DiscoveryOptions) string {
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(path, filename+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate
				}
			}
		}
	}
	return ""
}

// Discover loads the first settings file found. Without one, the defaults
// with environment overrides are returned.
func Discover(options DiscoveryOptions) (*Settings, error) {
	if path := FindConfigFile(options); path != "" {
		return Load(path)
	}

	settings := Default()
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
