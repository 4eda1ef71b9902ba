// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches default locations for a settings file and falls
//              back to built-in defaults when none exists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial discovery implementation

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/bytestr/core/error"
)

// DiscoveryOptions defines where to look for a settings file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string
	Required   bool // Fail instead of returning defaults when nothing is found
}

// DefaultDiscoveryOptions searches the working directory and the user
// config directory for bytestr.{toml,yaml,yml}
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "bytestr"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"bytestr"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", strings.Join(ListPossibleConfigFiles(options), ", "))
}

// Discover loads the first settings file found, or defaults with
// environment overrides applied when none exists and Required is false.
func Discover(options DiscoveryOptions) (*Settings, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		settings := Default()
		if err := settings.ApplyEnv(options.EnvPrefix); err != nil {
			return nil, err
		}
		if err := settings.Validate(); err != nil {
			return nil, err
		}
		return settings, nil
	}

	return LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
}
