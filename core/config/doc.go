// Package config loads settings for the bytestr command line tool.
//
// Package: config
// Title: Configuration Loading
// Description: Reads a TOML or YAML settings file, applies BYTESTR_*
//              environment overrides and validates the result. Files are
//              found by explicit path or by searching a short list of
//              default locations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: TOML/YAML settings, env overrides, discovery
//
// Example file (bytestr.toml):
//
//	[log]
//	level = "debug"
//	format = "logfmt"
//
//	[buffer]
//	initial_capacity = 16
//	checked = true
//
//	[output]
//	color = false
package config
