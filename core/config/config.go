// File: config.go
// Title: Settings Loading Implementation
// Description: Settings type, TOML/YAML parsing, environment overrides and
//              validation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.1.1: Environment overrides and validation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/bytestr/core/error"
	mdwerrors "github.com/msto63/bytestr/core/errors"
	mdwlog "github.com/msto63/bytestr/core/log"
)

const module = "config"

// DefaultEnvPrefix prefixes every environment override
const DefaultEnvPrefix = "BYTESTR"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
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

// Settings is the complete tool configuration
type Settings struct {
	Log    LogSettings    `toml:"log" yaml:"log"`
	Buffer BufferSettings `toml:"buffer" yaml:"buffer"`
	Output OutputSettings `toml:"output" yaml:"output"`

	// path the settings were read from, empty for defaults
	source string
}

// LogSettings configures the logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// BufferSettings configures how commands build and access buffers
type BufferSettings struct {
	// InitialCapacity is reserved before a command starts appending
	InitialCapacity int `toml:"initial_capacity" yaml:"initial_capacity"`

	// Checked selects the error-returning accessors instead of the
	// unchecked fast path
	Checked bool `toml:"checked" yaml:"checked"`
}

// OutputSettings configures terminal rendering
type OutputSettings struct {
	Color bool `toml:"color" yaml:"color"`
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string // empty means DefaultEnvPrefix; "-" disables overrides
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Log:    LogSettings{Level: "info", Format: "text"},
		Buffer: BufferSettings{InitialCapacity: 0, Checked: true},
		Output: OutputSettings{Color: true},
	}
}

// Load loads settings from a file with default options
func Load(filePath string) (*Settings, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads settings from a file. Values missing from the file
// keep their defaults.
func LoadWithOptions(filePath string, options LoadOptions) (*Settings, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerrors.InvalidInput(module, "Load", filePath, "non-empty path")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	settings, err := parse(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}
	settings.source = filePath

	if err := settings.ApplyEnv(options.EnvPrefix); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadFromString parses settings from content in the given format
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	settings, err := parse([]byte(content), format)
	if err != nil {
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
	default:
		return FormatTOML
	}
}

func parse(content []byte, format Format) (*Settings, error) {
	settings := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), settings); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, settings); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parse")
		}
	default:
		return nil, mdwerrors.InvalidInput(module, "parse", format.String(), "toml or yaml")
	}

	return settings, nil
}

// ApplyEnv overrides settings from PREFIX_LOG_LEVEL, PREFIX_LOG_FORMAT,
// PREFIX_BUFFER_INITIAL_CAPACITY, PREFIX_BUFFER_CHECKED and PREFIX_OUTPUT_COLOR.
func (s *Settings) ApplyEnv(prefix string) error {
	if prefix == "-" {
		return nil
	}
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	key := func(name string) string { return prefix + "_" + name }

	if v, ok := os.LookupEnv(key("LOG_LEVEL")); ok {
		s.Log.Level = v
	}
	if v, ok := os.LookupEnv(key("LOG_FORMAT")); ok {
		s.Log.Format = v
	}
	if v, ok := os.LookupEnv(key("BUFFER_INITIAL_CAPACITY")); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return mdwerrors.InvalidConfig(module, key("BUFFER_INITIAL_CAPACITY"), v, "not an integer")
		}
		s.Buffer.InitialCapacity = n
	}
	if v, ok := os.LookupEnv(key("BUFFER_CHECKED")); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return mdwerrors.InvalidConfig(module, key("BUFFER_CHECKED"), v, "not a boolean")
		}
		s.Buffer.Checked = b
	}
	if v, ok := os.LookupEnv(key("OUTPUT_COLOR")); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return mdwerrors.InvalidConfig(module, key("OUTPUT_COLOR"), v, "not a boolean")
		}
		s.Output.Color = b
	}
	return nil
}

// Validate checks every field and returns the first violation
func (s *Settings) Validate() error {
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		return mdwerrors.InvalidConfig(module, "log.level", s.Log.Level, "unknown level")
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		return mdwerrors.InvalidConfig(module, "log.format", s.Log.Format, "expected json, text or logfmt")
	}
	if s.Buffer.InitialCapacity < 0 {
		return mdwerrors.InvalidConfig(module, "buffer.initial_capacity", s.Buffer.InitialCapacity, "must not be negative")
	}
	return nil
}

// LoggerConfig translates the log section into a logger configuration.
// Validate must have passed.
func (s *Settings) LoggerConfig(name string) mdwlog.Config {
	level, _ := mdwlog.ParseLevel(s.Log.Level)
	format, _ := mdwlog.ParseFormat(s.Log.Format)
	return mdwlog.Config{Level: level, Format: format, Name: name}
}

// Source returns the file the settings came from, or "" for defaults
func (s *Settings) Source() string {
	return s.source
}

// String returns a one-line summary for debug logs
func (s *Settings) String() string {
	return fmt.Sprintf("log.level=%s log.format=%s buffer.initial_capacity=%d buffer.checked=%t output.color=%t",
		s.Log.Level, s.Log.Format, s.Buffer.InitialCapacity, s.Buffer.Checked, s.Output.Color)
}
