package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"vfsh/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultHistorySize is the number of input lines kept for history
	// navigation
	DefaultHistorySize = 500

	// DefaultVerbosity maps to the warn log level so the REPL surface
	// stays quiet unless asked
	DefaultVerbosity = 2

	// DefaultPrompt is the prompt template; {user} and {host} expand to
	// the session identity
	DefaultPrompt = "[{user}@{host}]$ "
)

// Verbosity bounds: 1 (errors only) through 5 (trace).
const (
	MinVerbosity = 1
	MaxVerbosity = 5
)

// verbosityLevels maps user-facing verbosity (1-5) onto log levels.
var verbosityLevels = [MaxVerbosity]util.LogLevel{
	util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel,
}

// LevelForVerbosity clamps a 1-5 verbosity value and returns its log level.
func LevelForVerbosity(v int) util.LogLevel {
	if v < MinVerbosity {
		v = MinVerbosity
	}
	if v > MaxVerbosity {
		v = MaxVerbosity
	}
	return verbosityLevels[v-1]
}

// Config contains runtime configuration values for a shell session.
type Config struct {
	VFSSource   string // Path to the VFS seed: an XML document or a directory to import. Empty means the built-in default tree
	Script      string // Path to a startup script executed before the first prompt
	Username    string // Session username; empty resolves to the current OS user
	Hostname    string // Session hostname; empty resolves to the OS hostname
	Prompt      string // Prompt template with {user} and {host} placeholders
	HistorySize int    // Number of input lines kept for history navigation (Default 500)
	LogLvl      util.LogLevel
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. Verbosity is the user-facing 1-5 scale.
type ConfigOverride struct {
	VFSSource   *string `yaml:"vfs,omitempty" json:"vfs,omitempty"`
	Script      *string `yaml:"script,omitempty" json:"script,omitempty"`
	Username    *string `yaml:"username,omitempty" json:"username,omitempty"`
	Hostname    *string `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Prompt      *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	HistorySize *int    `yaml:"history_size,omitempty" json:"history_size,omitempty"`
	Verbosity   *int    `yaml:"verbosity,omitempty" json:"verbosity,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Prompt:      DefaultPrompt,
		HistorySize: DefaultHistorySize,
		LogLvl:      LevelForVerbosity(DefaultVerbosity),
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.VFSSource != nil {
		c.VFSSource = *override.VFSSource
	}
	if override.Script != nil {
		c.Script = *override.Script
	}
	if override.Username != nil {
		c.Username = *override.Username
	}
	if override.Hostname != nil {
		c.Hostname = *override.Hostname
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.HistorySize != nil {
		c.HistorySize = *override.HistorySize
	}
	if override.Verbosity != nil {
		c.LogLvl = LevelForVerbosity(*override.Verbosity)
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
