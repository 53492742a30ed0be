package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/slatekore/slatekore/internal/logger"
	"github.com/slatekore/slatekore/internal/prereq"
)

// Following the dot-config specification: https://dot-config.github.io/
// User config: ~/.config/slatekore/config.yaml (or $XDG_CONFIG_HOME/slatekore/)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "slatekore"
	// ConfigFile is the filename of the user settings
	ConfigFile = "config.yaml"
)

// Paths holds the locations slatekore reads from
type Paths struct {
	// UserConfigDir is ~/.config/slatekore (or $XDG_CONFIG_HOME/slatekore)
	UserConfigDir string
	// ConfigFile is ~/.config/slatekore/config.yaml
	ConfigFile string
}

// GetPaths returns the standard paths for slatekore
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	userConfigDir := filepath.Join(configHome, ConfigDir)

	return &Paths{
		UserConfigDir: userConfigDir,
		ConfigFile:    filepath.Join(userConfigDir, ConfigFile),
	}, nil
}

// Config is the user configuration.
type Config struct {
	Agent   AgentConfig `yaml:"agent"`
	Plugins []string    `yaml:"plugins"`
	Log     LogConfig   `yaml:"log"`
}

// AgentConfig describes the external agent CLI probed by `slatekore check`.
type AgentConfig struct {
	Binary      string        `yaml:"binary"`
	VersionFlag string        `yaml:"version_flag"`
	Timeout     time.Duration `yaml:"timeout"`
	InstallURL  string        `yaml:"install_url"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			Binary:      prereq.DefaultBinary,
			VersionFlag: prereq.DefaultVersionFlag,
			Timeout:     prereq.DefaultTimeout,
			InstallURL:  prereq.DefaultInstallURL,
		},
		Plugins: append([]string(nil), prereq.DefaultPlugins...),
		Log: LogConfig{
			Level:  "warn",
			Format: logger.FormatText,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Plugins, validation.Each(validation.Required)),
	)
}

// Validate validates the agent configuration.
func (c *AgentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Binary, validation.Required),
		validation.Field(&c.VersionFlag, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond), validation.Max(time.Minute)),
		validation.Field(&c.InstallURL, validation.Required),
	)
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In(logger.FormatText, logger.FormatJSON)),
	)
}

// Load reads the YAML file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Checker builds a prerequisite checker from the agent settings.
func (c *Config) Checker() *prereq.Checker {
	ch := prereq.NewChecker()
	ch.Binary = c.Agent.Binary
	ch.VersionFlag = c.Agent.VersionFlag
	ch.Timeout = c.Agent.Timeout
	ch.InstallURL = c.Agent.InstallURL
	ch.Plugins = c.PluginNames()
	return ch
}

// PluginNames returns the configured Obsidian plugins, or the defaults when
// the list is empty.
func (c *Config) PluginNames() []string {
	if len(c.Plugins) == 0 {
		return prereq.DefaultPlugins
	}
	return c.Plugins
}

// Logger returns the logger settings. verbose forces debug level.
func (c *Config) Logger(verbose bool) (logger.Config, error) {
	out := logger.DefaultConfig()
	out.Format = c.Log.Format
	out.AddSource = c.Log.AddSource

	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return out, err
	}
	out.Level = level
	if verbose {
		out.Level = slog.LevelDebug
	}
	return out, nil
}
