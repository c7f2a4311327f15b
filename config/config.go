// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// Config holds all configuration values.
type Config struct {
	Gate    GateConfig    `mapstructure:"gate"`
	Display DisplayConfig `mapstructure:"display"`
}

// GateConfig adjusts the sensitive-filename denylist. The runtime
// contract is unchanged by configuration: the set is still fixed at
// process start and matched by exact name.
type GateConfig struct {
	// AdditionalNames extends the built-in denylist with exact filenames.
	AdditionalNames []string `mapstructure:"additional_names"`
	// IgnoredNames disables built-in denylist entries.
	IgnoredNames []string `mapstructure:"ignored_names"`
	// DenyMessage overrides the denial message; %s receives the filename.
	DenyMessage string `mapstructure:"deny_message"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors ColorMode `mapstructure:"colors"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile string
	ConfigDir  string
	BackupsDir string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()
		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix("READFENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()

	return &Paths{
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		ConfigDir:  configDir,
		BackupsDir: filepath.Join(configDir, "backups"),
	}
}
