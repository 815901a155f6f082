// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/viper"
)

var (
	// RootDir is the directory with the user's settings
	RootDir = filepath.Join(homeDir(), ".primername")

	// RootSettingsFile is the default settings file
	RootSettingsFile = filepath.Join(RootDir, "settings.yaml")

	// EnvPrefix is the prefix of environment variables that override settings,
	// ex: PRIMERNAME_REFERENCE=/data/primers.txt
	EnvPrefix = "PRIMERNAME"
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml, the environment and
// those available from the command line
type Config struct {
	// Reference is the path to the primer reference file
	Reference string `mapstructure:"reference"`

	// Format is the output format: table, json or yaml
	Format string `mapstructure:"format"`

	// Verbose turns on debug logging
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default settings with viper
func SetDefaults(v *viper.Viper) {
	v.SetDefault("reference", "primers.txt")
	v.SetDefault("format", "table")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config struct populated by Viper settings
// (the settings file, environment and command line arguments)
func New(v *viper.Viper) (*Config, error) {
	settings := v.GetString("settings")
	if settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			// the default settings file is optional, an explicit one is not
			if !(settings == RootSettingsFile && errors.Is(err, os.ErrNotExist)) {
				return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
			}
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if c.Reference == "" {
		return fmt.Errorf("no reference file set, pass --reference or set %s_REFERENCE", EnvPrefix)
	}

	_, err := primer.ParseFormat(c.Format)
	return err
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
