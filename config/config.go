// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// RootSettingsFile is the default path to the user's settings file
	RootSettingsFile = settingsFile()
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// whether to log debug output to stderr
	Verbose bool `mapstructure:"verbose"`

	// the level for the stderr logger: debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`

	// number of decimal places in GC content output. -1 is the
	// shortest representation that round-trips
	GCPrecision int `mapstructure:"gc-precision"`

	// residues per line when writing FASTA. < 1 writes one line per entry
	FastaWidth int `mapstructure:"fasta-width"`
}

// New returns a new Config struct populated by Viper settings,
// either from the settings file and/or command line arguments.
func New() (*Config, error) {
	return load(viper.GetViper())
}

// load fills a Config from v. A settings file that doesn't exist is skipped.
func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("verbose", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("gc-precision", -1)
	v.SetDefault("fasta-width", 60)

	if settings := v.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			v.SetConfigFile(settings)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	return &c, nil
}

// settingsFile returns the path to ~/.rosalind/settings.yaml
func settingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rosalind", "settings.yaml")
}
