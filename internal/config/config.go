// Package config loads settings with the precedence defaults < config
// file < environment. Command-line flags override on top of the loaded
// values in the commands package.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// File is the path of the tracking log.
	File string `koanf:"file"`
	// MidnightOffset is the HH:MM[:SS] time at which the current day
	// is considered to have ended.
	MidnightOffset string `koanf:"midnight_offset"`
	// Timezone is an IANA zone name, or "Local".
	Timezone string `koanf:"timezone"`
	// Editor overrides $EDITOR for the edit command.
	Editor string `koanf:"editor"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(confDir, "temps", "config.yaml")
}

// Load layers the config file at path and TEMPS_* environment
// variables over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(Config{
		File:           "~/temps.tsv",
		MidnightOffset: "00:00",
		Timezone:       "Local",
	}, "koanf"), nil)
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if os.IsNotExist(err) {
				log.Debugf("config file not found at %s, using defaults and environment variables", path)
			} else {
				return Config{}, err
			}
		} else {
			log.Debugf("loaded configuration from file: %s", path)
		}
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "TEMPS_",
		TransformFunc: func(k, v string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(k, "TEMPS_")), v
		},
	}), nil)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
