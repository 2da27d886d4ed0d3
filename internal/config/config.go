package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/util"
)

// defaultBuyIn staked when a start request doesn't specify one
const defaultBuyIn = 100

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	DefaultBuyIn   int      `yaml:"defaultBuyIn" envconfig:"default_buy_in"`
	AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; env vars and defaults still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("UTH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		err = yaml.NewDecoder(file).Decode(&config)
		_ = file.Close()
		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("uth", &config); err != nil {
		return err
	}

	if config.DefaultBuyIn <= 0 {
		config.DefaultBuyIn = defaultBuyIn
	}

	config.loaded = true
	return nil
}
