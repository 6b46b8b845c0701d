package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"showdown/internal/util"
)

// Config provides configuration for the dealer
type Config struct {
	loaded  bool
	Seed    int64 `yaml:"seed" envconfig:"seed"`
	Players int   `yaml:"players" envconfig:"players"`
	Log     struct {
		Level string `yaml:"level" envconfig:"level"`
	}
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
// A missing config file is not an error; environment variables still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("DEALER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("dealer", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
