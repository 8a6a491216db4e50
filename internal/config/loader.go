package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".git-contrib"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. GIT_CONTRIB_ORDER.
const envPrefix = "GIT_CONTRIB"

// Load reads configuration from file, env vars, and defaults.
//
// If configPath is non-empty it is used as the explicit config file path;
// otherwise the config file is searched for in the CWD and $HOME. A missing
// config file is not an error; defaults are used.
func Load(configPath string) (Config, error) {
	v := viper.New()

	v.SetDefault("order", "delta")
	v.SetDefault("width", 60)
	v.SetDefault("color", "auto")

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
