// Package config manages application configuration from files and environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Built-in defaults, matching the filenames the city publishes.
const (
	DefaultRecent     = "bikevolume20212024.xlsx"
	DefaultHistorical = "bikevolumedata.xlsx"
	DefaultOutput     = "combined_bike_data.csv"
)

// Config holds the application configuration. Command-line flags override
// these values.
type Config struct {
	Files struct {
		Recent     string `mapstructure:"recent"`
		Historical string `mapstructure:"historical"`
		Output     string `mapstructure:"output"`
	} `mapstructure:"files"`
	Output struct {
		Color bool `mapstructure:"color"`
	} `mapstructure:"output"`
}

// Load reads the configuration from ~/.bikemerge/config.yaml and
// BIKEMERGE_* environment variables. A missing config file is not an
// error; the defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetDefault("files.recent", DefaultRecent)
	viper.SetDefault("files.historical", DefaultHistorical)
	viper.SetDefault("files.output", DefaultOutput)
	viper.SetDefault("output.color", true)

	viper.SetEnvPrefix("BIKEMERGE")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Dir returns the configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bikemerge"
	}
	return filepath.Join(home, ".bikemerge")
}
