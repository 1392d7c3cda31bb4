// Package config loads console settings from a YAML file in the user config
// directory, with PLAYROOM_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Theme names accepted in the config file.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Config holds every setting the console reads at startup.
type Config struct {
	BaseURL string `mapstructure:"base_url"`
	Theme   string `mapstructure:"theme"`
	LogFile string `mapstructure:"log_file"`
}

// Dir returns the directory holding the config and log files,
// typically ~/.config/playroom.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, "playroom"), nil
}

// Load reads settings from <config dir>/config.yaml and the environment.
// A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("base_url", "http://localhost:5187")
	v.SetDefault("theme", ThemeAuto)
	v.SetDefault("log_file", filepath.Join(dir, "playroom.log"))

	v.SetEnvPrefix("PLAYROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Theme != ThemeLight && c.Theme != ThemeDark && c.Theme != ThemeAuto {
		c.Theme = ThemeAuto
	}
	return &c, nil
}

// SaveTheme persists the chosen theme so the next launch starts with it.
// Other settings in the file survive untouched.
func SaveTheme(theme string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.Set("theme", theme)
	if err := v.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
