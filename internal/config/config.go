package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	App AppConfig
	UI  UIConfig
}

// AppConfig holds startup behavior.
type AppConfig struct {
	InitialName string `mapstructure:"initial_name"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	LabelPrefix     string `mapstructure:"label_prefix"`
	RequiredMessage string `mapstructure:"required_message"`
	AccentColor     string `mapstructure:"accent_color"`
	AltScreen       bool   `mapstructure:"alt_screen"`
}

// Load reads configuration from file and env. Env var overrides use prefix NAMEDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("app.initial_name", "")
	v.SetDefault("ui.label_prefix", "Your Data: ")
	v.SetDefault("ui.required_message", "This is a required field")
	v.SetDefault("ui.accent_color", "#89b4fa")
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NAMEDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "namedeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NAMEDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Driven by the in-app settings action; only presentation preferences live here.
func Save(cfg Config) error {
	path := os.Getenv("NAMEDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "namedeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("app.initial_name", cfg.App.InitialName)
	v.Set("ui.label_prefix", cfg.UI.LabelPrefix)
	v.Set("ui.required_message", cfg.UI.RequiredMessage)
	v.Set("ui.accent_color", cfg.UI.AccentColor)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
