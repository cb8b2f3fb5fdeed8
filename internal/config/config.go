// Package config loads the reference harness configuration. The composer
// library takes no configuration of its own beyond the host's settings
// mapping and device abstraction.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ewoodall/apodframe/internal/device"
	"github.com/ewoodall/apodframe/internal/logging"
)

// Config holds the harness configuration.
type Config struct {
	Device   DeviceConfig   `yaml:"device"`
	Settings SettingsConfig `yaml:"settings"`
	Output   OutputConfig   `yaml:"output"`
	Logging  logging.Config `yaml:"logging"`
}

// DeviceConfig holds the target display resolution.
type DeviceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SettingsConfig mirrors the plugin settings a display host would store.
type SettingsConfig struct {
	Randomize   bool   `yaml:"randomize"`
	CustomDate  string `yaml:"custom_date"`
	AutoResize  bool   `yaml:"auto_resize"`
	AutoBgColor bool   `yaml:"auto_bg_color"`
}

// OutputConfig holds the rendered frame destination.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Default returns a Config with sensible defaults: an 800x480 panel,
// fit-to-display with sampled background, PNG in the working directory.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{Width: 800, Height: 480},
		Settings: SettingsConfig{
			AutoResize:  true,
			AutoBgColor: true,
		},
		Output: OutputConfig{Path: "apod.png"},
		Logging: logging.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the operator
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AF_DEVICE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Device.Width = n
		}
	}
	if v := os.Getenv("AF_DEVICE_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Device.Height = n
		}
	}
	if v := os.Getenv("AF_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("AF_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AF_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// PluginSettings converts the harness settings block into the settings
// mapping the composer receives from a host.
func (c *Config) PluginSettings() device.Settings {
	s := device.Settings{}
	if c.Settings.Randomize {
		s[device.KeyRandomize] = "true"
	}
	if c.Settings.CustomDate != "" {
		s[device.KeyCustomDate] = c.Settings.CustomDate
	}
	if c.Settings.AutoResize {
		s[device.KeyAutoResize] = "true"
	}
	if c.Settings.AutoBgColor {
		s[device.KeyAutoBgColor] = "true"
	}
	return s
}
