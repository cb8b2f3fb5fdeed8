package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ewoodall/apodframe/internal/device"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Width != 800 || cfg.Device.Height != 480 {
		t.Errorf("default resolution = %dx%d", cfg.Device.Width, cfg.Device.Height)
	}
	if !cfg.Settings.AutoResize {
		t.Error("default auto_resize = false")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apodframe.yaml")
	data := `
device:
  width: 600
  height: 448
settings:
  custom_date: "2021-06-15"
  auto_resize: true
output:
  path: /tmp/frame.png
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Width != 600 || cfg.Device.Height != 448 {
		t.Errorf("resolution = %dx%d", cfg.Device.Width, cfg.Device.Height)
	}
	if cfg.Settings.CustomDate != "2021-06-15" {
		t.Errorf("custom_date = %q", cfg.Settings.CustomDate)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AF_DEVICE_WIDTH", "1024")
	t.Setenv("AF_OUTPUT_PATH", "/tmp/override.png")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Width != 1024 {
		t.Errorf("width = %d, want env override 1024", cfg.Device.Width)
	}
	if cfg.Output.Path != "/tmp/override.png" {
		t.Errorf("output path = %q", cfg.Output.Path)
	}
}

func TestPluginSettings(t *testing.T) {
	cfg := &Config{
		Settings: SettingsConfig{
			Randomize:  true,
			CustomDate: "2021-06-15",
		},
	}
	s := cfg.PluginSettings()

	if s[device.KeyRandomize] != "true" {
		t.Errorf("randomize = %q", s[device.KeyRandomize])
	}
	if s[device.KeyCustomDate] != "2021-06-15" {
		t.Errorf("custom date = %q", s[device.KeyCustomDate])
	}
	if _, present := s[device.KeyAutoResize]; present {
		t.Error("auto resize key present when disabled")
	}
}
