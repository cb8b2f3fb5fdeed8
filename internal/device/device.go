// Package device is the seam between the composer and its display host.
// The host owns settings storage, credentials, and resolution; this
// package only names the two calls the composer is allowed to make plus
// the settings mapping it receives.
package device

import "os"

// Recognized settings keys, as the host's settings UI writes them.
const (
	KeyRandomize   = "randomizeApod"
	KeyCustomDate  = "customDate"
	KeyAutoResize  = "autoResize"
	KeyAutoBgColor = "autoBgColor"
)

// Settings is the host-provided plugin settings mapping. Boolean settings
// are the string "true" when enabled and absent otherwise.
type Settings map[string]string

func (s Settings) flag(key string) bool { return s[key] == "true" }

// RandomizeAPOD reports whether a random historical date was requested.
func (s Settings) RandomizeAPOD() bool { return s.flag(KeyRandomize) }

// CustomDate returns the explicit date setting, or "" when unset.
func (s Settings) CustomDate() string { return s[KeyCustomDate] }

// AutoResize reports whether the image should be fitted to the display.
func (s Settings) AutoResize() bool { return s.flag(KeyAutoResize) }

// AutoBgColor reports whether the canvas background should be sampled
// from the image border instead of fixed black.
func (s Settings) AutoBgColor() bool { return s.flag(KeyAutoBgColor) }

// Config is the slice of the host's device configuration this component
// sees: secret resolution and the display resolution.
type Config interface {
	// LoadEnvKey returns the named secret, or "" when not configured.
	LoadEnvKey(name string) string
	// Resolution returns the target display size in pixels.
	Resolution() (width, height int)
}

// StaticConfig is a Config backed by a fixed resolution and the process
// environment. The reference harness and tests use it; a real display
// host supplies its own implementation.
type StaticConfig struct {
	Width  int
	Height int
	// Env overrides process environment lookup when non-nil.
	Env map[string]string
}

func (c *StaticConfig) LoadEnvKey(name string) string {
	if c.Env != nil {
		return c.Env[name]
	}
	return os.Getenv(name)
}

func (c *StaticConfig) Resolution() (int, int) { return c.Width, c.Height }
