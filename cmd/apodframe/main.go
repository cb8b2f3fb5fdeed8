// Command apodframe renders a single astronomy-picture-of-the-day frame to
// a PNG file. It is a reference host for the composer: a real display host
// supplies its own device configuration and drives Generate itself.
package main

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/ewoodall/apodframe/internal/apod"
	"github.com/ewoodall/apodframe/internal/composer"
	"github.com/ewoodall/apodframe/internal/config"
	"github.com/ewoodall/apodframe/internal/device"
	"github.com/ewoodall/apodframe/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("APODFRAME_CONFIG_PATH")
	if configPath == "" {
		configPath = "apodframe.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer := logging.New(cfg.Logging)
	if closer != nil {
		defer closer.Close() //nolint:errcheck
	}

	dev := &device.StaticConfig{Width: cfg.Device.Width, Height: cfg.Device.Height}
	client := apod.New(dev, logger)
	comp := composer.New(client, logger)

	img, err := comp.Generate(context.Background(), cfg.PluginSettings(), dev)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output.Path) //nolint:gosec // G304: path comes from the operator
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Info("frame written",
		slog.String("path", cfg.Output.Path),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))
	return nil
}
