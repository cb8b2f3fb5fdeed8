package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNewStdout(t *testing.T) {
	logger, closer := New(Config{Level: "debug", Format: "text"})
	if logger == nil {
		t.Fatal("New returned nil logger")
	}
	if closer != nil {
		t.Error("closer should be nil without a file path")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not enabled")
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apodframe.log")
	logger, closer := New(Config{Level: "info", Format: "json", FilePath: path})
	if closer == nil {
		t.Fatal("closer is nil with a file path configured")
	}

	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("closing log writer: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file empty after write")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
