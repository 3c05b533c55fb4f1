package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"bounded": true,
		"width": 12,
		"height": 8,
		"cells": [[1, 2], [3, 4]],
		"frame_rate": 250000000
	}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !config.Bounded || config.Width != 12 || config.Height != 8 {
		t.Fatalf("unexpected grid settings: %+v", config)
	}
	if len(config.Cells) != 2 || config.Cells[1] != [2]int{3, 4} {
		t.Fatalf("cells = %v", config.Cells)
	}
	if config.FrameRate != 250*time.Millisecond {
		t.Fatalf("frame rate = %s", config.FrameRate)
	}
	if config.Deviation != DefaultConfig().Deviation || config.LogLevel != "info" {
		t.Fatalf("defaults were not kept: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file should fail")
	}
	if _, err := LoadConfig(writeConfig(t, `{"width": "wide"}`)); err == nil {
		t.Fatalf("malformed file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bounded with zero width", func(c *Config) { c.Bounded, c.Width = true, 0 }, true},
		{"unbounded ignores dimensions", func(c *Config) { c.Width, c.Height = 0, 0 }, false},
		{"negative random count", func(c *Config) { c.RandomCount = -1 }, true},
		{"random without window", func(c *Config) { c.RandomCount, c.Deviation = 3, 0 }, true},
		{"random window too wide", func(c *Config) { c.RandomCount, c.Deviation = 3, model.MaxDeviation + 1 }, true},
		{"widest random window", func(c *Config) { c.RandomCount, c.Deviation = 3, model.MaxDeviation }, false},
		{"bounded random ignores window", func(c *Config) { c.Bounded, c.RandomCount, c.Deviation = true, 3, 0 }, false},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, true},
		{"negative generations", func(c *Config) { c.MaxGenerations = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasSeed(t *testing.T) {
	config := DefaultConfig()
	if config.HasSeed() {
		t.Fatalf("default config should not carry a seed")
	}
	config.Pattern = "glider"
	if !config.HasSeed() {
		t.Fatalf("pattern should count as a seed")
	}
}
