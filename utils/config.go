package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the simulation
type Config struct {
	Bounded        bool          `json:"bounded"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Pattern        string        `json:"pattern"`
	PatternOffset  [2]int        `json:"pattern_offset"`
	Cells          [][2]int      `json:"cells"`
	RandomCount    int           `json:"random_count"`
	Deviation      int           `json:"deviation"`
	RandomSeed     int64         `json:"random_seed"` // 0 seeds from the clock
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"` // 0 runs until interrupted
	ClearScreen    bool          `json:"clear_screen"`
	LogLevel       string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Bounded:   false,
		Width:     20,
		Height:    20,
		Deviation: 5,
		FrameRate: time.Second,
		LogLevel:  "info",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// HasSeed reports whether any initial cells are configured
func (c Config) HasSeed() bool {
	return c.Pattern != "" || len(c.Cells) > 0 || c.RandomCount > 0
}

// Validate checks the values that cannot be caught by the engine itself
func (c Config) Validate() error {
	if c.Bounded && (c.Width <= 0 || c.Height <= 0) {
		return errors.Errorf("bounded grid needs a positive width and height, got %dx%d", c.Width, c.Height)
	}
	if c.RandomCount < 0 {
		return errors.Errorf("random_count must not be negative, got %d", c.RandomCount)
	}
	if !c.Bounded && c.RandomCount > 0 && (c.Deviation <= 0 || c.Deviation > model.MaxDeviation) {
		return errors.Errorf("deviation must be in [1, %d], got %d", model.MaxDeviation, c.Deviation)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
