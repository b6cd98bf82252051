// Package config loads the cubecipher YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubecipher/internal/logging"
)

// Config is the full configuration file.
type Config struct {
	DBPath   string         `yaml:"db_path"`
	Log      logging.Config `yaml:"log"`
	Scramble ScrambleConfig `yaml:"scramble"`
	Solver   SolverConfig   `yaml:"solver"`
	Server   ServerConfig   `yaml:"server"`
	Render   RenderConfig   `yaml:"render"`
}

// ScrambleConfig bounds the length of random scrambles.
type ScrambleConfig struct {
	MinMoves int `yaml:"min_moves" validate:"min=1"`
	MaxMoves int `yaml:"max_moves" validate:"gtefield=MinMoves,max=1000"`
}

// SolverConfig tunes the solver.
type SolverConfig struct {
	// MaxIterations is the per-phase budget. Zero keeps the solver default.
	MaxIterations int `yaml:"max_iterations" validate:"min=0"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// RenderConfig maps color symbols to terminal colors, e.g. "W": "#ffffff".
type RenderConfig struct {
	Palette map[string]string `yaml:"palette" validate:"dive,keys,required,endkeys,required"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log: logging.Config{
			Level:  "info",
			Format: "console",
		},
		Scramble: ScrambleConfig{
			MinMoves: 20,
			MaxMoves: 30,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns ~/.cubecipher/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubecipher", "config.yaml"), nil
}

// Load reads the file at path over the defaults and validates the result.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the configuration against its field constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
