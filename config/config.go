// Package config loads launch settings from YAML. Fields absent from the
// file keep their defaults, so a partial config is valid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig holds the windowing settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig holds the camera and input settings.
type CameraConfig struct {
	// FOV is the vertical field of view in degrees, in (0, 180).
	FOV float32 `yaml:"fov"`
	// RotationSpeed is the rotation sensitivity in [0, 1].
	RotationSpeed float32 `yaml:"rotation_speed"`
	// MovementSpeed is the movement sensitivity in [0, 1].
	MovementSpeed float32 `yaml:"movement_speed"`
	// BaseSpeed is the translation rate in world units per second.
	BaseSpeed float32 `yaml:"base_speed"`
	// MouseSensitivity converts cursor pixels to radians.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	// InvertY inverts the vertical mouse axis.
	InvertY bool `yaml:"invert_y"`
}

// Config is the root launch configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Yune",
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			FOV:              60.0,
			RotationSpeed:    0.25,
			MovementSpeed:    0.3,
			BaseSpeed:        10.0,
			MouseSensitivity: 0.005,
		},
	}
}

// Load reads a YAML config file. The defaults are applied first, so fields
// missing from the file keep their default values.
//
// Parameters:
//   - filename: path to the YAML file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: an error if the file cannot be read or parsed
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// MustLoad loads a config file or panics.
//
// Parameters:
//   - filename: path to the YAML file
//
// Returns:
//   - *Config: the loaded configuration
func MustLoad(filename string) *Config {
	cfg, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return cfg
}
