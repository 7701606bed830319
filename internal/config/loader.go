package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "brickbreaker.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.brickbreaker/configs/brickbreaker.yaml ->
// ./configs/brickbreaker.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so partial files are allowed.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}

// ApplyPreset adjusts launch speed, level scaling, paddle size and the
// special event chance for a difficulty preset. Normal keeps the file values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Ball.StartSpeed = 4
		cfg.Ball.SpeedStep = 0.35
		cfg.Paddle.Width = 120
		cfg.PowerUps.Trigger.Chance = 0.2
	case DifficultyHard:
		cfg.Ball.StartSpeed = 6
		cfg.Ball.SpeedStep = 0.75
		cfg.Paddle.Width = 85
		cfg.PowerUps.Trigger.Chance = 0.1
	case DifficultyFixed:
		cfg.Ball.SpeedStep = 0
		cfg.Paddle.ShrinkStep = 0
	}
}

// GetEnv returns the value of an environment variable or fallback when unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
