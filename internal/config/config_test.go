package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	require.NoError(t, err, "embedded defaults do not parse")
	assert.Equal(t, DefaultConfig(), cfg, "embedded defaults drifted from DefaultConfig()")
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "paddle:\n  width: 120\nlevel:\n  bonus_per_level: 75\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Paddle.Width)
	assert.Equal(t, 75, cfg.Level.BonusPerLevel)
	// Untouched sections keep their defaults
	assert.Equal(t, 5, cfg.Bricks.Rows)
	assert.Equal(t, 10, cfg.Bricks.Cols)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "missing custom config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field:\n  width: -1\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "field size")
}

func TestValidatePowerUps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative multi-ball count", func(c *Config) { c.PowerUps.MultiBallCount = -1 }, "multiball_count"},
		{"zero multi-ball speed", func(c *Config) { c.PowerUps.MultiBallSpeed = 0 }, "multiball_speed"},
		{"spread past horizontal", func(c *Config) { c.PowerUps.MultiBallSpread = 2 }, "multiball_spread"},
		{"zero big paddle", func(c *Config) { c.Paddle.BigWidth = 0 }, "big_width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}

	cfg := DefaultConfig()
	cfg.PowerUps.MultiBallCount = 0
	assert.NoError(t, cfg.Validate(), "zero extra balls is allowed")
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParsePreset(%q)", tc.in)
		} else {
			assert.NoError(t, err, "ParsePreset(%q)", tc.in)
		}
		assert.Equal(t, tc.want, got, "ParsePreset(%q)", tc.in)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.Zero(t, cfg.Ball.SpeedStep, "fixed preset should disable speed scaling")
	assert.Zero(t, cfg.Paddle.ShrinkStep, "fixed preset should disable paddle shrink")

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	assert.Equal(t, DefaultConfig(), cfg, "normal preset should keep file values")
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig())

	speeds := map[int]float64{0: 5, 1: 5, 2: 5.5, 5: 7}
	for level, want := range speeds {
		assert.Equal(t, want, d.LaunchSpeed(level), "LaunchSpeed(%d)", level)
	}

	assert.Equal(t, 95.0, d.ShrinkPaddle(100))
	assert.Equal(t, 70.0, d.ShrinkPaddle(72), "floor at 70% of the initial width")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BRICKBREAKER_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("BRICKBREAKER_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BRICKBREAKER_TEST_UNSET", "fallback"))
}
