// Package config provides YAML-based game configuration loading and
// level-indexed difficulty management for brickbreaker.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config contains all tunables of the brick-breaker simulation.
// Distances are logical field units, durations are milliseconds.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Collision  CollisionConfig  `yaml:"collision"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Level      LevelConfig      `yaml:"level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the logical playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"` // distance from the field bottom to the paddle top
	Speed         float64 `yaml:"speed"`         // units per tick while a move key is held
	BigWidth      float64 `yaml:"big_width"`
	ShrinkStep    float64 `yaml:"shrink_step"`     // base width lost per cleared level
	MinWidthRatio float64 `yaml:"min_width_ratio"` // floor of the shrink, relative to Width
}

// BallConfig defines the ball and its launch speed.
type BallConfig struct {
	Radius           float64 `yaml:"radius"`
	StartSpeed       float64 `yaml:"start_speed"` // per-axis velocity on level 1
	SpeedStep        float64 `yaml:"speed_step"`  // per-axis velocity added per level
	BounceRandomness float64 `yaml:"bounce_randomness"`
	RestartOffset    float64 `yaml:"restart_offset"` // launch height above the field bottom after a level
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows    int      `yaml:"rows"`
	Cols    int      `yaml:"cols"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Gap     float64  `yaml:"gap"`
	OffsetX float64  `yaml:"offset_x"`
	OffsetY float64  `yaml:"offset_y"`
	Points  int      `yaml:"points"`
	Colors  []string `yaml:"colors"` // one per row, cycled
}

// CollisionConfig defines collision cooldowns and side classification.
type CollisionConfig struct {
	PaddleCooldown int     `yaml:"paddle_cooldown"` // frames
	BrickCooldown  int     `yaml:"brick_cooldown"`  // frames
	SideThreshold  float64 `yaml:"side_threshold"`
}

// PowerUpsConfig defines special event effects and the default trigger.
type PowerUpsConfig struct {
	DurationMs      int           `yaml:"duration_ms"`
	ScoreBoost      int           `yaml:"score_boost"` // points per frame
	MultiBallCount  int           `yaml:"multiball_count"`
	MultiBallSpeed  float64       `yaml:"multiball_speed"`
	MultiBallSpread float64       `yaml:"multiball_spread"` // radians between launch angles
	Trigger         TriggerConfig `yaml:"trigger"`
}

// TriggerConfig drives the built-in random special event trigger.
type TriggerConfig struct {
	Chance  float64        `yaml:"chance"` // 0..1 per destroyed brick
	Weights map[string]int `yaml:"weights"`
}

// LevelConfig defines the level transition.
type LevelConfig struct {
	RefillDelayMs  int `yaml:"refill_delay_ms"`
	MessageMs      int `yaml:"message_ms"`
	BonusPerLevel  int `yaml:"bonus_per_level"`
	StartLevel     int `yaml:"start_level"`
	ParticleBursts int `yaml:"particle_bursts"` // celebration particles on clear
}

// DifficultyConfig selects how later levels scale.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports every setting that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Paddle.MinWidthRatio <= 0 || c.Paddle.MinWidthRatio > 1 {
		errs = append(errs, errors.New("paddle.min_width_ratio must be in (0, 1]"))
	}
	if c.Ball.Radius <= 0 || c.Ball.StartSpeed <= 0 {
		errs = append(errs, errors.New("ball radius and start_speed must be positive"))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, errors.New("brick grid must have rows and cols"))
	}
	if c.PowerUps.DurationMs <= 0 {
		errs = append(errs, errors.New("powerups.duration_ms must be positive"))
	}
	if c.Paddle.BigWidth <= 0 {
		errs = append(errs, errors.New("paddle.big_width must be positive"))
	}
	if c.PowerUps.MultiBallCount < 0 {
		errs = append(errs, errors.New("powerups.multiball_count must not be negative"))
	}
	if c.PowerUps.MultiBallSpeed <= 0 {
		errs = append(errs, errors.New("powerups.multiball_speed must be positive"))
	}
	if c.PowerUps.MultiBallSpread < 0 || c.PowerUps.MultiBallSpread >= math.Pi/2 {
		errs = append(errs, errors.New("powerups.multiball_spread must be in [0, pi/2)"))
	}
	if c.PowerUps.Trigger.Chance < 0 || c.PowerUps.Trigger.Chance > 1 {
		errs = append(errs, errors.New("powerups.trigger.chance must be in [0, 1]"))
	}
	if c.Level.RefillDelayMs <= 0 {
		errs = append(errs, errors.New("level.refill_delay_ms must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
