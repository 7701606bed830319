package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It mirrors
// defaults/brickbreaker.yaml and is used when the embedded file is unusable.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:         100,
			Height:        15,
			BottomOffset:  40,
			Speed:         10,
			BigWidth:      150,
			ShrinkStep:    5,
			MinWidthRatio: 0.7,
		},
		Ball: BallConfig{
			Radius:           8,
			StartSpeed:       5,
			SpeedStep:        0.5,
			BounceRandomness: 0.2,
			RestartOffset:    100,
		},
		Bricks: BricksConfig{
			Rows:    5,
			Cols:    10,
			Width:   70,
			Height:  25,
			Gap:     5,
			OffsetX: 35,
			OffsetY: 35,
			Points:  10,
			Colors:  []string{"red", "orange", "yellow", "green", "blue"},
		},
		Collision: CollisionConfig{
			PaddleCooldown: 5,
			BrickCooldown:  3,
			SideThreshold:  10,
		},
		PowerUps: PowerUpsConfig{
			DurationMs:      5000,
			ScoreBoost:      5,
			MultiBallCount:  2,
			MultiBallSpeed:  6,
			MultiBallSpread: 0.6,
			Trigger: TriggerConfig{
				Chance: 0.15,
				Weights: map[string]int{
					"big_paddle":  40,
					"score_boost": 30,
					"multi_ball":  30,
				},
			},
		},
		Level: LevelConfig{
			RefillDelayMs:  100,
			MessageMs:      3000,
			BonusPerLevel:  50,
			StartLevel:     1,
			ParticleBursts: 30,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}
