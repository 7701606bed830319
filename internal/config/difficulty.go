package config

import "math"

// DifficultyManager derives level-indexed parameters: the launch speed
// and the paddle base width after each cleared level.
type DifficultyManager struct {
	ball   BallConfig
	paddle PaddleConfig
}

// NewDifficultyManager creates a difficulty manager for cfg.
func NewDifficultyManager(cfg Config) *DifficultyManager {
	return &DifficultyManager{
		ball:   cfg.Ball,
		paddle: cfg.Paddle,
	}
}

// LaunchSpeed returns the per-axis ball speed for a level:
// start_speed + (level-1) * speed_step.
func (d *DifficultyManager) LaunchSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return d.ball.StartSpeed + float64(level-1)*d.ball.SpeedStep
}

// MinPaddleWidth is the floor of the per-level shrink.
func (d *DifficultyManager) MinPaddleWidth() float64 {
	return d.paddle.Width * d.paddle.MinWidthRatio
}

// ShrinkPaddle returns the base width after one more cleared level.
func (d *DifficultyManager) ShrinkPaddle(current float64) float64 {
	return math.Max(d.MinPaddleWidth(), current-d.paddle.ShrinkStep)
}
