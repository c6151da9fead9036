// Package config provides YAML/TOML game configuration loading and
// difficulty management for the block breaker.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for impossible settings.
var ErrInvalidConfig = errors.New("config: invalid")

// Bottom edge policies.
const (
	BottomEdgeReflect  = "reflect"
	BottomEdgeGameOver = "game_over"
)

// BlockBreakerConfig contains all configuration for the block breaker.
type BlockBreakerConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks" toml:"bricks"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Launch     LaunchConfig     `yaml:"launch" toml:"launch"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayfieldConfig is the logical playfield size in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius   float64 `yaml:"radius" toml:"radius"`
	Speed    float64 `yaml:"speed" toml:"speed"`         // pixels per second
	StickGap float64 `yaml:"stick_gap" toml:"stick_gap"` // gap above the paddle while stuck
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	WidthRatio   float64 `yaml:"width_ratio" toml:"width_ratio"` // fraction of playfield width
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // top edge distance from the bottom
	KeyStep      float64 `yaml:"key_step" toml:"key_step"`           // target shift per arrow key press
}

// BricksConfig defines the brick grid. Tile width is derived from the
// playfield width and column count.
type BricksConfig struct {
	Cols       int     `yaml:"cols" toml:"cols"`
	Rows       int     `yaml:"rows" toml:"rows"`
	TileHeight float64 `yaml:"tile_height" toml:"tile_height"`
	OffsetX    float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y" toml:"offset_y"`
	Score      int     `yaml:"score" toml:"score"`
}

// PhysicsConfig holds collision and timing constants.
type PhysicsConfig struct {
	MaxBounceAngle float64 `yaml:"max_bounce_angle" toml:"max_bounce_angle"` // degrees
	Separation     float64 `yaml:"separation" toml:"separation"`
	MaxFrameDelta  float64 `yaml:"max_frame_delta" toml:"max_frame_delta"` // seconds
}

// LaunchConfig holds launch angles in degrees. Negative angles point up.
type LaunchConfig struct {
	KeyAngle        float64 `yaml:"key_angle" toml:"key_angle"`
	PointerMinAngle float64 `yaml:"pointer_min_angle" toml:"pointer_min_angle"`
	PointerMaxAngle float64 `yaml:"pointer_max_angle" toml:"pointer_max_angle"`
}

// GameplayConfig holds rule switches.
type GameplayConfig struct {
	BottomEdge string `yaml:"bottom_edge" toml:"bottom_edge"` // "reflect" or "game_over"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is allowed and means
// "use the config file as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate rejects settings the simulation cannot run with.
func (c BlockBreakerConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball speed must be positive", ErrInvalidConfig)
	case c.Ball.StickGap < 0:
		return fmt.Errorf("%w: ball stick_gap must not be negative", ErrInvalidConfig)
	case c.Paddle.WidthRatio <= 0 || c.Paddle.WidthRatio > 1:
		return fmt.Errorf("%w: paddle width_ratio must be in (0, 1]", ErrInvalidConfig)
	case c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle height must be positive", ErrInvalidConfig)
	case c.Paddle.BottomOffset <= 0 || c.Paddle.BottomOffset >= c.Playfield.Height:
		return fmt.Errorf("%w: paddle bottom_offset must be inside the playfield", ErrInvalidConfig)
	case c.Bricks.Cols <= 0 || c.Bricks.Rows <= 0:
		return fmt.Errorf("%w: brick grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Bricks.Cols, c.Bricks.Rows)
	case c.Bricks.TileHeight <= 0:
		return fmt.Errorf("%w: brick tile_height must be positive", ErrInvalidConfig)
	case c.Bricks.Score < 0:
		return fmt.Errorf("%w: brick score must not be negative", ErrInvalidConfig)
	case c.Physics.MaxBounceAngle <= 0 || c.Physics.MaxBounceAngle >= 90:
		return fmt.Errorf("%w: max_bounce_angle must be in (0, 90)", ErrInvalidConfig)
	case c.Physics.Separation < 0:
		return fmt.Errorf("%w: separation must not be negative", ErrInvalidConfig)
	case c.Physics.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max_frame_delta must be positive", ErrInvalidConfig)
	case c.Launch.PointerMinAngle > c.Launch.PointerMaxAngle:
		return fmt.Errorf("%w: pointer_min_angle exceeds pointer_max_angle", ErrInvalidConfig)
	}

	switch c.Gameplay.BottomEdge {
	case BottomEdgeReflect, BottomEdgeGameOver:
	default:
		return fmt.Errorf("%w: bottom_edge %q (want %s or %s)", ErrInvalidConfig, c.Gameplay.BottomEdge, BottomEdgeReflect, BottomEdgeGameOver)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		return fmt.Errorf("%w: progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}
