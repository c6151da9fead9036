package config

import (
	_ "embed"
)

//go:embed defaults/blockbreaker.yaml
var defaultBlockBreakerYAML []byte

// DefaultBlockBreakerConfig returns the hardcoded block breaker configuration.
// It matches defaults/blockbreaker.yaml and is used when the embed cannot be parsed.
func DefaultBlockBreakerConfig() BlockBreakerConfig {
	return BlockBreakerConfig{
		Playfield: PlayfieldConfig{
			Width:  640,
			Height: 480,
		},
		Ball: BallConfig{
			Radius:   8,
			Speed:    300,
			StickGap: 1,
		},
		Paddle: PaddleConfig{
			WidthRatio:   0.25,
			Height:       12,
			BottomOffset: 100,
			KeyStep:      32,
		},
		Bricks: BricksConfig{
			Cols:       10,
			Rows:       6,
			TileHeight: 24,
			OffsetX:    0,
			OffsetY:    60,
			Score:      50,
		},
		Physics: PhysicsConfig{
			MaxBounceAngle: 75,
			Separation:     0.1,
			MaxFrameDelta:  1.0 / 30,
		},
		Launch: LaunchConfig{
			KeyAngle:        -60,
			PointerMinAngle: -135,
			PointerMaxAngle: -45,
		},
		Gameplay: GameplayConfig{
			BottomEdge: BottomEdgeReflect,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlockBreakerYAML
}
