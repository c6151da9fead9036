package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultBlockBreakerConfig(); got.Playfield != want.Playfield ||
		got.Ball != want.Ball || got.Paddle != want.Paddle || got.Bricks != want.Bricks ||
		got.Launch != want.Launch || got.Gameplay != want.Gameplay || got.Difficulty != want.Difficulty {
		t.Errorf("embedded default = %+v, expected %+v", got, want)
	}
	if err := DefaultBlockBreakerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadBlockBreakerNoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBlockBreaker("")
	if err != nil {
		t.Fatalf("LoadBlockBreaker() error = %v", err)
	}
	if cfg.Bricks.Cols != 10 || cfg.Bricks.Rows != 6 {
		t.Errorf("grid = %dx%d, expected 10x6", cfg.Bricks.Cols, cfg.Bricks.Rows)
	}
	if cfg.Ball.Speed != 300 {
		t.Errorf("ball speed = %v, expected 300", cfg.Ball.Speed)
	}
}

func TestLoadBlockBreakerYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "bricks:\n  cols: 4\n  rows: 2\ngameplay:\n  bottom_edge: game_over\n")

	cfg, err := LoadBlockBreaker(path)
	if err != nil {
		t.Fatalf("LoadBlockBreaker() error = %v", err)
	}
	if cfg.Bricks.Cols != 4 || cfg.Bricks.Rows != 2 {
		t.Errorf("grid = %dx%d, expected 4x2", cfg.Bricks.Cols, cfg.Bricks.Rows)
	}
	if cfg.Bricks.Score != 50 {
		t.Errorf("unset brick score = %d, expected default 50", cfg.Bricks.Score)
	}
	if cfg.Gameplay.BottomEdge != BottomEdgeGameOver {
		t.Errorf("bottom_edge = %q, expected %q", cfg.Gameplay.BottomEdge, BottomEdgeGameOver)
	}
}

func TestLoadBlockBreakerTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[ball]\nspeed = 420.0\n\n[difficulty]\nenabled = true\n")

	cfg, err := LoadBlockBreaker(path)
	if err != nil {
		t.Fatalf("LoadBlockBreaker() error = %v", err)
	}
	if cfg.Ball.Speed != 420 {
		t.Errorf("ball speed = %v, expected 420", cfg.Ball.Speed)
	}
	if cfg.Ball.Radius != 8 {
		t.Errorf("unset radius = %v, expected default 8", cfg.Ball.Radius)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("difficulty should be enabled from TOML")
	}
}

func TestLoadBlockBreakerUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, filepath.Join(".blockbreaker", "configs", "blockbreaker.toml"), "[bricks]\ncols = 3\n")

	cfg, err := LoadBlockBreaker("")
	if err != nil {
		t.Fatalf("LoadBlockBreaker() error = %v", err)
	}
	if cfg.Bricks.Cols != 3 {
		t.Errorf("cols = %d, expected 3 from user config", cfg.Bricks.Cols)
	}
}

func TestLoadBlockBreakerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "bricks: [unclosed"), false},
		{"zero columns", writeFile(t, dir, "zero.yaml", "bricks:\n  cols: 0\n"), true},
		{"unknown bottom edge", writeFile(t, dir, "edge.yaml", "gameplay:\n  bottom_edge: lives\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBlockBreaker(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockBreakerConfig)
	}{
		{"negative width", func(c *BlockBreakerConfig) { c.Playfield.Width = -1 }},
		{"zero radius", func(c *BlockBreakerConfig) { c.Ball.Radius = 0 }},
		{"paddle too wide", func(c *BlockBreakerConfig) { c.Paddle.WidthRatio = 1.5 }},
		{"paddle below field", func(c *BlockBreakerConfig) { c.Paddle.BottomOffset = 1000 }},
		{"flat bounce", func(c *BlockBreakerConfig) { c.Physics.MaxBounceAngle = 90 }},
		{"zero frame delta", func(c *BlockBreakerConfig) { c.Physics.MaxFrameDelta = 0 }},
		{"inverted pointer angles", func(c *BlockBreakerConfig) { c.Launch.PointerMinAngle = 0 }},
		{"bad progression", func(c *BlockBreakerConfig) { c.Difficulty.Progression.Type = "level" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockBreakerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyBlockBreakerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		speed       float64
		paddleRatio float64
	}{
		{"", false, 0.0, 300, 0.25},
		{DifficultyEasy, true, 0.0, 250, 0.3},
		{DifficultyNormal, true, 0.3, 300, 0.25},
		{DifficultyHard, true, 0.7, 400, 0.2},
		{DifficultyFixed, false, 0.0, 300, 0.25},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlockBreakerConfig()
			ApplyBlockBreakerPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Ball.Speed != tc.speed {
				t.Errorf("Ball.Speed = %v, expected %v", cfg.Ball.Speed, tc.speed)
			}
			if cfg.Paddle.WidthRatio != tc.paddleRatio {
				t.Errorf("Paddle.WidthRatio = %v, expected %v", cfg.Paddle.WidthRatio, tc.paddleRatio)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}
