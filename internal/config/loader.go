package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadBlockBreaker loads the block breaker configuration.
// Search order: customPath -> ~/.blockbreaker/configs/blockbreaker.{yaml,toml}
// -> ./configs/blockbreaker.yaml -> embedded default.
// Files only need to set the keys they change; the rest comes from the defaults.
func LoadBlockBreaker(customPath string) (BlockBreakerConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("blockbreaker.yaml"),
		userConfigPath("blockbreaker.toml"),
		filepath.Join("configs", "blockbreaker.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := decode(path, data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		return candidate, nil
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML over the hardcoded defaults.
func embeddedDefault() BlockBreakerConfig {
	cfg := DefaultBlockBreakerConfig()
	if err := yaml.Unmarshal(defaultBlockBreakerYAML, &cfg); err != nil {
		return DefaultBlockBreakerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// decode picks the format from the file extension. YAML is the default.
func decode(path string, data []byte, cfg *BlockBreakerConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockbreaker", "configs", filename)
}

// ApplyBlockBreakerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyBlockBreakerPreset(cfg *BlockBreakerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.WidthRatio = 0.3
		cfg.Ball.Speed = 250
	case DifficultyHard:
		cfg.Paddle.WidthRatio = 0.2
		cfg.Ball.Speed = 400
	}
}
