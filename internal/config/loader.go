package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadRaycast loads console FPS configuration.
// Search order: customPath -> ~/.arcade/configs/raycast.yaml -> ./configs/raycast.yaml -> embedded default
func LoadRaycast(customPath string) (RaycastConfig, Source, error) {
	return load(customPath, "raycast.yaml", defaultRaycastYAML, DefaultRaycastConfig)
}

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, Source, error) {
	return load(customPath, "flappy.yaml", defaultFlappyYAML, DefaultFlappyConfig)
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, Source, error) {
	return load(customPath, "snake.yaml", defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadCube loads wireframe cube configuration.
// Search order: customPath -> ~/.arcade/configs/cube.yaml -> ./configs/cube.yaml -> embedded default
func LoadCube(customPath string) (CubeConfig, Source, error) {
	return load(customPath, "cube.yaml", defaultCubeYAML, DefaultCubeConfig)
}

// load resolves a config file through the search order. Files are decoded
// over the hardcoded defaults, so a partial file only overrides the keys it
// names. Unreadable or malformed user/local files are skipped; a bad custom
// path is an error.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, Source, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, defaults); ok {
			return cfg, SourceUser, nil
		}
	}

	if cfg, ok := tryFile(filepath.Join("configs", filename), defaults); ok {
		return cfg, SourceLocal, nil
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func tryFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Snake ships with progression off; any preset other than fixed turns it on.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Movement.Interval = 0.25
	case DifficultyHard:
		cfg.Movement.Interval = 0.12
	}
}
