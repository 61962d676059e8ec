package config

import (
	_ "embed"
)

//go:embed defaults/raycast.yaml
var defaultRaycastYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultRaycastConfig returns the default console FPS configuration.
func DefaultRaycastConfig() RaycastConfig {
	return RaycastConfig{
		View: RaycastView{
			FOVDegrees: 45,
			Depth:      16,
			Step:       0.1,
			Floor:      "gradient",
		},
		Movement: RaycastMovement{
			MoveSpeed: 5.0,
			TurnSpeed: 0.8,
		},
		Map: RaycastMap{
			ID: "arena",
		},
		HUD: RaycastHUD{
			Minimap: true,
			Stats:   true,
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     100,
			ScrollSpeed: 14,
		},
		Obstacles: FlappyObstacles{
			Sections:     4,
			PipeOffset:   10,
			PipeWidth:    5,
			GapSize:      15,
			HeightMargin: 20,
			MinHeight:    10,
		},
		Bird: FlappyBird{
			XRatio:      0.3333,
			ProbeOffset: 6,
			Margin:      2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapReduction:    4,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Cells:  25,
			StartX: 6,
			StartY: 9,
			Length: 3,
		},
		Movement: SnakeMovement{
			Interval: 0.2,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultCubeConfig returns the default wireframe cube configuration.
func DefaultCubeConfig() CubeConfig {
	return CubeConfig{
		Size: 100,
		Rotation: CubeRotation{
			X:       0.002,
			Y:       0.001,
			Z:       0.004,
			FrameMS: 30,
			Step:    0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fps", "raycast":
		return defaultRaycastYAML
	case "flappy":
		return defaultFlappyYAML
	case "snake":
		return defaultSnakeYAML
	case "cube":
		return defaultCubeYAML
	default:
		return nil
	}
}
