// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// RaycastConfig contains all configuration for the console FPS.
type RaycastConfig struct {
	View     RaycastView     `yaml:"view"`
	Movement RaycastMovement `yaml:"movement"`
	Map      RaycastMap      `yaml:"map"`
	HUD      RaycastHUD      `yaml:"hud"`
}

// RaycastView defines the ray caster projection.
type RaycastView struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	Depth      float64 `yaml:"depth"` // Max view distance in cells
	Step       float64 `yaml:"step"`  // Ray march increment in cells
	Floor      string  `yaml:"floor"` // "gradient" or "blank"
}

// RaycastMovement defines player speeds.
type RaycastMovement struct {
	MoveSpeed float64 `yaml:"move_speed"` // Cells per second
	TurnSpeed float64 `yaml:"turn_speed"` // Radians per second
}

// RaycastMap selects the map to play.
type RaycastMap struct {
	ID  string `yaml:"id"`
	Dir string `yaml:"dir"` // Extra directory of map files, merged over the built-in maps
}

// RaycastHUD toggles overlays.
type RaycastHUD struct {
	Minimap bool `yaml:"minimap"`
	Stats   bool `yaml:"stats"`
}

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are in screen cells and times in seconds.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Bird       FlappyBird       `yaml:"bird"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Rows per second squared, also the acceleration cap
	ScrollSpeed float64 `yaml:"scroll_speed"` // Columns per second
}

// FlappyObstacles defines the scrolling pipe sections.
type FlappyObstacles struct {
	Sections     int `yaml:"sections"`      // Sections kept in the queue
	PipeOffset   int `yaml:"pipe_offset"`   // Pipe start inside its section
	PipeWidth    int `yaml:"pipe_width"`    // Pipe width in columns
	GapSize      int `yaml:"gap_size"`      // Rows between the top and bottom pipe
	HeightMargin int `yaml:"height_margin"` // Pipe heights are drawn from [0, H - margin)
	MinHeight    int `yaml:"min_height"`    // Heights at or below this leave the section empty
}

// FlappyBird defines bird placement and hitbox probes.
type FlappyBird struct {
	XRatio      float64 `yaml:"x_ratio"`      // Horizontal position as a fraction of the width
	ProbeOffset int     `yaml:"probe_offset"` // Column offset of the front collision probes
	Margin      float64 `yaml:"margin"`       // Distance from top/bottom edge that counts as a crash
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Movement   SnakeMovement    `yaml:"movement"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the playing field.
type SnakeBoard struct {
	Cells  int `yaml:"cells"`   // Board is Cells x Cells
	StartX int `yaml:"start_x"` // Head column at spawn
	StartY int `yaml:"start_y"` // Head row at spawn
	Length int `yaml:"length"`  // Initial body length
}

// SnakeMovement defines the movement clock.
type SnakeMovement struct {
	Interval float64 `yaml:"interval"` // Seconds between moves
}

// CubeConfig contains all configuration for the wireframe cube demo.
type CubeConfig struct {
	Size     float64      `yaml:"size"` // Edge length in model units
	Rotation CubeRotation `yaml:"rotation"`
}

// CubeRotation defines spin per frame and the frame length it was tuned at.
type CubeRotation struct {
	X       float64 `yaml:"x"` // Radians per frame
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	FrameMS int     `yaml:"frame_ms"`
	Step    float64 `yaml:"step"` // Speed multiplier change per key press
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	GapReduction    int     `yaml:"gap_reduction"`    // Gap size reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// ApplyPreset modifies a difficulty config for a preset. An empty preset
// leaves the config untouched.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ParsePreset converts a CLI value to a preset. Unknown values yield the
// empty preset, which leaves configs untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
