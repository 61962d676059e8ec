package config

// Progression types for DifficultyConfig.Progression.Type.
const (
	ProgressScore = "score" // Level rises with the score
	ProgressTime  = "time"  // Level rises with ticks played
	ProgressNone  = "none"
)

// MinGap is the smallest pipe gap GapSize will return.
const MinGap = 4

// DifficultyManager maps score and play time to a difficulty level in [0, 1]
// and scales game parameters by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the starting level. It is clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = min(max(level, 0), 1)
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return true
	}
	return false
}

// Level returns the current level. It rises linearly from the initial level
// to 1 as the score or tick count approaches Progression.MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	amount := score
	if d.cfg.Progression.Type == ProgressTime {
		amount = ticks
	}
	maxAt := max(d.cfg.Progression.MaxAt, 1)
	progress := min(max(float64(amount)/float64(maxAt), 0), 1)

	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales base up to base * (1 + SpeedMultiplier) at full difficulty.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks base by up to GapReduction cells, never below MinGap.
func (d *DifficultyManager) GapSize(base, score, ticks int) int {
	reduction := int(d.Level(score, ticks) * float64(d.cfg.Scaling.GapReduction))
	return max(base-reduction, MinGap)
}

// Interval shortens a period in seconds by the same factor Speed applies.
// Games that move on a clock use it instead of a velocity.
func (d *DifficultyManager) Interval(base float64, score, ticks int) float64 {
	return base / d.Speed(1, score, ticks)
}
