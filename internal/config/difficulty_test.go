package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, GapReduction: 4},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1}, // clamped
		{-10, 0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	if got := d.Speed(14, 100, 0); got != 28 {
		t.Errorf("Speed at max = %v, expected 28", got)
	}
	if got := d.GapSize(15, 100, 0); got != 11 {
		t.Errorf("GapSize at max = %d, expected 11", got)
	}
	if got := d.Interval(0.2, 100, 0); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("Interval at max = %v, expected 0.1", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressTime, MaxAt: 600},
	})

	if got := d.Level(1000, 300); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Level at half time = %v, expected 0.75", got)
	}
}

func TestDifficultyGapFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 1},
		Scaling:     ScalingConfig{GapReduction: 100},
	})
	if got := d.GapSize(15, 1, 0); got != MinGap {
		t.Errorf("GapSize = %d, expected floor %d", got, MinGap)
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  DifficultyConfig
	}{
		{"disabled", DifficultyConfig{Enabled: false, InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 10}}},
		{"progression none", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressNone}}},
		{"unknown type", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "lunar"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if d.IsEnabled() {
				t.Error("manager should report disabled")
			}
			if got := d.Level(1000, 1000); got != 0.3 {
				t.Errorf("Level = %v, expected 0.3", got)
			}
		})
	}
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: ProgressTime, MaxAt: 60}})
	d.SetInitialLevel(2)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}

	d = NewDifficultyManager(DifficultyConfig{InitialLevel: -1})
	if got := d.Level(0, 0); got != 0 {
		t.Errorf("negative initial level should clamp to 0, got %v", got)
	}
}
