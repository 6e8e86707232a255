package config

import "math"

// DifficultyManager calculates dynamic game parameters based on height/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// height climbed (meters) or elapsed ticks.
func (d *DifficultyManager) Level(height int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "height":
		progress = float64(height) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyChance returns the enemy spawn chance (percent) at the current level.
func (d *DifficultyManager) EnemyChance(base int, height int, ticks int) int {
	level := d.Level(height, ticks)
	chance := base + int(level*float64(d.cfg.Scaling.EnemyChanceBoost))
	if chance > 100 {
		chance = 100
	}
	return chance
}

// Spacing returns the platform spacing (units) at the current level.
// Spacing grows as difficulty increases, forcing longer jumps.
func (d *DifficultyManager) Spacing(base float64, height int, ticks int) float64 {
	level := d.Level(height, ticks)
	return base + level*d.cfg.Scaling.SpacingGrowth
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
