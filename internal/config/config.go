// Package config provides YAML-based game configuration loading and
// difficulty management for skyhop.
package config

// SkyhopConfig contains all tunables for the Sky Hopper game.
type SkyhopConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Generation GenerationConfig `yaml:"generation"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Combat     CombatConfig     `yaml:"combat"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Background BackgroundConfig `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines world geometry. The simulation runs in world units;
// the renderer scales a 640x480-unit camera window onto the terminal.
type WorldConfig struct {
	Width          float64 `yaml:"width"`           // World width in units
	ViewHeight     float64 `yaml:"view_height"`     // Camera window height in units
	EdgeMargin     float64 `yaml:"edge_margin"`     // Platform x kept inside [margin, width-margin]
	StartPlatforms int     `yaml:"start_platforms"` // Platforms pre-generated below the player
	DeathMargin    float64 `yaml:"death_margin"`    // Falling this far below the camera bottom kills
}

// PhysicsConfig defines player movement parameters, in units per tick.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Bounce velocity on landing (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	MoveSpeed    float64 `yaml:"move_speed"`     // Horizontal speed while a direction is held
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
}

// GenerationConfig drives the upward procedural level extension.
type GenerationConfig struct {
	PlatformSpacing  float64 `yaml:"platform_spacing"`   // Fixed vertical gap between cursor steps
	MinDistance      float64 `yaml:"min_distance"`       // Minimum Euclidean distance between platforms
	Margin           float64 `yaml:"margin"`             // Generation stays this far ahead of the camera top
	MaxAttempts      int     `yaml:"max_attempts"`       // Placement retries before skipping the tick
	PlatformWidth    float64 `yaml:"platform_width"`
	PlatformHeight   float64 `yaml:"platform_height"`
	EnemySpawnChance int     `yaml:"enemy_spawn_chance"` // Percent chance per placed platform
	EnemyOffsetY     float64 `yaml:"enemy_offset_y"`     // Enemy spawns this far above the platform
	PowerupOffsetY   float64 `yaml:"powerup_offset_y"`   // Power-up spawns this far above the platform

	Kinds    PlatformWeights `yaml:"kinds"`
	Powerups PowerupWeights  `yaml:"powerups"`
}

// PlatformWeights is the weighted table for platform kinds.
type PlatformWeights struct {
	Normal    int `yaml:"normal"`
	Moving    int `yaml:"moving"`
	Breakable int `yaml:"breakable"`
}

// PowerupWeights is the weighted-or-none table for power-up spawning.
// None means the draw yields no power-up at all.
type PowerupWeights struct {
	None         int `yaml:"none"`
	PropellerHat int `yaml:"propeller_hat"`
	Jetpack      int `yaml:"jetpack"`
	SpringShoes  int `yaml:"spring_shoes"`
}

// PowerupConfig defines buff durations and movement overrides.
type PowerupConfig struct {
	PropellerDurationMs int64   `yaml:"propeller_duration_ms"`
	JetpackDurationMs   int64   `yaml:"jetpack_duration_ms"`
	SpringDurationMs    int64   `yaml:"spring_duration_ms"`
	PropellerAscent     float64 `yaml:"propeller_ascent"` // Forced vertical velocity (negative = up)
	JetpackAscent       float64 `yaml:"jetpack_ascent"`   // Vertical velocity while ascend is held
	SpringMultiplier    float64 `yaml:"spring_multiplier"`
}

// CombatConfig defines shooting and enemy parameters.
type CombatConfig struct {
	BulletSpeed     float64 `yaml:"bullet_speed"`      // Units per tick (negative = up)
	ShootCooldownMs int64   `yaml:"shoot_cooldown_ms"`
	ShootPoseMs     int64   `yaml:"shoot_pose_ms"`     // Shooting pose reset delay
	BulletTTLMs     int64   `yaml:"bullet_ttl_ms"`     // Delayed cleanup for bullets that miss
	EnemyHP         int     `yaml:"enemy_hp"`
	EnemyWidth      float64 `yaml:"enemy_width"`
	EnemyHeight     float64 `yaml:"enemy_height"`
	EnemySpeed      float64 `yaml:"enemy_speed"`       // Horizontal patrol speed
	MovingSpeed     float64 `yaml:"moving_speed"`      // Moving platform patrol speed
	MovingRange     float64 `yaml:"moving_range"`      // Moving platform patrol half-range
}

// ScoringConfig defines points per event kind.
type ScoringConfig struct {
	Stomp           int `yaml:"stomp"`
	Powerup         int `yaml:"powerup"`
	BulletKill      int `yaml:"bullet_kill"`
	MilestoneMeters int `yaml:"milestone_meters"` // A milestone every N meters climbed
	MilestonePoints int `yaml:"milestone_points"`
}

// SweepConfig defines the off-screen eviction windows.
type SweepConfig struct {
	BelowMargin     float64 `yaml:"below_margin"`      // Entities removed below cameraBottom+margin
	BulletTopMargin float64 `yaml:"bullet_top_margin"` // Bullets also removed above cameraTop-margin
}

// BackgroundConfig defines the decorative scroll-relative tiling.
type BackgroundConfig struct {
	TileHeight float64 `yaml:"tile_height"`
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
	Type  string `yaml:"type"`   // "height", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Meters/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyChanceBoost int     `yaml:"enemy_chance_boost"` // Percent points added to spawn chance at max
	SpacingGrowth    float64 `yaml:"spacing_growth"`     // Units added to platform spacing at max
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
