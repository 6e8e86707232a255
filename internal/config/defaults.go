package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the default Sky Hopper configuration.
// Values are in world units (a 640x480-unit camera window) and ticks at 60 TPS.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		World: WorldConfig{
			Width:          640,
			ViewHeight:     480,
			EdgeMargin:     80,
			StartPlatforms: 8,
			DeathMargin:    60,
		},
		Physics: PhysicsConfig{
			Gravity:      0.35,
			JumpImpulse:  -11.0,
			MaxFallSpeed: 14.0,
			MoveSpeed:    6.0,
			PlayerWidth:  24,
			PlayerHeight: 24,
		},
		Generation: GenerationConfig{
			PlatformSpacing:  56,
			MinDistance:      60,
			Margin:           200,
			MaxAttempts:      10,
			PlatformWidth:    60,
			PlatformHeight:   10,
			EnemySpawnChance: 8,
			EnemyOffsetY:     80,
			PowerupOffsetY:   60,
			Kinds: PlatformWeights{
				Normal:    70,
				Moving:    20,
				Breakable: 10,
			},
			Powerups: PowerupWeights{
				None:         88,
				PropellerHat: 5,
				Jetpack:      3,
				SpringShoes:  4,
			},
		},
		Powerups: PowerupConfig{
			PropellerDurationMs: 4000,
			JetpackDurationMs:   5000,
			SpringDurationMs:    6000,
			PropellerAscent:     -9.0,
			JetpackAscent:       -12.0,
			SpringMultiplier:    1.6,
		},
		Combat: CombatConfig{
			BulletSpeed:     -18.0,
			ShootCooldownMs: 300,
			ShootPoseMs:     200,
			BulletTTLMs:     2000,
			EnemyHP:         1,
			EnemyWidth:      40,
			EnemyHeight:     30,
			EnemySpeed:      1.5,
			MovingSpeed:     2.0,
			MovingRange:     60,
		},
		Scoring: ScoringConfig{
			Stomp:           100,
			Powerup:         200,
			BulletKill:      150,
			MilestoneMeters: 50,
			MilestonePoints: 500,
		},
		Sweep: SweepConfig{
			BelowMargin:     300,
			BulletTopMargin: 100,
		},
		Background: BackgroundConfig{
			TileHeight: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "height",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				EnemyChanceBoost: 10,
				SpacingGrowth:    24,
			},
		},
	}
}
