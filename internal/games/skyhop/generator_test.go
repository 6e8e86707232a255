package skyhop

import (
	"testing"

	"github.com/arcadehop/skyhop/internal/config"
	"github.com/arcadehop/skyhop/internal/core"
)

func newTestGenerator(seed int64, cfg *config.SkyhopConfig) *Generator {
	return NewGenerator(seed, cfg, config.NewDifficultyManager(cfg.Difficulty))
}

func TestGeneratorKeepsMinimumDistance(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	gen := newTestGenerator(7, &cfg)
	gen.Reset(7, 0)
	w := NewWorld()

	// Always trigger: the camera top chases the cursor.
	for i := 0; i < 500; i++ {
		gen.MaybeSpawn(w, gen.Cursor(), 0, i)
	}

	if len(w.Platforms) < 100 {
		t.Fatalf("Expected a long platform run, got %d", len(w.Platforms))
	}

	for i, a := range w.Platforms {
		for _, b := range w.Platforms[i+1:] {
			if d := core.Dist(a.X, a.Y, b.X, b.Y); d <= cfg.Generation.MinDistance {
				t.Fatalf("Platforms at (%f,%f) and (%f,%f) are %f apart, want > %f",
					a.X, a.Y, b.X, b.Y, d, cfg.Generation.MinDistance)
			}
		}
	}
}

func TestGeneratorCursorAdvancesOnFailure(t *testing.T) {
	// With an impossible minimum distance every attempt is rejected, and
	// each of the rejected attempts still consumes a cursor step.
	cfg := config.DefaultSkyhopConfig()
	cfg.Generation.MinDistance = 100000
	cfg.Difficulty.Enabled = false

	gen := newTestGenerator(7, &cfg)
	gen.Reset(7, 0)

	w := NewWorld()
	w.Platforms = append(w.Platforms, &Platform{X: 320, Y: 0, W: 60, H: 10, Active: true})

	gen.MaybeSpawn(w, 0, 0, 0)

	if len(w.Platforms) != 1 {
		t.Errorf("No platform should spawn, got %d", len(w.Platforms))
	}
	wantCursor := -cfg.Generation.PlatformSpacing * float64(cfg.Generation.MaxAttempts)
	if gen.Cursor() != wantCursor {
		t.Errorf("Cursor = %f, want %f (one step per rejected attempt)", gen.Cursor(), wantCursor)
	}

	// The trigger condition persists, so the next call keeps trying.
	gen.MaybeSpawn(w, 0, 0, 1)
	if gen.Cursor() != 2*wantCursor {
		t.Errorf("Cursor after second call = %f, want %f", gen.Cursor(), 2*wantCursor)
	}
}

func TestGeneratorRetriesAfterRejectedTick(t *testing.T) {
	// A fully rejected call advances the cursor but not the trigger, so
	// generation resumes as soon as candidates clear the distance check.
	cfg := config.DefaultSkyhopConfig()
	cfg.Generation.MinDistance = 100000
	cfg.Difficulty.Enabled = false

	gen := newTestGenerator(7, &cfg)
	gen.Reset(7, 0)

	w := NewWorld()
	w.Platforms = append(w.Platforms, &Platform{X: 320, Y: 0, W: 60, H: 10, Active: true})

	gen.MaybeSpawn(w, 0, 0, 0)
	if len(w.Platforms) != 1 {
		t.Fatalf("Every attempt should be rejected, got %d platforms", len(w.Platforms))
	}

	// The blockage clears; the very next call must place a platform.
	cfg.Generation.MinDistance = 60
	gen.MaybeSpawn(w, 0, 0, 1)
	if len(w.Platforms) != 2 {
		t.Errorf("Generation should resume on the next call, got %d platforms", len(w.Platforms))
	}
}

func TestGeneratorIdleWhenAhead(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	gen := newTestGenerator(7, &cfg)
	gen.Reset(7, -1000)
	w := NewWorld()

	// Cursor at -1000 is well past cameraTop-margin = -200.
	gen.MaybeSpawn(w, 0, 0, 0)

	if len(w.Platforms) != 0 {
		t.Errorf("Generator should stay idle while ahead of the margin, got %d platforms", len(w.Platforms))
	}
	if gen.Cursor() != -1000 {
		t.Errorf("Idle generator must not move the cursor, got %f", gen.Cursor())
	}
}

func TestGeneratorPlacementBounds(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	gen := newTestGenerator(99, &cfg)
	gen.Reset(99, 0)
	w := NewWorld()

	for i := 0; i < 300; i++ {
		gen.MaybeSpawn(w, gen.Cursor(), 0, i)
	}

	lo := cfg.World.EdgeMargin
	hi := cfg.World.Width - cfg.World.EdgeMargin
	for _, p := range w.Platforms {
		if p.X < lo || p.X >= hi {
			t.Errorf("Platform x = %f outside [%f, %f)", p.X, lo, hi)
		}
	}
	for _, e := range w.Enemies {
		if e.X < lo || e.X >= hi {
			t.Errorf("Enemy x = %f outside [%f, %f)", e.X, lo, hi)
		}
	}
}

func TestGeneratorAttachesAboveRow(t *testing.T) {
	// Force every platform to carry an enemy and a power-up, then check
	// the spawn offsets.
	cfg := config.DefaultSkyhopConfig()
	cfg.Generation.EnemySpawnChance = 100
	cfg.Generation.Powerups = config.PowerupWeights{None: 0, PropellerHat: 1, Jetpack: 0, SpringShoes: 0}
	cfg.Difficulty.Enabled = false

	gen := newTestGenerator(5, &cfg)
	gen.Reset(5, 0)
	w := NewWorld()

	for i := 0; i < 50; i++ {
		gen.MaybeSpawn(w, gen.Cursor(), 0, i)
	}

	if len(w.Enemies) != len(w.Platforms) {
		t.Fatalf("Expected one enemy per platform, got %d enemies for %d platforms",
			len(w.Enemies), len(w.Platforms))
	}
	if len(w.Powerups) != len(w.Platforms) {
		t.Fatalf("Expected one power-up per platform, got %d for %d platforms",
			len(w.Powerups), len(w.Platforms))
	}
	for i, p := range w.Platforms {
		if got := w.Enemies[i].Y; got != p.Y-cfg.Generation.EnemyOffsetY {
			t.Errorf("Enemy y = %f, want %f", got, p.Y-cfg.Generation.EnemyOffsetY)
		}
		if got := w.Powerups[i].Y; got != p.Y-cfg.Generation.PowerupOffsetY {
			t.Errorf("Power-up y = %f, want %f", got, p.Y-cfg.Generation.PowerupOffsetY)
		}
	}
}

func TestGeneratorDeterministicPlacement(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()

	run := func() []*Platform {
		gen := newTestGenerator(1234, &cfg)
		gen.Reset(1234, 0)
		w := NewWorld()
		for i := 0; i < 200; i++ {
			gen.MaybeSpawn(w, gen.Cursor(), 0, i)
		}
		return w.Platforms
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("Runs produced different platform counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Kind != b[i].Kind {
			t.Fatalf("Platform %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSeedInitialLaysFloor(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	gen := newTestGenerator(42, &cfg)
	gen.Reset(42, 440)
	w := NewWorld()

	gen.SeedInitial(w, 320, 440, cfg.World.StartPlatforms)

	if len(w.Platforms) < 2 {
		t.Fatalf("SeedInitial should place the floor plus a starting stretch, got %d", len(w.Platforms))
	}
	floor := w.Platforms[0]
	if floor.X != 320 || floor.Y != 440 {
		t.Errorf("Floor at (%f, %f), want (320, 440)", floor.X, floor.Y)
	}
	if floor.W != cfg.Generation.PlatformWidth*2 {
		t.Errorf("Floor width = %f, want %f", floor.W, cfg.Generation.PlatformWidth*2)
	}
	for _, p := range w.Platforms {
		if p.Kind != PlatformNormal {
			t.Errorf("Starting stretch must be all normal platforms, found %v", p.Kind)
		}
	}
}
