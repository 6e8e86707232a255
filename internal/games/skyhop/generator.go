package skyhop

import (
	"github.com/arcadehop/skyhop/internal/config"
)

// Generator extends the level upward as the camera rises. It owns the
// generation cursor: lastPlatformY only ever decreases (up), stepping by the
// platform spacing. The trigger tracks topPlacedY, the y of the topmost
// platform actually placed, so rejected attempts never push the generator
// past its own trigger window.
type Generator struct {
	cfg        *config.SkyhopConfig
	difficulty *config.DifficultyManager
	rng        *RNG

	lastPlatformY float64
	topPlacedY    float64
}

// NewGenerator creates a generator seeded for deterministic placement.
func NewGenerator(seed int64, cfg *config.SkyhopConfig, diff *config.DifficultyManager) *Generator {
	g := &Generator{
		cfg:        cfg,
		difficulty: diff,
		rng:        NewRNG(seed),
	}
	return g
}

// Reset re-seeds the generator and moves the cursor to startY.
func (g *Generator) Reset(seed int64, startY float64) {
	g.rng = NewRNG(seed)
	g.lastPlatformY = startY
	g.topPlacedY = startY
}

// Cursor returns the current generation cursor (y of the topmost step taken).
func (g *Generator) Cursor() float64 {
	return g.lastPlatformY
}

// randX draws a platform x uniformly inside the world edge margins.
func (g *Generator) randX() float64 {
	m := g.cfg.World.EdgeMargin
	return g.rng.Range(m, g.cfg.World.Width-m)
}

// MaybeSpawn places at most one platform per tick, once the topmost placed
// platform is no longer comfortably ahead of the camera top. Each placement
// attempt steps the cursor up by the spacing and draws a fresh x; a rejected
// attempt does NOT give the step back, so ten rejections advance the cursor
// ten steps and produce nothing this tick. Rejected attempts intentionally
// consume cursor steps, but only a successful placement moves the trigger,
// so a fully rejected tick is retried on the next one.
func (g *Generator) MaybeSpawn(w *World, cameraTopY float64, heightM, ticks int) {
	gen := g.cfg.Generation
	if g.topPlacedY <= cameraTopY-gen.Margin {
		return // Still generated far enough ahead
	}

	spacing := g.difficulty.Spacing(gen.PlatformSpacing, heightM, ticks)

	for attempt := 0; attempt < gen.MaxAttempts; attempt++ {
		g.lastPlatformY -= spacing
		y := g.lastPlatformY
		x := g.randX()

		if !w.ClearOfPlatforms(x, y, gen.MinDistance) {
			continue
		}

		g.placePlatform(w, x, y)
		g.topPlacedY = y
		g.maybeAttachEnemy(w, y, heightM, ticks)
		g.maybeAttachPowerup(w, y)
		return
	}
	// All attempts rejected: nothing spawns this tick.
}

// placePlatform instantiates a platform of a weighted random kind.
func (g *Generator) placePlatform(w *World, x, y float64) {
	gen := g.cfg.Generation
	kind := g.rollKind()

	p := &Platform{
		X:      x,
		Y:      y,
		W:      gen.PlatformWidth,
		H:      gen.PlatformHeight,
		Kind:   kind,
		Active: true,
	}
	if kind == PlatformMoving {
		p.OriginX = x
		p.VX = g.cfg.Combat.MovingSpeed
		if g.rng.Intn(2) == 0 {
			p.VX = -p.VX
		}
	}
	w.Platforms = append(w.Platforms, p)
}

// rollKind selects a platform kind from the weighted table.
func (g *Generator) rollKind() PlatformKind {
	k := g.cfg.Generation.Kinds
	total := k.Normal + k.Moving + k.Breakable
	if total <= 0 {
		return PlatformNormal
	}

	roll := g.rng.Intn(total)
	switch {
	case roll < k.Normal:
		return PlatformNormal
	case roll < k.Normal+k.Moving:
		return PlatformMoving
	default:
		return PlatformBreakable
	}
}

// maybeAttachEnemy rolls the (difficulty-scaled) spawn chance and, on
// success, places an enemy above the new platform row.
func (g *Generator) maybeAttachEnemy(w *World, platformY float64, heightM, ticks int) {
	gen := g.cfg.Generation
	chance := g.difficulty.EnemyChance(gen.EnemySpawnChance, heightM, ticks)
	if g.rng.Intn(100) >= chance {
		return
	}

	x := g.randX()
	e := &Enemy{
		X:       x,
		Y:       platformY - gen.EnemyOffsetY,
		W:       g.cfg.Combat.EnemyWidth,
		H:       g.cfg.Combat.EnemyHeight,
		HP:      g.cfg.Combat.EnemyHP,
		VX:      g.cfg.Combat.EnemySpeed,
		OriginX: x,
		Active:  true,
	}
	if g.rng.Intn(2) == 0 {
		e.VX = -e.VX
	}
	w.Enemies = append(w.Enemies, e)
}

// maybeAttachPowerup queries the weighted-or-none power-up selector and,
// if non-empty, places a pickup above the new platform row. Independent of
// the enemy roll.
func (g *Generator) maybeAttachPowerup(w *World, platformY float64) {
	t, ok := g.rollPowerup()
	if !ok {
		return
	}
	w.Powerups = append(w.Powerups, &Powerup{
		Type:   t,
		X:      g.randX(),
		Y:      platformY - g.cfg.Generation.PowerupOffsetY,
		Active: true,
	})
}

// rollPowerup selects a power-up type, or none, from the weighted table.
func (g *Generator) rollPowerup() (BuffType, bool) {
	pw := g.cfg.Generation.Powerups
	total := pw.None + pw.PropellerHat + pw.Jetpack + pw.SpringShoes
	if total <= 0 {
		return 0, false
	}

	roll := g.rng.Intn(total)
	switch {
	case roll < pw.None:
		return 0, false
	case roll < pw.None+pw.PropellerHat:
		return BuffPropellerHat, true
	case roll < pw.None+pw.PropellerHat+pw.Jetpack:
		return BuffJetpack, true
	default:
		return BuffSpringShoes, true
	}
}

// SeedInitial lays down the starting floor and the first stretch of
// platforms so the player has somewhere to land from the very first tick.
// The floor is a wide normal platform centered under the spawn point.
func (g *Generator) SeedInitial(w *World, floorX, floorY float64, count int) {
	gen := g.cfg.Generation

	w.Platforms = append(w.Platforms, &Platform{
		X:      floorX,
		Y:      floorY,
		W:      gen.PlatformWidth * 2,
		H:      gen.PlatformHeight,
		Kind:   PlatformNormal,
		Active: true,
	})
	g.lastPlatformY = floorY
	g.topPlacedY = floorY

	for i := 0; i < count; i++ {
		for attempt := 0; attempt < gen.MaxAttempts; attempt++ {
			g.lastPlatformY -= gen.PlatformSpacing
			y := g.lastPlatformY
			x := g.randX()
			if !w.ClearOfPlatforms(x, y, gen.MinDistance) {
				continue
			}
			// Starting stretch is always plain platforms; hazards and
			// pickups only appear once the climb is underway.
			w.Platforms = append(w.Platforms, &Platform{
				X:      x,
				Y:      y,
				W:      gen.PlatformWidth,
				H:      gen.PlatformHeight,
				Kind:   PlatformNormal,
				Active: true,
			})
			g.topPlacedY = y
			break
		}
	}
}
