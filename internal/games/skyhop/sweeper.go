package skyhop

import "github.com/arcadehop/skyhop/internal/config"

// Sweeper evicts entities that have scrolled out of the camera's relevant
// vertical window, bounding memory and per-tick work.
type Sweeper struct {
	cfg config.SweepConfig
}

// NewSweeper creates a sweeper with the given eviction margins.
func NewSweeper(cfg config.SweepConfig) Sweeper {
	return Sweeper{cfg: cfg}
}

// Sweep removes dead and off-window entities. Platforms, enemies and
// power-ups only ever need reclaiming below (generation keeps ahead above);
// bullets move fast and are reclaimed promptly in both directions.
func (s Sweeper) Sweep(w *World, cameraTopY, cameraBottomY float64) {
	below := cameraBottomY + s.cfg.BelowMargin
	above := cameraTopY - s.cfg.BulletTopMargin

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Active && p.Y <= below {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Active && e.Y <= below {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	powerups := w.Powerups[:0]
	for _, p := range w.Powerups {
		if p.Active && p.Y <= below {
			powerups = append(powerups, p)
		}
	}
	w.Powerups = powerups

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Active && b.Y >= above && b.Y <= below {
			bullets = append(bullets, b)
		}
	}
	w.Bullets = bullets
}
