package skyhop

import (
	"testing"

	"github.com/arcadehop/skyhop/internal/config"
)

func TestSweepReclaimsBelowWindow(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s := NewSweeper(cfg.Sweep)
	w := NewWorld()

	// Camera window [0, 480]; eviction line at 480+300 = 780.
	w.Platforms = append(w.Platforms,
		&Platform{X: 100, Y: 779, Active: true}, // Inside, kept
		&Platform{X: 100, Y: 781, Active: true}, // Below the line, gone
	)
	w.Enemies = append(w.Enemies,
		&Enemy{X: 100, Y: 200, Active: true},
		&Enemy{X: 100, Y: 900, Active: true},
	)
	w.Powerups = append(w.Powerups,
		&Powerup{X: 100, Y: 780, Active: true}, // Exactly on the line, kept
		&Powerup{X: 100, Y: 1000, Active: true},
	)

	s.Sweep(w, 0, 480)

	if len(w.Platforms) != 1 || w.Platforms[0].Y != 779 {
		t.Errorf("Platforms after sweep: %d", len(w.Platforms))
	}
	if len(w.Enemies) != 1 || w.Enemies[0].Y != 200 {
		t.Errorf("Enemies after sweep: %d", len(w.Enemies))
	}
	if len(w.Powerups) != 1 || w.Powerups[0].Y != 780 {
		t.Errorf("Powerups after sweep: %d", len(w.Powerups))
	}
}

func TestSweepReclaimsInactive(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s := NewSweeper(cfg.Sweep)
	w := NewWorld()

	w.Platforms = append(w.Platforms,
		&Platform{X: 100, Y: 100, Active: true},
		&Platform{X: 100, Y: 150, Active: false}, // Crumbled breakable
	)
	w.Enemies = append(w.Enemies, &Enemy{X: 100, Y: 100, Active: false})
	w.Powerups = append(w.Powerups, &Powerup{X: 100, Y: 100, Active: false})
	w.Bullets = append(w.Bullets, &Bullet{X: 100, Y: 100, Active: false})

	s.Sweep(w, 0, 480)

	if len(w.Platforms) != 1 {
		t.Errorf("Inactive platform survived the sweep: %d left", len(w.Platforms))
	}
	if len(w.Enemies) != 0 || len(w.Powerups) != 0 || len(w.Bullets) != 0 {
		t.Errorf("Inactive entities survived: %d enemies, %d powerups, %d bullets",
			len(w.Enemies), len(w.Powerups), len(w.Bullets))
	}
}

func TestSweepBulletWindowIsTwoSided(t *testing.T) {
	// Bullets are reclaimed both below cameraBottom+300 and above
	// cameraTop-100, unlike the other groups.
	cfg := config.DefaultSkyhopConfig()
	s := NewSweeper(cfg.Sweep)
	w := NewWorld()

	w.Bullets = append(w.Bullets,
		&Bullet{X: 100, Y: -99, Active: true},  // Just inside the top margin
		&Bullet{X: 100, Y: -101, Active: true}, // Past the top margin, gone
		&Bullet{X: 100, Y: 779, Active: true},  // Inside the bottom margin
		&Bullet{X: 100, Y: 781, Active: true},  // Past the bottom margin, gone
	)

	s.Sweep(w, 0, 480)

	if len(w.Bullets) != 2 {
		t.Fatalf("Bullets after sweep = %d, want 2", len(w.Bullets))
	}
	if w.Bullets[0].Y != -99 || w.Bullets[1].Y != 779 {
		t.Errorf("Wrong bullets kept: %f, %f", w.Bullets[0].Y, w.Bullets[1].Y)
	}
}
