package skyhop

import (
	"testing"

	"github.com/arcadehop/skyhop/internal/config"
)

func newTestResolver() (Resolver, config.SkyhopConfig) {
	cfg := config.DefaultSkyhopConfig()
	return Resolver{cfg: &cfg}, cfg
}

// fallingPlayer returns a player overlapping y=100 ground that started the
// tick above it and is moving down.
func fallingPlayer(cfg config.SkyhopConfig) *Player {
	p := NewPlayer(100, 90, cfg.Physics)
	p.PrevY = 78 // Feet at 90, above the platform top at 95
	p.VY = 12
	return p
}

func TestLandingBounce(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	w.Platforms = append(w.Platforms, &Platform{X: 100, Y: 100, W: 60, H: 10, Active: true})
	p := fallingPlayer(cfg)

	ev := r.Resolve(w, p, newTestBuffSet())

	if !ev.Landed {
		t.Fatal("Falling player overlapping a platform should land")
	}
	if p.VY != cfg.Physics.JumpImpulse {
		t.Errorf("Landing should apply the jump impulse, VY = %f, want %f", p.VY, cfg.Physics.JumpImpulse)
	}
	// Feet snapped to the platform top.
	if got := p.Bottom(); got != 95 {
		t.Errorf("Player feet should rest on the platform top, got %f, want 95", got)
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	w.Platforms = append(w.Platforms, &Platform{X: 100, Y: 100, W: 60, H: 10, Active: true})

	p := NewPlayer(100, 100, cfg.Physics)
	p.PrevY = 110
	p.VY = -8 // Moving up through the platform

	ev := r.Resolve(w, p, newTestBuffSet())

	if ev.Landed {
		t.Error("Player moving upward must pass through platforms")
	}
	if p.VY != -8 {
		t.Errorf("Upward velocity should be untouched, got %f", p.VY)
	}
}

func TestNoLandingFromBelow(t *testing.T) {
	// Falling, but the feet started the tick below the platform top:
	// a side clip, not a landing.
	r, cfg := newTestResolver()
	w := NewWorld()
	w.Platforms = append(w.Platforms, &Platform{X: 100, Y: 100, W: 60, H: 10, Active: true})

	p := NewPlayer(100, 100, cfg.Physics)
	p.PrevY = 98 // Feet at 110, below the platform top at 95
	p.VY = 3

	ev := r.Resolve(w, p, newTestBuffSet())

	if ev.Landed {
		t.Error("Player whose feet started below the surface must not snap onto it")
	}
}

func TestLandingWithSpringShoes(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	w.Platforms = append(w.Platforms, &Platform{X: 100, Y: 100, W: 60, H: 10, Active: true})
	p := fallingPlayer(cfg)

	buffs := newTestBuffSet()
	buffs.Collect(BuffSpringShoes, 0)

	r.Resolve(w, p, buffs)

	want := cfg.Physics.JumpImpulse * cfg.Powerups.SpringMultiplier
	if p.VY != want {
		t.Errorf("Spring landing VY = %f, want %f", p.VY, want)
	}
}

func TestBreakablePlatformCrumbles(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	plat := &Platform{X: 100, Y: 100, W: 60, H: 10, Kind: PlatformBreakable, Active: true}
	w.Platforms = append(w.Platforms, plat)
	p := fallingPlayer(cfg)

	ev := r.Resolve(w, p, newTestBuffSet())

	if !ev.Landed {
		t.Fatal("Breakable platform should still give one bounce")
	}
	if p.VY != cfg.Physics.JumpImpulse {
		t.Errorf("Crumbling platform should still apply the impulse, VY = %f", p.VY)
	}
	if plat.Active {
		t.Error("Breakable platform should be gone after the bounce")
	}
	if ev.Crumbled != 1 {
		t.Errorf("Crumbled = %d, want 1", ev.Crumbled)
	}
}

func TestEnemyStomp(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	enemy := &Enemy{X: 100, Y: 100, W: 40, H: 30, HP: 1, Active: true}
	w.Enemies = append(w.Enemies, enemy)

	p := NewPlayer(100, 95, cfg.Physics)
	p.PrevY = 80 // Feet at 92, above the enemy center at 100
	p.VY = 10

	ev := r.Resolve(w, p, newTestBuffSet())

	if ev.Stomps != 1 {
		t.Fatalf("Stomps = %d, want 1", ev.Stomps)
	}
	if enemy.Active {
		t.Error("Stomped enemy should be destroyed")
	}
	if !p.Alive || ev.PlayerDied {
		t.Error("Stomping player must survive")
	}
	if p.VY != cfg.Physics.JumpImpulse {
		t.Errorf("Stomp should bounce the player, VY = %f", p.VY)
	}
}

func TestEnemyStompWithSpringShoes(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	w.Enemies = append(w.Enemies, &Enemy{X: 100, Y: 100, W: 40, H: 30, HP: 1, Active: true})

	p := NewPlayer(100, 95, cfg.Physics)
	p.PrevY = 80
	p.VY = 10

	buffs := newTestBuffSet()
	buffs.Collect(BuffSpringShoes, 0)

	r.Resolve(w, p, buffs)

	// The stomp bounce scales like a landing while spring shoes dominate.
	want := cfg.Physics.JumpImpulse * cfg.Powerups.SpringMultiplier
	if p.VY != want {
		t.Errorf("Spring stomp VY = %f, want %f", p.VY, want)
	}
}

func TestEnemySideContactKills(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	enemy := &Enemy{X: 100, Y: 100, W: 40, H: 30, HP: 1, Active: true}
	w.Enemies = append(w.Enemies, enemy)

	p := NewPlayer(110, 100, cfg.Physics)
	p.PrevY = 100 // Level with the enemy, not falling onto it
	p.VY = 0

	ev := r.Resolve(w, p, newTestBuffSet())

	if !ev.PlayerDied {
		t.Fatal("Lateral enemy contact should kill the player")
	}
	if p.Alive {
		t.Error("Player should be dead")
	}
	if !enemy.Active {
		t.Error("Enemy survives lateral contact")
	}
}

func TestPowerupCollectedOnce(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	pu := &Powerup{Type: BuffJetpack, X: 100, Y: 100, Active: true}
	w.Powerups = append(w.Powerups, pu)

	p := NewPlayer(100, 100, cfg.Physics)

	ev := r.Resolve(w, p, newTestBuffSet())
	if len(ev.Collected) != 1 || ev.Collected[0] != BuffJetpack {
		t.Fatalf("Collected = %v, want [jetpack]", ev.Collected)
	}
	if pu.Active {
		t.Error("Collected pickup should be deactivated")
	}

	// Same overlap next tick: nothing to collect.
	ev = r.Resolve(w, p, newTestBuffSet())
	if len(ev.Collected) != 0 {
		t.Errorf("Deactivated pickup collected again: %v", ev.Collected)
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	r, _ := newTestResolver()
	w := NewWorld()
	enemy := &Enemy{X: 100, Y: 100, W: 40, H: 30, HP: 1, Active: true}
	bullet := &Bullet{X: 100, Y: 100, VY: -18, Active: true}
	w.Enemies = append(w.Enemies, enemy)
	w.Bullets = append(w.Bullets, bullet)

	cfg := config.DefaultSkyhopConfig()
	p := NewPlayer(300, 300, cfg.Physics) // Out of the way

	ev := r.Resolve(w, p, newTestBuffSet())

	if ev.BulletHits != 1 {
		t.Errorf("BulletHits = %d, want 1", ev.BulletHits)
	}
	if ev.BulletKill != 1 {
		t.Errorf("BulletKill = %d, want 1", ev.BulletKill)
	}
	if bullet.Active {
		t.Error("Bullet is always consumed on contact")
	}
	if enemy.Active {
		t.Error("1 HP enemy should die to one bullet")
	}
}

func TestBulletConsumedOnNonLethalHit(t *testing.T) {
	r, _ := newTestResolver()
	w := NewWorld()
	enemy := &Enemy{X: 100, Y: 100, W: 40, H: 30, HP: 2, Active: true}
	bullet := &Bullet{X: 100, Y: 100, VY: -18, Active: true}
	w.Enemies = append(w.Enemies, enemy)
	w.Bullets = append(w.Bullets, bullet)

	cfg := config.DefaultSkyhopConfig()
	p := NewPlayer(300, 300, cfg.Physics)

	ev := r.Resolve(w, p, newTestBuffSet())

	if ev.BulletHits != 1 || ev.BulletKill != 0 {
		t.Errorf("Hits = %d, kills = %d; want 1, 0", ev.BulletHits, ev.BulletKill)
	}
	if bullet.Active {
		t.Error("Bullet is consumed even when the hit is not lethal")
	}
	if !enemy.Active || enemy.HP != 1 {
		t.Errorf("Enemy should survive with 1 HP, got active=%v hp=%d", enemy.Active, enemy.HP)
	}
}

func TestDeadPlayerSkipsResolution(t *testing.T) {
	r, cfg := newTestResolver()
	w := NewWorld()
	w.Powerups = append(w.Powerups, &Powerup{Type: BuffJetpack, X: 100, Y: 100, Active: true})

	p := NewPlayer(100, 100, cfg.Physics)
	p.Alive = false

	ev := r.Resolve(w, p, newTestBuffSet())
	if len(ev.Collected) != 0 || ev.Landed {
		t.Error("Dead player must not interact with the world")
	}
}
