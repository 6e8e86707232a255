package skyhop

import "github.com/arcadehop/skyhop/internal/config"

// Events summarizes what a collision pass changed, so the game loop can
// apply scoring and side effects in one place.
type Events struct {
	Landed     bool
	Crumbled   int
	Stomps     int
	BulletHits int
	BulletKill int
	Collected  []BuffType
	PlayerDied bool
}

// Resolver runs the per-tick collision pass. Pair checks run in a fixed
// order: platforms, enemies, power-ups, then bullets.
type Resolver struct {
	cfg *config.SkyhopConfig
}

// NewResolver creates a resolver for the given tunables.
func NewResolver(cfg *config.SkyhopConfig) Resolver {
	return Resolver{cfg: cfg}
}

// Resolve checks all collision pairs and mutates the world and player.
// Landing applies the bounce impulse (scaled by the spring multiplier when
// spring shoes dominate); the caller handles scoring from the returned
// Events.
func (r Resolver) Resolve(w *World, p *Player, buffs *BuffSet) Events {
	var ev Events
	if !p.Alive {
		return ev
	}

	r.resolvePlatforms(w, p, buffs, &ev)
	r.resolveEnemies(w, p, buffs, &ev)
	r.resolvePowerups(w, p, &ev)
	r.resolveBullets(w, &ev)
	return ev
}

// resolvePlatforms lands the player on the first overlapping platform.
// A landing requires downward motion and that the feet started the tick at
// or above the platform top, so upward passes and side clips never snap
// the player onto a surface.
func (r Resolver) resolvePlatforms(w *World, p *Player, buffs *BuffSet, ev *Events) {
	if p.VY <= 0 {
		return
	}
	pb := p.Box()
	for _, plat := range w.Platforms {
		if !plat.Active {
			continue
		}
		top := plat.Y - plat.H/2
		if p.PrevBottom() > top {
			continue
		}
		if !pb.Intersects(plat.Box()) {
			continue
		}

		p.Y = top - p.H/2
		p.VY = r.cfg.Physics.JumpImpulse * buffs.SpringMultiplier()
		ev.Landed = true

		if plat.Kind == PlatformBreakable {
			plat.Active = false
			ev.Crumbled++
		}
		return // One landing per tick
	}
}

// resolveEnemies checks player-enemy contact. Falling onto an enemy from
// above is a stomp: the enemy takes a hit and the player bounces with the
// same spring-scaled impulse as a landing. Any other contact kills the
// player.
func (r Resolver) resolveEnemies(w *World, p *Player, buffs *BuffSet, ev *Events) {
	pb := p.Box()
	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		if !pb.Intersects(e.Box()) {
			continue
		}

		if p.VY > 0 && p.PrevBottom() <= e.Y {
			if e.Hit() {
				ev.Stomps++
			}
			p.VY = r.cfg.Physics.JumpImpulse * buffs.SpringMultiplier()
			continue
		}

		p.Alive = false
		ev.PlayerDied = true
		return
	}
}

// resolvePowerups collects overlapping pickups. Deactivation happens here,
// before the buff is granted, so a pickup can never be collected twice even
// if two checks see it in the same tick.
func (r Resolver) resolvePowerups(w *World, p *Player, ev *Events) {
	pb := p.Box()
	for _, pu := range w.Powerups {
		if !pu.Active {
			continue
		}
		if !pb.Intersects(pu.Box()) {
			continue
		}
		pu.Active = false
		ev.Collected = append(ev.Collected, pu.Type)
	}
}

// resolveBullets checks bullet-enemy pairs. The bullet is always consumed
// on contact whether or not the hit is lethal.
func (r Resolver) resolveBullets(w *World, ev *Events) {
	for _, b := range w.Bullets {
		if !b.Active {
			continue
		}
		bb := b.Box()
		for _, e := range w.Enemies {
			if !e.Active {
				continue
			}
			if !bb.Intersects(e.Box()) {
				continue
			}
			b.Active = false
			ev.BulletHits++
			if e.Hit() {
				ev.BulletKill++
			}
			break
		}
	}
}
