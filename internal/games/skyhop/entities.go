package skyhop

import "github.com/arcadehop/skyhop/internal/core"

// PlatformKind represents the behavior variant of a platform.
type PlatformKind int

const (
	PlatformNormal    PlatformKind = iota // Static, bounces forever
	PlatformMoving                        // Patrols horizontally between bounds
	PlatformBreakable                     // Crumbles after one bounce
	PlatformKindCount                     // Sentinel for counting kinds
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformBreakable:
		return "breakable"
	default:
		return "?"
	}
}

// Platform is a surface the player bounces off. X, Y is the center
// in world units; smaller Y is higher up.
type Platform struct {
	X, Y    float64
	W, H    float64
	Kind    PlatformKind
	VX      float64 // Patrol velocity (moving platforms only)
	OriginX float64 // Patrol anchor (moving platforms only)
	Active  bool
}

// Box returns the platform's world-space bounding box.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X-p.W/2, p.Y-p.H/2, p.W, p.H)
}

// Enemy is a hostile patrolling above a platform. Stomped from above or
// shot; lateral contact kills the player.
type Enemy struct {
	X, Y    float64
	W, H    float64
	HP      int
	VX      float64
	OriginX float64
	Active  bool
}

// Box returns the enemy's world-space bounding box.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X-e.W/2, e.Y-e.H/2, e.W, e.H)
}

// Hit registers one point of damage. Returns true if the enemy is defeated.
func (e *Enemy) Hit() bool {
	e.HP--
	if e.HP <= 0 {
		e.Active = false
		return true
	}
	return false
}

// Powerup is a collectible buff pickup floating above a platform.
type Powerup struct {
	Type   BuffType
	X, Y   float64
	Active bool
}

// Box returns the pickup's world-space bounding box.
// Pickups use a fixed 20x20-unit hitbox.
func (p *Powerup) Box() core.Box {
	return core.NewBox(p.X-10, p.Y-10, 20, 20)
}

// Bullet is a player projectile travelling upward.
type Bullet struct {
	X, Y   float64
	VY     float64
	Active bool
}

// Box returns the bullet's world-space bounding box.
// Bullets use a fixed 8x8-unit hitbox.
func (b *Bullet) Box() core.Box {
	return core.NewBox(b.X-4, b.Y-4, 8, 8)
}

// World holds all live entity groups. Entities are appended on spawn and
// deactivated on gameplay outcome; the sweeper reclaims them.
type World struct {
	Platforms []*Platform
	Enemies   []*Enemy
	Powerups  []*Powerup
	Bullets   []*Bullet
}

// NewWorld creates an empty world with pre-allocated groups.
func NewWorld() *World {
	return &World{
		Platforms: make([]*Platform, 0, 64),
		Enemies:   make([]*Enemy, 0, 16),
		Powerups:  make([]*Powerup, 0, 16),
		Bullets:   make([]*Bullet, 0, 16),
	}
}

// Reset clears all entity groups.
func (w *World) Reset() {
	w.Platforms = w.Platforms[:0]
	w.Enemies = w.Enemies[:0]
	w.Powerups = w.Powerups[:0]
	w.Bullets = w.Bullets[:0]
}

// ClearOfPlatforms reports whether the point (x, y) is farther than minDist
// (Euclidean) from the center of every active platform.
func (w *World) ClearOfPlatforms(x, y, minDist float64) bool {
	for _, p := range w.Platforms {
		if !p.Active {
			continue
		}
		if core.Dist(x, y, p.X, p.Y) <= minDist {
			return false
		}
	}
	return true
}
