package skyhop

import (
	"github.com/arcadehop/skyhop/internal/config"
	"github.com/arcadehop/skyhop/internal/core"
)

// Player is the hopper. X, Y is the center in world units; smaller Y is
// higher up. PrevY holds the center before the current tick's integration,
// used by landing checks to tell a fall-through from a cross-over.
type Player struct {
	X, Y   float64
	PrevY  float64
	VX, VY float64
	W, H   float64

	Facing   int  // -1 left, 1 right
	Shooting bool // Shooting pose, reset by the scheduler
	Alive    bool
}

// NewPlayer creates a player at the given spawn point.
func NewPlayer(x, y float64, cfg config.PhysicsConfig) *Player {
	return &Player{
		X:      x,
		Y:      y,
		PrevY:  y,
		W:      cfg.PlayerWidth,
		H:      cfg.PlayerHeight,
		Facing: 1,
		Alive:  true,
	}
}

// Box returns the player's world-space bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X-p.W/2, p.Y-p.H/2, p.W, p.H)
}

// Bottom returns the y of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + p.H/2
}

// PrevBottom returns the y of the player's feet before this tick's move.
func (p *Player) PrevBottom() float64 {
	return p.PrevY + p.H/2
}
