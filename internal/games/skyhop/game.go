// Package skyhop implements Sky Hopper, a vertical jumper.
// The player bounces up an endless tower of procedurally generated
// platforms, collecting timed power-ups and shooting or stomping the
// enemies that patrol the climb.
package skyhop

import (
	"github.com/arcadehop/skyhop/internal/config"
	"github.com/arcadehop/skyhop/internal/core"
	"github.com/arcadehop/skyhop/internal/registry"
)

// Meters of displayed height per world unit climbed.
const unitsPerMeter = 10.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Sky Hopper game logic.
type Game struct {
	// Simulation
	world    *World
	player   *Player
	buffs    *BuffSet
	gen      *Generator
	resolver Resolver
	sweeper  Sweeper
	sched    *Scheduler
	bg       *Background

	// Camera and height tracking. The camera only scrolls up; height is the
	// highest point the player has ever reached, so it never decreases.
	cameraTopY    float64
	startY        float64
	bestY         float64 // Lowest (highest up) player Y reached
	lastMilestone int     // Last height milestone already awarded, in meters

	// Game state
	score      int
	gameOver   bool
	paused     bool
	tickCount  int
	lastShotMs int64

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.SkyhopConfig
	difficulty *config.DifficultyManager
}

// New creates a new Sky Hopper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hopper"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSkyhop(configPath)
	if err != nil {
		cfg = config.DefaultSkyhopConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySkyhopPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if g.world == nil {
		g.world = NewWorld()
	} else {
		g.world.Reset()
	}
	if g.sched == nil {
		g.sched = NewScheduler()
	} else {
		g.sched.Reset()
	}

	// The cue listener survives restarts; only the buff state resets.
	var listener CueListener
	if g.buffs != nil {
		g.buffs.Reset()
		listener = g.buffs.listener
	}
	g.buffs = NewBuffSet(cfg.Powerups)
	g.buffs.listener = listener

	// Spawn the player above the floor, one view-height down from the top.
	floorY := cfg.World.ViewHeight - 40
	spawnX := cfg.World.Width / 2
	spawnY := floorY - cfg.Physics.PlayerHeight/2 - cfg.Generation.PlatformHeight/2
	g.player = NewPlayer(spawnX, spawnY, cfg.Physics)

	g.gen = NewGenerator(runtime.Seed, &g.cfg, g.difficulty)
	g.gen.Reset(runtime.Seed, floorY)
	g.gen.SeedInitial(g.world, spawnX, floorY, cfg.World.StartPlatforms)

	g.resolver = NewResolver(&g.cfg)
	g.sweeper = NewSweeper(cfg.Sweep)

	g.cameraTopY = floorY - cfg.World.ViewHeight + 40
	if g.bg == nil {
		g.bg = NewBackground(runtime.Seed+1, cfg.Background)
	}
	g.bg.Reset(runtime.Seed+1, g.cameraTopY, g.cameraTopY+cfg.World.ViewHeight)

	g.startY = spawnY
	g.bestY = spawnY
	g.lastMilestone = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.lastShotMs = -cfg.Combat.ShootCooldownMs
}

// SetCueListener installs a listener for power-up cue transitions.
// The platform layer uses this to drive visual effects.
func (g *Game) SetCueListener(l CueListener) {
	if g.buffs != nil {
		g.buffs.SetCueListener(l)
	}
}

// tickRate returns the simulation tick rate, defaulting to 60.
func (g *Game) tickRate() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	return 60
}

// nowMs converts the tick counter into the simulation clock in
// milliseconds. All durations (buffs, cooldowns, timers) are measured on
// this clock, so they pause with the game and replay deterministically.
func (g *Game) nowMs() int64 {
	return int64(g.tickCount) * 1000 / int64(g.tickRate())
}

// msToTicks converts a duration to ticks, rounding up so a deadline never
// fires early.
func (g *Game) msToTicks(ms int64) int {
	rate := int64(g.tickRate())
	return int((ms*rate + 999) / 1000)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	now := g.nowMs()

	state := g.buffs.Advance(now)

	g.applyMovement(in, state)
	if in.Has(core.ActionShoot) {
		g.shoot(now)
	}

	g.updateEntities()

	ev := g.resolver.Resolve(g.world, g.player, g.buffs)
	g.applyEvents(ev, now)

	g.sched.RunDue(g, g.tickCount)

	g.updateCamera()
	g.updateHeight()
	g.gen.MaybeSpawn(g.world, g.cameraTopY, g.heightMeters(), g.tickCount)
	g.sweeper.Sweep(g.world, g.cameraTopY, g.cameraBottomY())
	g.bg.Update(g.cameraTopY, g.cameraBottomY())

	if g.player.Bottom() > g.cameraBottomY()+g.cfg.World.DeathMargin {
		g.die()
	}

	return core.StepResult{State: g.State()}
}

// applyMovement integrates the player for one tick. The dominant power-up
// state overrides vertical motion: a propeller forces a steady ascent, a
// jetpack thrusts only while ascend is held, and everything else falls
// under gravity.
func (g *Game) applyMovement(in core.InputFrame, state MoveState) {
	p := g.player
	phys := g.cfg.Physics

	p.VX = 0
	if in.Has(core.ActionLeft) {
		p.VX = -phys.MoveSpeed
		p.Facing = -1
	}
	if in.Has(core.ActionRight) {
		p.VX = phys.MoveSpeed
		p.Facing = 1
	}

	switch state {
	case MovePropeller:
		p.VY = g.cfg.Powerups.PropellerAscent
	case MoveJetpack:
		if in.Has(core.ActionAscend) {
			p.VY = g.cfg.Powerups.JetpackAscent
		} else {
			g.applyGravity(p)
		}
	default:
		g.applyGravity(p)
	}

	p.PrevY = p.Y
	p.X += p.VX
	p.Y += p.VY

	// Horizontal wrap-around
	w := g.cfg.World.Width
	if p.X < 0 {
		p.X += w
	} else if p.X >= w {
		p.X -= w
	}
}

// applyGravity accelerates the player down, capped at terminal velocity.
func (g *Game) applyGravity(p *Player) {
	p.VY += g.cfg.Physics.Gravity
	if p.VY > g.cfg.Physics.MaxFallSpeed {
		p.VY = g.cfg.Physics.MaxFallSpeed
	}
}

// shoot fires a bullet upward if the cooldown has elapsed. The shooting
// pose and the bullet's miss-cleanup are deferred through the scheduler.
func (g *Game) shoot(now int64) {
	if now-g.lastShotMs < g.cfg.Combat.ShootCooldownMs {
		return
	}
	g.lastShotMs = now

	b := &Bullet{
		X:      g.player.X,
		Y:      g.player.Y - g.player.H/2,
		VY:     g.cfg.Combat.BulletSpeed,
		Active: true,
	}
	g.world.Bullets = append(g.world.Bullets, b)

	g.player.Shooting = true
	g.sched.After(g.tickCount+g.msToTicks(g.cfg.Combat.ShootPoseMs), func(g *Game) {
		g.player.Shooting = false
	})

	// The TTL closure captures the bullet; it may already be spent or
	// swept by the deadline, so it only ever clears the flag.
	g.sched.After(g.tickCount+g.msToTicks(g.cfg.Combat.BulletTTLMs), func(g *Game) {
		b.Active = false
	})
}

// updateEntities advances patrolling platforms, enemies and bullets.
// Patrols reverse at a fixed half-range from their spawn anchor.
func (g *Game) updateEntities() {
	rng := g.cfg.Combat.MovingRange
	for _, p := range g.world.Platforms {
		if !p.Active || p.Kind != PlatformMoving {
			continue
		}
		p.X += p.VX
		if p.X < p.OriginX-rng {
			p.X = p.OriginX - rng
			p.VX = -p.VX
		} else if p.X > p.OriginX+rng {
			p.X = p.OriginX + rng
			p.VX = -p.VX
		}
	}

	for _, e := range g.world.Enemies {
		if !e.Active {
			continue
		}
		e.X += e.VX
		if e.X < e.OriginX-rng {
			e.X = e.OriginX - rng
			e.VX = -e.VX
		} else if e.X > e.OriginX+rng {
			e.X = e.OriginX + rng
			e.VX = -e.VX
		}
	}

	for _, b := range g.world.Bullets {
		if b.Active {
			b.Y += b.VY
		}
	}
}

// applyEvents converts a collision pass into score and buff changes.
func (g *Game) applyEvents(ev Events, now int64) {
	g.score += ev.Stomps * g.cfg.Scoring.Stomp
	g.score += ev.BulletKill * g.cfg.Scoring.BulletKill

	for _, t := range ev.Collected {
		g.buffs.Collect(t, now)
		g.score += g.cfg.Scoring.Powerup
	}

	if ev.PlayerDied {
		g.die()
	}
}

// updateCamera scrolls the view up when the player climbs past the middle
// of the window. The camera never scrolls back down.
func (g *Game) updateCamera() {
	mid := g.cameraTopY + g.cfg.World.ViewHeight/2
	if g.player.Y < mid {
		g.cameraTopY = g.player.Y - g.cfg.World.ViewHeight/2
	}
}

// cameraBottomY returns the world y of the camera window's bottom edge.
func (g *Game) cameraBottomY() float64 {
	return g.cameraTopY + g.cfg.World.ViewHeight
}

// updateHeight tracks the player's best altitude and awards milestone
// bonuses as new height bands are reached.
func (g *Game) updateHeight() {
	if g.player.Y < g.bestY {
		g.bestY = g.player.Y
	}

	m := g.cfg.Scoring.MilestoneMeters
	if m <= 0 {
		return
	}
	for g.heightMeters() >= g.lastMilestone+m {
		g.lastMilestone += m
		g.score += g.cfg.Scoring.MilestonePoints
	}
}

// heightMeters returns the highest point reached, in display meters.
func (g *Game) heightMeters() int {
	return int((g.startY - g.bestY) / unitsPerMeter)
}

// die ends the run. Idempotent: a fall and an enemy hit in the same tick
// still end the game exactly once, and active cues always stop.
func (g *Game) die() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.player.Alive = false
	g.buffs.Reset()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Height:   g.heightMeters(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("skyhop", func() registry.Game {
		return New()
	})
}
