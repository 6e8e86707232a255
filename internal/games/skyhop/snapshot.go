package skyhop

import "math"

// Snapshot contains the complete simulation state for replay and
// determinism testing. Uses primitive types only for stable serialization.
// Float fields are stored as raw IEEE-754 bits so restoring a snapshot is
// lossless and a restored game stays in lockstep with the original.
type Snapshot struct {
	Tick          uint64
	Score         int
	Height        int
	LastMilestone int
	GameOver      bool
	Paused        bool

	// Player (float bits)
	PlayerX, PlayerY   int64
	PlayerVX, PlayerVY int64
	PlayerFacing       int
	PlayerAlive        bool

	// Camera and height anchors (float bits)
	CameraTopY int64
	StartY     int64
	BestY      int64
	LastShotMs int64

	// Entity state, flattened per group (float bits for coordinates).
	// Platform: X, Y, W, H, Kind, VX, OriginX, Active
	PlatformData []int64
	// Enemy: X, Y, W, H, HP, VX, OriginX, Active
	EnemyData []int64
	// Powerup: Type, X, Y, Active
	PowerupData []int64
	// Bullet: X, Y, VY, Active
	BulletData []int64

	// Buff state: Active, StartMs per buff type, in type order
	BuffData  []int64
	MoveState int

	// Generator: attempt cursor, topmost placed y, RNG state
	GenCursor    int64
	GenTopPlaced int64
	GenRNGState  uint64
}

func packFloat(f float64) int64 { return int64(math.Float64bits(f)) } //#nosec G115 -- bit-level conversion

func unpackFloat(v int64) float64 { return math.Float64frombits(uint64(v)) } //#nosec G115 -- bit-level conversion

func packBool(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
// Pending scheduler deadlines (shoot pose, bullet TTL) are not captured;
// a restored game starts with no armed timers.
func (g *Game) Snapshot() Snapshot {
	platformData := make([]int64, 0, len(g.world.Platforms)*8)
	for _, p := range g.world.Platforms {
		platformData = append(platformData,
			packFloat(p.X), packFloat(p.Y), packFloat(p.W), packFloat(p.H),
			int64(p.Kind), packFloat(p.VX), packFloat(p.OriginX), packBool(p.Active))
	}

	enemyData := make([]int64, 0, len(g.world.Enemies)*8)
	for _, e := range g.world.Enemies {
		enemyData = append(enemyData,
			packFloat(e.X), packFloat(e.Y), packFloat(e.W), packFloat(e.H),
			int64(e.HP), packFloat(e.VX), packFloat(e.OriginX), packBool(e.Active))
	}

	powerupData := make([]int64, 0, len(g.world.Powerups)*4)
	for _, p := range g.world.Powerups {
		powerupData = append(powerupData,
			int64(p.Type), packFloat(p.X), packFloat(p.Y), packBool(p.Active))
	}

	bulletData := make([]int64, 0, len(g.world.Bullets)*4)
	for _, b := range g.world.Bullets {
		bulletData = append(bulletData,
			packFloat(b.X), packFloat(b.Y), packFloat(b.VY), packBool(b.Active))
	}

	buffData := make([]int64, 0, int(BuffCount)*2)
	for t := BuffType(0); t < BuffCount; t++ {
		buffData = append(buffData, packBool(g.buffs.buffs[t].Active), g.buffs.buffs[t].StartMs)
	}

	return Snapshot{
		Tick:          uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:         g.score,
		Height:        g.heightMeters(),
		LastMilestone: g.lastMilestone,
		GameOver:      g.gameOver,
		Paused:        g.paused,

		PlayerX:      packFloat(g.player.X),
		PlayerY:      packFloat(g.player.Y),
		PlayerVX:     packFloat(g.player.VX),
		PlayerVY:     packFloat(g.player.VY),
		PlayerFacing: g.player.Facing,
		PlayerAlive:  g.player.Alive,

		CameraTopY: packFloat(g.cameraTopY),
		StartY:     packFloat(g.startY),
		BestY:      packFloat(g.bestY),
		LastShotMs: g.lastShotMs,

		PlatformData: platformData,
		EnemyData:    enemyData,
		PowerupData:  powerupData,
		BulletData:   bulletData,

		BuffData:  buffData,
		MoveState: int(g.buffs.state),

		GenCursor:    packFloat(g.gen.lastPlatformY),
		GenTopPlaced: packFloat(g.gen.topPlacedY),
		GenRNGState:  g.gen.rng.State(),
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.lastMilestone = snap.LastMilestone
	g.gameOver = snap.GameOver
	g.paused = snap.Paused

	g.player.X = unpackFloat(snap.PlayerX)
	g.player.Y = unpackFloat(snap.PlayerY)
	g.player.PrevY = g.player.Y
	g.player.VX = unpackFloat(snap.PlayerVX)
	g.player.VY = unpackFloat(snap.PlayerVY)
	g.player.Facing = snap.PlayerFacing
	g.player.Alive = snap.PlayerAlive
	g.player.Shooting = false

	g.cameraTopY = unpackFloat(snap.CameraTopY)
	g.startY = unpackFloat(snap.StartY)
	g.bestY = unpackFloat(snap.BestY)
	g.lastShotMs = snap.LastShotMs

	g.world.Platforms = g.world.Platforms[:0]
	for i := 0; i+7 < len(snap.PlatformData); i += 8 {
		d := snap.PlatformData[i:]
		g.world.Platforms = append(g.world.Platforms, &Platform{
			X: unpackFloat(d[0]), Y: unpackFloat(d[1]),
			W: unpackFloat(d[2]), H: unpackFloat(d[3]),
			Kind: PlatformKind(d[4]), VX: unpackFloat(d[5]),
			OriginX: unpackFloat(d[6]), Active: d[7] == 1,
		})
	}

	g.world.Enemies = g.world.Enemies[:0]
	for i := 0; i+7 < len(snap.EnemyData); i += 8 {
		d := snap.EnemyData[i:]
		g.world.Enemies = append(g.world.Enemies, &Enemy{
			X: unpackFloat(d[0]), Y: unpackFloat(d[1]),
			W: unpackFloat(d[2]), H: unpackFloat(d[3]),
			HP: int(d[4]), VX: unpackFloat(d[5]),
			OriginX: unpackFloat(d[6]), Active: d[7] == 1,
		})
	}

	g.world.Powerups = g.world.Powerups[:0]
	for i := 0; i+3 < len(snap.PowerupData); i += 4 {
		d := snap.PowerupData[i:]
		g.world.Powerups = append(g.world.Powerups, &Powerup{
			Type: BuffType(d[0]), X: unpackFloat(d[1]), Y: unpackFloat(d[2]), Active: d[3] == 1,
		})
	}

	g.world.Bullets = g.world.Bullets[:0]
	for i := 0; i+3 < len(snap.BulletData); i += 4 {
		d := snap.BulletData[i:]
		g.world.Bullets = append(g.world.Bullets, &Bullet{
			X: unpackFloat(d[0]), Y: unpackFloat(d[1]), VY: unpackFloat(d[2]), Active: d[3] == 1,
		})
	}

	for t := BuffType(0); t < BuffCount; t++ {
		idx := int(t) * 2
		if idx+1 < len(snap.BuffData) {
			g.buffs.buffs[t].Active = snap.BuffData[idx] == 1
			g.buffs.buffs[t].StartMs = snap.BuffData[idx+1]
		}
	}
	g.buffs.state = MoveState(snap.MoveState)

	g.gen.lastPlatformY = unpackFloat(snap.GenCursor)
	g.gen.topPlacedY = unpackFloat(snap.GenTopPlaced)
	g.gen.rng.SetState(snap.GenRNGState)

	g.sched.Reset()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastMilestone) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CameraTopY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BestY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MoveState)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GenCursor)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GenTopPlaced)  //#nosec G115 -- hash computation
	h = h*31 + snap.GenRNGState

	if snap.GameOver {
		h = h*31 + 1
	}

	for _, v := range snap.PlatformData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerupData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BuffData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
