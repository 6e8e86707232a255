package skyhop

import (
	"fmt"

	"github.com/arcadehop/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '@'
	PlayerShootChar = '^'
	PlatformChar    = '═'
	MovingChar      = '─'
	BreakableChar   = '╌'
	EnemyChar       = 'Ω'
	BulletChar      = '|'
	CloudChar       = '·'
)

// toCell projects a world coordinate into the camera window and scales it
// onto the terminal cell grid.
func (g *Game) toCell(dst *core.Screen, wx, wy float64) (int, int) {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.ViewHeight
	return int(wx * sx), int((wy - g.cameraTopY) * sy)
}

// spanCells returns the horizontal cell span of a world-space width at x.
func (g *Game) spanCells(dst *core.Screen, wx, ww float64) (int, int) {
	sx := float64(dst.Width()) / g.cfg.World.Width
	x0 := int((wx - ww/2) * sx)
	x1 := int((wx + ww/2) * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBackground(dst)
	g.drawPlatforms(dst)
	g.drawEnemies(dst)
	g.drawPowerups(dst)
	g.drawBullets(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Height: %dm  |  Press R to restart", g.score, g.heightMeters()))
	}
}

// drawBackground scatters cloud dots deterministically per tile row, so the
// backdrop scrolls with the world instead of flickering.
func (g *Game) drawBackground(dst *core.Screen) {
	for _, row := range g.bg.Rows() {
		_, cy := g.toCell(dst, 0, row.Y)
		if cy < 0 || cy >= dst.Height() {
			continue
		}
		pattern := row.Pattern
		for i := 0; i < 3; i++ {
			pattern = pattern*6364136223846793005 + 1442695040888963407
			cx := int(pattern % uint64(dst.Width())) //#nosec G115 -- width is positive
			dst.SetCell(cx, cy, CloudChar, core.ColorGray)
		}
	}
}

func (g *Game) drawPlatforms(dst *core.Screen) {
	for _, p := range g.world.Platforms {
		if !p.Active {
			continue
		}
		_, cy := g.toCell(dst, p.X, p.Y)
		x0, x1 := g.spanCells(dst, p.X, p.W)

		ch := PlatformChar
		col := core.ColorGreen
		switch p.Kind {
		case PlatformMoving:
			ch = MovingChar
			col = core.ColorCyan
		case PlatformBreakable:
			ch = BreakableChar
			col = core.ColorYellow
		}
		for x := x0; x < x1; x++ {
			dst.SetCell(x, cy, ch, col)
		}
	}
}

func (g *Game) drawEnemies(dst *core.Screen) {
	for _, e := range g.world.Enemies {
		if !e.Active {
			continue
		}
		cx, cy := g.toCell(dst, e.X, e.Y)
		dst.SetCell(cx, cy, EnemyChar, core.ColorRed)
	}
}

func (g *Game) drawPowerups(dst *core.Screen) {
	for _, p := range g.world.Powerups {
		if !p.Active {
			continue
		}
		cx, cy := g.toCell(dst, p.X, p.Y)
		dst.SetCell(cx, cy, p.Type.Glyph(), core.ColorBrightMagenta)
	}
}

func (g *Game) drawBullets(dst *core.Screen) {
	for _, b := range g.world.Bullets {
		if !b.Active {
			continue
		}
		cx, cy := g.toCell(dst, b.X, b.Y)
		dst.SetCell(cx, cy, BulletChar, core.ColorBrightYellow)
	}
}

// drawPlayer renders the hopper with a glyph per movement state, so the
// active power-up reads at a glance.
func (g *Game) drawPlayer(dst *core.Screen) {
	cx, cy := g.toCell(dst, g.player.X, g.player.Y)

	ch := PlayerChar
	col := core.ColorBrightWhite
	switch g.buffs.State() {
	case MovePropeller:
		ch = 'P'
		col = core.ColorBrightCyan
	case MoveJetpack:
		ch = 'J'
		col = core.ColorOrange
	case MoveSpring:
		col = core.ColorBrightGreen
	}
	if g.player.Shooting {
		ch = PlayerShootChar
	}
	dst.SetCell(cx, cy, ch, col)
}

// drawHUD prints score, height and active buff countdowns along the top.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Height: %dm ", g.score, g.heightMeters())
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	for i, line := range g.buffs.StatusLines(g.nowMs()) {
		dst.DrawTextColored(1, 1+i, line, core.ColorBrightMagenta)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
