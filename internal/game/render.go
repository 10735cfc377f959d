package game

import (
	"fmt"

	"github.com/gavrojas/reef-adventures-game/internal/core"
)

// hudRows is how many top rows the HUD occupies.
const hudRows = 2

// Render draws the current game state into the screen buffer. The
// simulation world is projected onto the playfield below the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)

	for i := range g.pearls {
		p := &g.pearls[i]
		if p.Collected {
			continue
		}
		x, y := g.project(dst, p.Pos)
		dst.SetColored(x, y, PearlChar, core.ColorWhite)
	}

	for i := range g.powerups {
		p := &g.powerups[i]
		if p.Collected {
			continue
		}
		x, y := g.project(dst, p.Pos)
		glyph := BoostChar
		color := core.ColorYellow
		if p.Kind == PowerShield {
			glyph = ShieldChar
			color = core.ColorCyan
		}
		dst.SetColored(x, y, glyph, color)
	}

	for i := range g.bubbles {
		b := &g.bubbles[i]
		if !b.Active {
			continue
		}
		x, y := g.project(dst, b.Pos)
		dst.SetColored(x, y, BubbleChar, core.ColorCyan)
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		x, y := g.project(dst, e.Pos)
		dst.SetColored(x, y, enemyGlyph(e), enemyColor(e.Variant))
	}

	px, py := g.project(dst, g.player.Pos)
	glyph := PlayerRightChar
	if g.player.Facing < 0 {
		glyph = PlayerLeftChar
	}
	color := core.ColorOrange
	switch {
	case g.player.ShieldActive():
		color = core.ColorCyan
	case g.player.InvulnLeft > 0 && g.tickCount%10 < 5:
		// Blink while invulnerable.
		color = core.ColorGray
	}
	dst.SetColored(px, py, glyph, color)

	if g.banner != "" {
		dst.DrawTextCenteredColored(hudRows+1, g.banner, core.ColorYellow)
	}

	if g.paused {
		drawOverlayPanel(dst, 12, 3)
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
	if g.gameOver {
		drawOverlayPanel(dst, 33, 5)
		dst.DrawTextCenteredColored(dst.Height()/2, "GAME OVER", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Final score: %d", g.score))
		dst.DrawTextCentered(dst.Height()/2+2, "Press R to restart, Q to quit")
	}
}

// drawOverlayPanel clears and frames a centered box for overlay text.
// The first text row lands on dst.Height()/2.
func drawOverlayPanel(dst *core.Screen, w, h int) {
	box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-1, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
}

// renderHUD draws score, level, zone and health on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d  Level: %d (%s)", g.score, g.level, g.Zone())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	hearts := ""
	for i := 0; i < g.player.Health; i++ {
		hearts += "♥"
	}
	dst.DrawTextColored(dst.Width()-g.cfg.Player.Health*2-1, 0, hearts, core.ColorRed)

	status := ""
	if g.player.BoostActive() {
		status += "BOOST "
	}
	if g.player.ShieldActive() {
		status += "SHIELD"
	}
	dst.DrawTextColored(1, 1, status, core.ColorYellow)
	dst.DrawHLine(0, hudRows, dst.Width(), '─')
}

// project maps a world position to a screen cell inside the playfield.
func (g *Game) project(dst *core.Screen, p core.Vec2) (int, int) {
	fieldH := dst.Height() - hudRows - 1
	x := int(p.X / g.cfg.World.Width * float64(dst.Width()))
	y := hudRows + 1 + int(p.Y/g.cfg.World.Height*float64(fieldH))
	return core.Clamp(x, 0, dst.Width()-1), core.Clamp(y, hudRows+1, dst.Height()-1)
}

func enemyGlyph(e *Enemy) rune {
	switch e.Variant {
	case VariantJellyfish:
		return JellyfishChar
	case VariantCrab:
		return CrabChar
	default:
		if e.Dir > 0 {
			return SharkRightChar
		}
		return SharkChar
	}
}

func enemyColor(v Variant) core.Color {
	switch v {
	case VariantJellyfish:
		return core.ColorMagenta
	case VariantCrab:
		return core.ColorCoral
	default:
		return core.ColorGray
	}
}
