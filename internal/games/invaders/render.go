package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar  = '▲'
	LaserChar   = '|'
	EnemyChar   = 'W'
	BorderHoriz = '─'
)

// ExplosionGlyphs are the explosion sheet frames, first to last.
var ExplosionGlyphs = []rune(".oO@*+:'")

// Minimum terminal size for a readable field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// hudRows is the number of rows above the field.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.sim == nil {
		return
	}

	view := g.sim.View()
	g.renderHUD(dst, view)

	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	for _, e := range view.Entities {
		x, y, ok := project(view, field, e.Pos)
		if !ok {
			continue
		}
		r, c := glyph(e)
		dst.SetColored(x, y, r, c)
	}

	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws kills, population and tick.
func (g *Game) renderHUD(dst *core.Screen, view sim.View) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Kills: %d", view.Kills), core.ColorBrightYellow)

	dst.DrawTextCentered(0, fmt.Sprintf("Enemies: %d/%d", view.Population, view.Cap))

	tickText := fmt.Sprintf("Tick: %d", view.Tick)
	dst.DrawTextColored(dst.Width()-len(tickText)-1, 0, tickText, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, core.ColorGray)
}

// project maps a play-area position (origin at center, y up) to a cell in
// field. Positions outside the area are not drawn.
func project(view sim.View, field core.Rect, pos core.Vec2) (int, int, bool) {
	u := (pos.X + view.Width/2) / view.Width
	v := (view.Height/2 - pos.Y) / view.Height
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return 0, 0, false
	}
	return field.X + int(u*float64(field.W)), field.Y + int(v*float64(field.H)), true
}

func glyph(e sim.EntityView) (rune, core.Color) {
	switch e.Kind {
	case sim.KindPlayer:
		return PlayerChar, core.ColorCyan
	case sim.KindLaser:
		return LaserChar, core.ColorBrightYellow
	case sim.KindEnemy:
		return EnemyChar, core.ColorBrightGreen
	case sim.KindExplosion:
		return explosionGlyph(e.Frame, e.Frames)
	default:
		return '?', core.ColorDefault
	}
}

// explosionGlyph spreads the sheet's frames over the glyph strip, so any
// frame count renders start to finish.
func explosionGlyph(frame, frames int) (rune, core.Color) {
	if frames <= 0 {
		return ExplosionGlyphs[0], core.ColorOrange
	}
	i := core.Clamp(frame*len(ExplosionGlyphs)/frames, 0, len(ExplosionGlyphs)-1)
	c := core.ColorBrightRed
	if i >= len(ExplosionGlyphs)/2 {
		c = core.ColorOrange
	}
	return ExplosionGlyphs[i], c
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
