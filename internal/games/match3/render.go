package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
)

const (
	cellWidth = 3 // bracket, glyph, bracket
	hudHeight = 3
	footerH   = 2 // message line and controls line
)

// glyphs are the tile symbols for the first kinds; later kinds use letters.
var glyphs = []rune("●◆▲■★♥♣♠")

func glyph(kind int) rune {
	if kind < len(glyphs) {
		return glyphs[kind]
	}
	return rune('A' + kind - len(glyphs))
}

// layout places the board on the screen. Row 0 of the board is drawn at
// the bottom of the box.
type layout struct {
	box    core.Rect // border included
	width  int
	height int
	fits   bool
}

func newLayout(width, height, screenW, screenH int) layout {
	boxW := width*cellWidth + 2
	boxH := height + 2
	l := layout{
		box:    core.NewRect((screenW-boxW)/2, hudHeight, boxW, boxH),
		width:  width,
		height: height,
	}
	l.fits = boxW <= screenW && hudHeight+boxH+footerH <= screenH
	return l
}

// cellOrigin returns the screen position of the left bracket of a cell.
func (l layout) cellOrigin(p engine.Pos) core.Point {
	return core.Point{
		X: l.box.X + 1 + p.Col*cellWidth,
		Y: l.box.Y + 1 + (l.height - 1 - p.Row),
	}
}

// cellAt maps a screen point to the board cell under it.
func (l layout) cellAt(pt core.Point) (engine.Pos, bool) {
	inner := core.NewRect(l.box.X+1, l.box.Y+1, l.width*cellWidth, l.height)
	if !inner.Contains(pt) {
		return engine.Pos{}, false
	}
	col := (pt.X - inner.X) / cellWidth
	row := l.height - 1 - (pt.Y - inner.Y)
	return engine.P(col, row), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.box.W, hudHeight+g.layout.box.H+footerH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	box := g.layout.box
	dst.DrawTextCentered(0, "MATCH 3")

	dst.DrawText(box.X, 1, fmt.Sprintf("Score: %d", g.view.score))

	info := fmt.Sprintf("Moves: %d", g.eng.Swaps())
	if g.view.combo > 1 {
		info = fmt.Sprintf("Combo x%d  %s", g.view.combo, info)
	}
	x := box.Right() - len(info)
	if x < box.X {
		x = box.X
	}
	dst.DrawText(x, 1, info)
}

func (g *Game) renderBoard(dst *core.Screen) {
	l := g.layout
	dst.DrawBox(l.box, core.ColorGray)

	hintPos, hinting := g.hintPos()

	for row, n := 0, l.height; row < n; row++ {
		for col, n := 0, l.width; col < n; col++ {
			p := engine.P(col, row)
			o := g.layout.cellOrigin(p)
			c := g.view.at(p)

			switch {
			case c.kind < 0:
				dst.SetColored(o.X+1, o.Y, '·', core.ColorGray)
			case c.flash:
				dst.SetColored(o.X+1, o.Y, '*', core.ColorBrightWhite)
			default:
				dst.SetColored(o.X+1, o.Y, glyph(c.kind), core.KindColor(c.kind))
			}

			var left, right rune
			color := core.ColorWhite
			switch {
			case g.hasSel && g.selected == p:
				left, right = '{', '}'
				color = core.ColorBrightYellow
			case g.cursor == p && !g.gameOver:
				left, right = '[', ']'
			case hinting && hintPos == p:
				left, right = '(', ')'
				color = core.ColorBrightCyan
			default:
				continue
			}
			dst.SetColored(o.X, o.Y, left, color)
			dst.SetColored(o.X+2, o.Y, right, color)
		}
	}
}

// hintPos finds the hinted tile on the displayed board.
func (g *Game) hintPos() (engine.Pos, bool) {
	if !g.showHint || g.busy() {
		return engine.Pos{}, false
	}
	for row, n := 0, g.view.height; row < n; row++ {
		for col, n := 0, g.view.width; col < n; col++ {
			p := engine.P(col, row)
			if c := g.view.at(p); c.kind >= 0 && c.id == g.hint {
				return p, true
			}
		}
	}
	return engine.Pos{}, false
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.layout.box.Bottom()
	if g.message != "" {
		dst.DrawTextCentered(y, g.message)
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

func (g *Game) renderOverlays(dst *core.Screen) {
	center := g.layout.box.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, center, "PAUSED", "Press P to resume")
	case g.gameOver && !g.busy():
		g.drawOverlay(dst, center, "NO MOVES LEFT",
			fmt.Sprintf("Score: %d", g.eng.Score()),
			fmt.Sprintf("Best combo: x%d", g.eng.BestCombo()),
			"Press R to restart")
	}
}

func (g *Game) drawOverlay(dst *core.Screen, center core.Point, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(center.X-(maxLen+4)/2, center.Y-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(center.X-len([]rune(line))/2, box.Y+1+i, line)
	}
}
