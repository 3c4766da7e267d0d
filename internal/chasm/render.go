package chasm

import (
	"fmt"
	"math"
	"unicode/utf8"

	chasmcore "github.com/vovakirdan/tui-chasm/internal/chasm/core"
	"github.com/vovakirdan/tui-chasm/internal/core"
)

const (
	minScreenW = 48
	minScreenH = 16

	panelW = 20 // conveyor panel on the right
	hudH   = 2  // status lines at the top
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderChasm(dst)
	g.renderPanel(dst)

	switch {
	case g.finished:
		g.renderOverlay(dst, "Descent complete!",
			fmt.Sprintf("Final depth: %.1f  (R to restart)", float64(g.score)/10))
	case g.gameOver:
		g.renderOverlay(dst, "Run over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	left := "∞"
	if g.mode == ModeStandard {
		left = fmt.Sprintf("%d", g.blocksLeft+len(g.conveyor))
	}
	hud := fmt.Sprintf(" %s — depth: %.1f  deepest: %d  blocks: %s",
		g.Title(), g.sim.CenterOfMass(), g.sim.MaxDepth(), left)
	dst.DrawText(0, 0, hud)

	if g.flash != "" {
		dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(g.flash)-2, 0, g.flash, core.ColorBrightYellow)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderChasm draws the playfield: terrain, stable blocks, falling chunks,
// the depth meter and the build cursor.
func (g *Game) renderChasm(dst *core.Screen) {
	simCfg := g.sim.Config()
	wall := simCfg.WallColumn()

	viewW := dst.Width() - panelW
	viewH := dst.Height() - hudH
	centerX := viewW / 2
	topRow := g.cursor.Y - viewH/2

	toScreen := func(c chasmcore.Coord) (int, int, bool) {
		sx := centerX + c.X
		sy := hudH + (c.Y - topRow)
		visible := sx >= 0 && sx < viewW && sy >= hudH && sy < dst.Height()
		return sx, sy, visible
	}

	// Terrain
	for sy := hudH; sy < dst.Height(); sy++ {
		wy := topRow + (sy - hudH)
		if wy < 0 {
			continue // open sky above the ground line
		}
		for sx := 0; sx < viewW; sx++ {
			wx := sx - centerX
			switch {
			case chasmcore.Abs(wx) > wall:
				dst.SetCell(sx, sy, '░', core.ColorGray)
			case chasmcore.Abs(wx) == wall:
				dst.SetCell(sx, sy, '▒', core.ColorGray)
			}
		}
	}

	// Depth meter: marks the structure's center of mass.
	comRow := int(math.Round(g.sim.CenterOfMass()))
	if _, sy, ok := toScreen(chasmcore.C(-wall, comRow)); ok {
		dst.SetCell(0, sy, '›', core.ColorBrightYellow)
	}

	// Stable blocks
	g.sim.EachStable(func(c chasmcore.Coord, b *chasmcore.Block) {
		if sx, sy, ok := toScreen(c); ok {
			r, col := blockGlyph(b)
			dst.SetCell(sx, sy, r, col)
		}
	})

	// Falling chunks, at their current offset
	for _, ch := range g.sim.Chunks() {
		off := int(math.Round(ch.Progress))
		for _, m := range ch.Blocks {
			if sx, sy, ok := toScreen(m.Pos.Add(0, off)); ok {
				r, _ := blockGlyph(m.Block)
				dst.SetCell(sx, sy, r, core.ColorBrightRed)
			}
		}
	}

	// Build cursor, with a placement ghost when a block is held
	if sx, sy, ok := toScreen(g.cursor); ok {
		if b := g.heldBlock(); b != nil {
			r, _ := blockGlyph(b)
			col := core.ColorBrightRed
			if g.sim.CanPlace(g.cursor, b) {
				col = core.ColorBrightGreen
			}
			dst.SetCell(sx, sy, r, col)
		} else {
			dst.SetCell(sx, sy, '+', core.ColorBrightWhite)
		}
	}
}

// renderPanel draws the conveyor and held-block detail on the right.
func (g *Game) renderPanel(dst *core.Screen) {
	x0 := dst.Width() - panelW
	dst.DrawVLine(x0, hudH, dst.Height()-hudH, '│')

	dst.DrawTextColor(x0+2, hudH, "CONVEYOR", core.ColorBrightCyan)

	row := hudH + 2
	for i, b := range g.conveyor {
		if row >= dst.Height()-6 {
			break
		}
		marker := "  "
		if i == g.held {
			marker = "> "
		}
		r, col := blockGlyph(b)
		dst.DrawText(x0+2, row, marker)
		dst.SetCell(x0+4, row, r, col)
		dst.DrawText(x0+6, row, b.Kind.String())
		row++
	}
	if len(g.conveyor) == 0 {
		dst.DrawText(x0+2, row, "(empty)")
		if g.mode == ModeStandard {
			dst.DrawTextColor(x0+2, row+1, "F to finish", core.ColorBrightGreen)
		}
	}

	// Held block connector diagram
	if b := g.heldBlock(); b != nil {
		g.renderConnectors(dst, b, x0+2, dst.Height()-5)
	}
}

// renderConnectors draws a 3x3 side diagram of the held block.
// Protruding connectors are filled glyphs, recessed ones hollow.
func (g *Game) renderConnectors(dst *core.Screen, b *chasmcore.Block, x, y int) {
	kindRune, kindCol := blockGlyph(b)
	dst.SetCell(x+1, y+1, kindRune, kindCol)

	put := func(d chasmcore.Dir, dx, dy int) {
		c := b.Connector(d)
		if c == nil {
			dst.SetCell(x+dx, y+dy, '·', core.ColorGray)
			return
		}
		dst.SetCell(x+dx, y+dy, connectorGlyph(*c), core.ColorBrightWhite)
	}
	put(chasmcore.DirNorth, 1, 0)
	put(chasmcore.DirEast, 2, 1)
	put(chasmcore.DirSouth, 1, 2)
	put(chasmcore.DirWest, 0, 1)

	dst.DrawText(x+4, y+1, "Q/E rotate")
}

// blockGlyph returns the rune and color for a block kind, shifting toward
// red as damage accumulates.
func blockGlyph(b *chasmcore.Block) (rune, core.Color) {
	var r rune
	var col core.Color
	switch b.Kind {
	case chasmcore.KindScaffold:
		r, col = '▒', core.ColorYellow
	case chasmcore.KindSolid:
		r, col = '█', core.ColorWhite
	case chasmcore.KindAnchor:
		r, col = '◆', core.ColorBrightCyan
	default:
		r, col = '?', core.ColorDefault
	}
	if b.Damage*2 > b.Resilience() {
		col = core.ColorBrightRed
	}
	return r, col
}

// connectorGlyph returns the rune for a connector shape and protrusion.
func connectorGlyph(c chasmcore.Connector) rune {
	switch c.Shape {
	case chasmcore.ShapeSquare:
		if c.SticksOut {
			return '■'
		}
		return '□'
	case chasmcore.ShapeRound:
		if c.SticksOut {
			return '●'
		}
		return '○'
	case chasmcore.ShapePointy:
		if c.SticksOut {
			return '◆'
		}
		return '◇'
	default:
		return '?'
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := utf8.RuneCountInString(line1)
	if n := utf8.RuneCountInString(line2); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	runes := []rune(text)
	x := (dst.Width() - len(runes)) / 2
	for i, ch := range runes {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
