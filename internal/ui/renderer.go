package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/menu"
	"github.com/samdwyer/necronix/internal/view"
	"github.com/samdwyer/necronix/internal/world"
)

const (
	title = "NECRONIX"

	// Gap between the map and the side panel.
	panelGap = 2
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleFocus    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(64, 121, 140))
	styleBackdrop = tcell.StyleDefault.Background(tcell.NewRGBColor(1, 22, 29))
)

var helpLines = []string{
	"Main menu",
	"  Up/Down, Tab   move focus",
	"  Enter          confirm",
	"  Esc, q         quit",
	"",
	"Game",
	"  Tab            switch Unit/Log tab",
	"  Up/Down, j/k   select unit",
	"  r              send selected unit somewhere new",
	"  y              copy the log (Log tab)",
	"  Esc, q         quit",
}

var creditLines = []string{
	"Necronix",
	"",
	"Tileset: 16x16 RogueYun (AgmEdit)",
	"Terminal rendering: tcell",
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame for the given snapshot.
func (r *Renderer) Render(v view.View) {
	r.screen.Clear()

	switch v.Menu.Screen {
	case menu.ScreenMain:
		r.renderMainMenu(v.Menu.Focus)
	case menu.ScreenHelp:
		r.renderLines("Help", helpLines)
	case menu.ScreenCredits:
		r.renderLines("Credits", creditLines)
	case menu.ScreenGame:
		r.renderGame(v)
	}

	r.screen.Show()
}

func (r *Renderer) renderMainMenu(focus menu.Button) {
	width, height := r.screen.Size()
	top := height/2 - len(menu.Buttons) - 1

	r.drawText((width-uniseg.StringWidth(title))/2, top, width, title, styleTitle)
	for i, b := range menu.Buttons {
		label := fmt.Sprintf("  %-9s", b.String())
		style := styleText
		if b == focus {
			style = styleFocus
		}
		r.drawText((width-uniseg.StringWidth(label))/2, top+2+i, width, label, style)
	}
}

func (r *Renderer) renderLines(heading string, lines []string) {
	width, _ := r.screen.Size()
	r.drawText(1, 0, width-1, heading, styleTitle)
	for i, line := range lines {
		r.drawText(1, 2+i, width-1, line, styleText)
	}
	r.drawText(1, 3+len(lines), width-1, "Esc to go back", styleDim)
}

func (r *Renderer) renderGame(v view.View) {
	if v.Map == nil {
		return
	}
	r.drawMap(v.Map)
	for _, e := range v.Props {
		r.drawEntity(e)
	}
	for _, e := range v.Units {
		r.drawEntity(e)
	}

	width, height := r.screen.Size()
	x := v.Map.Width + panelGap
	panelWidth := width - x
	if panelWidth <= 0 {
		return
	}

	r.drawTabs(x, v.Menu.Tab, v.Tick)
	switch v.Menu.Tab {
	case menu.TabUnit:
		r.drawUnitList(x, 2, panelWidth, height-2, v)
	case menu.TabLog:
		r.drawLog(x, 2, panelWidth, height-2, v.Log)
	}
}

func (r *Renderer) drawMap(m *world.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.GetTile(x, y)
			r.screen.SetContent(x, y, tile.Rune(), nil, tileStyle(tile))
		}
	}
}

func (r *Renderer) drawEntity(e view.Entity) {
	style := styleBackdrop.Foreground(rgbColor(e.Renderable.Color)).Bold(true)
	r.screen.SetContent(e.Pos.X, e.Pos.Y, rune(e.Renderable.Glyph), nil, style)
}

func (r *Renderer) drawTabs(x int, active menu.Tab, tick uint64) {
	col := x
	for _, t := range menu.Tabs {
		label := " " + t.String() + " "
		style := styleDim
		if t == active {
			style = styleFocus
		}
		col += r.drawText(col, 0, len(label), label, style) + 1
	}
	r.drawText(col+1, 0, 16, fmt.Sprintf("tick %d", tick), styleDim)
}

func (r *Renderer) drawUnitList(x, y, width, height int, v view.View) {
	for i, u := range v.Units {
		if i >= height {
			return
		}
		marker := "  "
		style := styleText
		if i == v.Selected {
			marker = "> "
			style = styleFocus
		}
		line := fmt.Sprintf("%s%c %-6s %2d:%-2d %s", marker, rune(u.Renderable.Glyph), u.Name, u.Pos.X, u.Pos.Y, u.Mission)
		r.drawText(x, y+i, width, line, style)
	}
}

func (r *Renderer) drawLog(x, y, width, height int, lines []string) {
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for i, line := range lines {
		r.drawText(x, y+i, width, line, styleText)
	}
}

// drawText writes s starting at (x, y), clipping at maxWidth cells.
// Returns the number of cells used.
func (r *Renderer) drawText(x, y, maxWidth int, s string, style tcell.Style) int {
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > maxWidth {
			break
		}
		runes := g.Runes()
		r.screen.SetContent(x+used, y, runes[0], runes[1:], style)
		used += w
	}
	return used
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileObstacle:
		return styleBackdrop.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return styleBackdrop.Foreground(tcell.NewRGBColor(200, 200, 200))
	default:
		return styleBackdrop
	}
}

func rgbColor(c entity.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
