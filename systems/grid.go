package systems

import (
	cfg "github.com/automoto/landing/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrid tracks the hovered cell and starts a ripple on a click that no
// other system claimed. The grid only reacts once the intro overlay passes the
// pointer through and no modal is open. Must run AFTER the content systems.
func UpdateGrid(e *ecs.ECS) {
	g := getGrid(e)
	if g == nil || g.Layout == nil {
		return
	}
	input := getOrCreateInput(e)

	if !pointerFree(e) {
		g.Layout.SetHovered(-1)
		return
	}

	cell, ok := g.Layout.CellAt(input.CursorX, input.CursorY)
	if !ok {
		cell = -1
	}
	g.Layout.SetHovered(cell)

	if cell >= 0 && takeClick(input) {
		g.Ripple.Trigger(cell)
	}
}

// DrawGrid renders every cell: the eased fill colour scaled about the cell
// centre, then a hairline border.
func DrawGrid(e *ecs.ECS, screen *ebiten.Image) {
	g := getGrid(e)
	if g == nil || g.Layout == nil {
		return
	}
	now := Scheduler(e).Now()
	dims := g.Layout.Dimensions()
	cs := float32(g.Layout.CellSize())
	cells := g.Layout.Cells()
	hovered := g.Layout.Hovered()
	bg := g.Layout.Background()

	for i := range cells {
		style := &cells[i]
		row, col := dims.Coord(i)
		x, y := float32(col)*cs, float32(row)*cs

		opacity := style.Opacity
		if i == hovered {
			opacity *= cfg.Grid.HoverOpacity
		}
		c := style.Displayed(now, cfg.Grid.ColorTransition)
		if c != bg || opacity < 1 {
			size := cs * float32(style.Scale)
			inset := (cs - size) / 2
			vector.FillRect(screen, x+inset, y+inset, size, size, fade(c, opacity), false)
		}
		if i == hovered {
			vector.FillRect(screen, x, y, cs, cs, fade(cfg.Colors.GridLine, 1-cfg.Grid.HoverOpacity), false)
		}
		vector.StrokeRect(screen, x, y, cs, cs, cfg.Grid.CellInset, cfg.Colors.GridLine, false)
	}
}
