// Package grid tiles the viewport with fixed-size cells and animates ripples
// across them.
package grid

import "image/color"

// DefaultCellSize is the edge length of one cell in logical pixels.
const DefaultCellSize = 50

// Dimensions is the grid shape for one viewport size. Total is always
// Columns*Rows.
type Dimensions struct {
	Columns int
	Rows    int
	Total   int
}

// Compute tiles a width x height viewport with cellSize cells. Each axis is
// clamped at zero on its own, so a zero width still reports its rows.
func Compute(width, height, cellSize int) Dimensions {
	if cellSize <= 0 {
		return Dimensions{}
	}
	cols := max(width, 0) / cellSize
	rows := max(height, 0) / cellSize
	return Dimensions{Columns: cols, Rows: rows, Total: cols * rows}
}

// Contains reports whether i addresses a cell of this grid.
func (d Dimensions) Contains(i int) bool {
	return i >= 0 && i < d.Total
}

// Coord maps a cell index to its row and column.
func (d Dimensions) Coord(i int) (row, col int) {
	if d.Columns == 0 {
		return 0, 0
	}
	return i / d.Columns, i % d.Columns
}

// Index maps a row and column to a cell index, or -1 when out of range.
func (d Dimensions) Index(row, col int) int {
	if row < 0 || col < 0 || row >= d.Rows || col >= d.Columns {
		return -1
	}
	return row*d.Columns + col
}

// CellAt resolves a pointer position to the cell under it.
func (d Dimensions) CellAt(x, y float64, cellSize int) (int, bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return -1, false
	}
	i := d.Index(int(y)/cellSize, int(x)/cellSize)
	return i, i >= 0
}

// Distance is the Manhattan distance between two cells in grid coordinates.
func (d Dimensions) Distance(a, b int) int {
	ar, ac := d.Coord(a)
	br, bc := d.Coord(b)
	return abs(ar-br) + abs(ac-bc)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Layout owns the current Dimensions and the flat arena of cell styles. The
// arena is rebuilt wholesale whenever the dimensions change.
type Layout struct {
	cellSize   int
	background color.RGBA
	dims       Dimensions
	cells      []Style
	hovered    int

	nextSub     int
	subscribers map[int]func(Dimensions)
}

// NewLayout returns an empty layout. Call Resize with the viewport size.
func NewLayout(cellSize int, background color.RGBA) *Layout {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Layout{
		cellSize:    cellSize,
		background:  background,
		hovered:     -1,
		subscribers: make(map[int]func(Dimensions)),
	}
}

// Resize recomputes the grid for a new viewport. When the shape changes every
// cell is recreated at rest and subscribers are notified. It reports whether
// the shape changed.
func (l *Layout) Resize(width, height int) bool {
	dims := Compute(width, height, l.cellSize)
	if dims == l.dims && len(l.cells) == dims.Total {
		return false
	}
	l.dims = dims
	l.cells = make([]Style, dims.Total)
	l.ResetAll()
	l.hovered = -1
	for _, fn := range l.subscribers {
		fn(dims)
	}
	return true
}

// Subscribe registers fn for shape changes and returns its release func.
func (l *Layout) Subscribe(fn func(Dimensions)) (unsubscribe func()) {
	id := l.nextSub
	l.nextSub++
	l.subscribers[id] = fn
	return func() { delete(l.subscribers, id) }
}

// Dimensions returns the current grid shape.
func (l *Layout) Dimensions() Dimensions {
	return l.dims
}

// CellSize returns the cell edge length.
func (l *Layout) CellSize() int {
	return l.cellSize
}

// Background returns the resting cell colour.
func (l *Layout) Background() color.RGBA {
	return l.background
}

// SetBackground changes the resting colour and resets every cell to it.
func (l *Layout) SetBackground(c color.RGBA) {
	l.background = c
	l.ResetAll()
}

// Cells exposes the style arena. Index i is cell i.
func (l *Layout) Cells() []Style {
	return l.cells
}

// Cell returns the style of cell i, or nil when out of range.
func (l *Layout) Cell(i int) *Style {
	if !l.dims.Contains(i) || i >= len(l.cells) {
		return nil
	}
	return &l.cells[i]
}

// ResetAll puts every cell back to its resting style immediately.
func (l *Layout) ResetAll() {
	rest := Resting(l.background)
	for i := range l.cells {
		l.cells[i] = rest
	}
}

// SetHovered marks the cell under the pointer; -1 clears it.
func (l *Layout) SetHovered(i int) {
	if !l.dims.Contains(i) {
		i = -1
	}
	l.hovered = i
}

// Hovered returns the hovered cell or -1.
func (l *Layout) Hovered() int {
	return l.hovered
}

// CellAt resolves a pointer position to a cell of the current grid.
func (l *Layout) CellAt(x, y float64) (int, bool) {
	return l.dims.CellAt(x, y, l.cellSize)
}
