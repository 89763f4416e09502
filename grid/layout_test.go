package grid

import (
	"image/color"
	"testing"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		cols, rows, n int
	}{
		{"exact", 500, 300, 10, 6, 60},
		{"floors partial cells", 549, 349, 10, 6, 60},
		{"smaller than one cell", 49, 1000, 0, 20, 0},
		{"zero viewport", 0, 0, 0, 0, 0},
		{"negative viewport", -100, 200, 0, 4, 0},
		{"zero width keeps rows", 0, 51, 0, 1, 0},
		{"zero height keeps columns", 120, 0, 2, 0, 0},
		{"typical laptop", 1440, 900, 28, 18, 504},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute(tt.w, tt.h, DefaultCellSize)
			if d.Columns != tt.cols || d.Rows != tt.rows || d.Total != tt.n {
				t.Errorf("Compute(%d, %d) = %+v, want {%d %d %d}", tt.w, tt.h, d, tt.cols, tt.rows, tt.n)
			}
			if d.Total != d.Columns*d.Rows {
				t.Errorf("Total %d != Columns*Rows %d", d.Total, d.Columns*d.Rows)
			}
		})
	}
}

func TestComputeInvariantSweep(t *testing.T) {
	for w := 0; w <= 260; w += 13 {
		for h := 0; h <= 260; h += 17 {
			d := Compute(w, h, 50)
			if d.Columns != w/50 || d.Rows != h/50 || d.Total != (w/50)*(h/50) || d.Total < 0 {
				t.Fatalf("Compute(%d, %d) = %+v", w, h, d)
			}
		}
	}
}

func TestComputeRejectsBadCellSize(t *testing.T) {
	for _, cs := range []int{0, -50} {
		if d := Compute(500, 500, cs); d != (Dimensions{}) {
			t.Errorf("Compute(500, 500, %d) = %+v, want empty", cs, d)
		}
	}
}

func TestCoordIndexRoundTrip(t *testing.T) {
	d := Compute(350, 200, 50) // 7 x 4
	for i := 0; i < d.Total; i++ {
		row, col := d.Coord(i)
		if row != i/7 || col != i%7 {
			t.Fatalf("Coord(%d) = (%d, %d)", i, row, col)
		}
		if got := d.Index(row, col); got != i {
			t.Fatalf("Index(Coord(%d)) = %d", i, got)
		}
	}
	if d.Index(4, 0) != -1 || d.Index(0, 7) != -1 || d.Index(-1, 0) != -1 {
		t.Error("Index accepted out-of-range coordinates")
	}
}

func TestDistance(t *testing.T) {
	d := Compute(250, 250, 50) // 5 x 5
	center := d.Index(2, 2)
	tests := []struct {
		row, col, want int
	}{
		{2, 2, 0},
		{0, 0, 4},
		{4, 4, 4},
		{2, 4, 2},
		{1, 2, 1},
	}
	for _, tt := range tests {
		if got := d.Distance(d.Index(tt.row, tt.col), center); got != tt.want {
			t.Errorf("Distance((%d,%d), center) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestCellAt(t *testing.T) {
	l := NewLayout(50, white)
	l.Resize(200, 100) // 4 x 2
	tests := []struct {
		x, y   float64
		want   int
		wantOK bool
	}{
		{0, 0, 0, true},
		{199, 99, 7, true},
		{75, 60, 5, true},
		{200, 10, -1, false},
		{-1, 10, -1, false},
	}
	for _, tt := range tests {
		got, ok := l.CellAt(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CellAt(%v, %v) = (%d, %v), want (%d, %v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLayoutResizeRebuildsArenaAndNotifies(t *testing.T) {
	l := NewLayout(50, white)
	var notified []Dimensions
	unsubscribe := l.Subscribe(func(d Dimensions) { notified = append(notified, d) })

	if !l.Resize(300, 200) {
		t.Fatal("first Resize reported no change")
	}
	if len(l.Cells()) != 24 {
		t.Fatalf("arena has %d cells, want 24", len(l.Cells()))
	}
	l.Cell(3).Color = color.RGBA{R: 1, A: 255}

	if l.Resize(320, 220) {
		t.Error("Resize to the same shape reported a change")
	}
	if l.Resize(400, 200) != true {
		t.Error("Resize to a new shape reported no change")
	}
	for i, c := range l.Cells() {
		if c != Resting(white) {
			t.Fatalf("cell %d not at rest after resize: %+v", i, c)
		}
	}
	if len(notified) != 2 {
		t.Errorf("subscriber notified %d times, want 2", len(notified))
	}

	unsubscribe()
	l.Resize(0, 0)
	if len(notified) != 2 {
		t.Error("unsubscribed callback still notified")
	}
	if l.Dimensions().Total != 0 || len(l.Cells()) != 0 {
		t.Errorf("degenerate viewport produced %+v", l.Dimensions())
	}
}

func TestHoverClearedOnResize(t *testing.T) {
	l := NewLayout(50, white)
	l.Resize(100, 100)
	l.SetHovered(3)
	if l.Hovered() != 3 {
		t.Fatalf("Hovered() = %d", l.Hovered())
	}
	l.SetHovered(9)
	if l.Hovered() != -1 {
		t.Errorf("out-of-range hover kept: %d", l.Hovered())
	}
	l.SetHovered(2)
	l.Resize(150, 100)
	if l.Hovered() != -1 {
		t.Errorf("hover survived resize: %d", l.Hovered())
	}
}
