package assets

import (
	"image"
	"testing"
)

func TestFrameRects(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		size   int
		want   int
	}{
		{"single row", image.Rect(0, 0, 1024, 256), 256, 4},
		{"grid", image.Rect(0, 0, 512, 512), 256, 4},
		{"partial edges dropped", image.Rect(0, 0, 600, 300), 256, 2},
		{"smaller than a frame", image.Rect(0, 0, 100, 100), 256, 0},
		{"zero size", image.Rect(0, 0, 100, 100), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameRects(tt.bounds, tt.size)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFrameRectsOrder(t *testing.T) {
	got := FrameRects(image.Rect(0, 0, 20, 20), 10)
	want := []image.Rectangle{
		image.Rect(0, 0, 10, 10),
		image.Rect(10, 0, 20, 10),
		image.Rect(0, 10, 10, 20),
		image.Rect(10, 10, 20, 20),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}
