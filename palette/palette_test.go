package palette

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestNewPickerRejectsEmptyPalette(t *testing.T) {
	if _, err := NewPicker(nil, nil); !errors.Is(err, ErrEmptyPalette) {
		t.Fatalf("NewPicker(nil) error = %v, want ErrEmptyPalette", err)
	}
}

func TestPickStaysInPaletteAndCoversIt(t *testing.T) {
	colors := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	p, err := NewPicker(colors, rand.NewPCG(1, 2))
	if err != nil {
		t.Fatal(err)
	}

	seen := map[color.RGBA]int{}
	for i := 0; i < 3000; i++ {
		c := p.Pick()
		if !p.Contains(c) {
			t.Fatalf("Pick() = %v, not in palette", c)
		}
		seen[c]++
	}
	for _, c := range colors {
		if seen[c] < 800 {
			t.Errorf("colour %v picked %d/3000 times, expected roughly uniform", c, seen[c])
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0080", color.RGBA{R: 255, G: 0, B: 128, A: 255}, false},
		{"#00ffff", color.RGBA{R: 0, G: 255, B: 255, A: 255}, false},
		{"red", color.RGBA{}, true},
		{"#12", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVariantsRotateChannels(t *testing.T) {
	v := Variants(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := [3]color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 30, G: 10, B: 20, A: 255},
		{R: 20, G: 30, B: 10, A: 255},
	}
	if v != want {
		t.Errorf("Variants() = %v, want %v", v, want)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}
	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend(t=0) = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Blend(t=1) = %v, want %v", got, b)
	}
}
