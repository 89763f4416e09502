// Package palette picks ripple colours from a fixed palette.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrEmptyPalette = errors.New("palette: no colours")

// Picker selects uniformly at random from a fixed palette.
type Picker struct {
	colors []color.RGBA
	rng    *rand.Rand
}

// NewPicker copies colors into a picker. src may be nil for a time-seeded source.
func NewPicker(colors []color.RGBA, src rand.Source) (*Picker, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Picker{
		colors: append([]color.RGBA(nil), colors...),
		rng:    rand.New(src),
	}, nil
}

// ParsePicker builds a picker from "#RRGGBB" strings.
func ParsePicker(hexes []string, src rand.Source) (*Picker, error) {
	colors, err := ParseAll(hexes)
	if err != nil {
		return nil, err
	}
	return NewPicker(colors, src)
}

// Pick returns one palette colour.
func (p *Picker) Pick() color.RGBA {
	return p.colors[p.rng.IntN(len(p.colors))]
}

// Len returns the palette size.
func (p *Picker) Len() int {
	return len(p.colors)
}

// Contains reports whether c is one of the palette colours.
func (p *Picker) Contains(c color.RGBA) bool {
	for _, pc := range p.colors {
		if pc == c {
			return true
		}
	}
	return false
}

// ParseHex parses "#RRGGBB" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	return ToRGBA(c), nil
}

// ParseAll parses every entry of hexes, failing on the first bad one.
func ParseAll(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Variants derives the channel-shifted colours used by the follow-up waves of
// a multi-wave ripple: the base colour rotated through its RGB channels.
func Variants(c color.RGBA) [3]color.RGBA {
	return [3]color.RGBA{
		c,
		{R: c.B, G: c.R, B: c.G, A: c.A},
		{R: c.G, G: c.B, B: c.R, A: c.A},
	}
}

// Blend mixes from towards to by t in [0,1] in Lab space.
func Blend(from, to color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)
	out := ToRGBA(a.BlendLab(b, t))
	out.A = uint8(float64(from.A) + (float64(to.A)-float64(from.A))*t)
	return out
}

// ToRGBA converts a colorful colour to an opaque RGBA.
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Gradient samples a multi-stop gradient at t in [0,1].
func Gradient(stops []color.RGBA, t float64) color.RGBA {
	switch len(stops) {
	case 0:
		return color.RGBA{A: 0xff}
	case 1:
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	span := t * float64(len(stops)-1)
	i := int(span)
	return Blend(stops[i], stops[i+1], span-float64(i))
}
