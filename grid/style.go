package grid

import (
	"image/color"
	"time"

	"github.com/automoto/landing/palette"
	"github.com/tanema/gween/ease"
)

// Style is the transient look of one cell.
type Style struct {
	Color   color.RGBA
	From    color.RGBA    // colour before the last change, for eased transitions
	Since   time.Duration // scheduler time of the last change
	Opacity float64
	Scale   float64
	Owner   Owner
}

// Owner records which ripple wave last painted a cell. The zero Owner means
// the cell is at rest.
type Owner struct {
	Generation uint64
	Wave       int
}

// Resting is the style every cell returns to.
func Resting(background color.RGBA) Style {
	return Style{
		Color:   background,
		From:    background,
		Opacity: 1,
		Scale:   1,
	}
}

// Paint switches the cell to c at time now, keeping the previous colour as the
// transition origin.
func (s *Style) Paint(c color.RGBA, now time.Duration) {
	s.From = s.Color
	s.Color = c
	s.Since = now
}

// Displayed is the colour to draw at time now, easing from From to Color over
// transition.
func (s Style) Displayed(now, transition time.Duration) color.RGBA {
	if transition <= 0 || s.From == s.Color {
		return s.Color
	}
	elapsed := now - s.Since
	if elapsed >= transition {
		return s.Color
	}
	if elapsed <= 0 {
		return s.From
	}
	t := ease.OutQuad(float32(elapsed), 0, 1, float32(transition))
	return palette.Blend(s.From, s.Color, float64(t))
}
