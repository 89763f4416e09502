package components

import (
	"image/color"

	"github.com/automoto/landing/tagline"
	"github.com/yohamta/donburi"
)

// TaglineData stores the headline state: the option rotator, the typewriter
// and the per-phrase gradients.
type TaglineData struct {
	Typewriter *tagline.Typewriter
	Rotator    *tagline.Rotator
	Gradients  [][]color.RGBA

	// Chevron rotation in degrees, sprung toward 0 (closed) or 180 (open).
	Chevron    Spring
	HoverIndex int // dropdown row under the pointer, -1 when none
}

var Tagline = donburi.NewComponentType[TaglineData]()
