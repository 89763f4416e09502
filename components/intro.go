package components

import (
	"github.com/automoto/landing/assets"
	"github.com/automoto/landing/intro"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// IntroData stores the intro overlay. Frames is nil for the built-in clip,
// which is drawn procedurally from the clip's frame index.
type IntroData struct {
	Sequencer *intro.Sequencer
	Clip      *intro.Clip
	Frames    []*ebiten.Image
	Loader    *assets.ClipLoader
	Revealed  bool
}

var Intro = donburi.NewComponentType[IntroData]()
