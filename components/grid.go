package components

import (
	"github.com/automoto/landing/grid"
	"github.com/automoto/landing/palette"
	"github.com/yohamta/donburi"
)

type GridData struct {
	Layout *grid.Layout
	Ripple *grid.Ripple
	Picker *palette.Picker
}

var Grid = donburi.NewComponentType[GridData]()
