package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitSpaceData holds the pointer hit regions of the page. Regions are keyed by
// name so systems can move them when the layout changes.
type HitSpaceData struct {
	Space   *resolv.Space
	Regions map[string]*resolv.Object
	Probe   *resolv.Object
}

var HitSpace = donburi.NewComponentType[HitSpaceData]()
