package components

import "github.com/yohamta/donburi"

// ViewportData is the logical screen size. Game.Layout writes Pending; the
// viewport system applies it at the start of the next tick.
type ViewportData struct {
	Width, Height               int
	PendingWidth, PendingHeight int
	Resized                     bool // size changed this tick
}

var Viewport = donburi.NewComponentType[ViewportData]()
