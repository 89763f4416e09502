package systems

import (
	"github.com/automoto/landing/components"
	"github.com/yohamta/donburi/ecs"
)

// SetViewportSize records the size reported by Game.Layout. It takes effect on
// the next UpdateViewport.
func SetViewportSize(e *ecs.ECS, width, height int) {
	vp := getViewport(e)
	if vp == nil {
		return
	}
	vp.PendingWidth, vp.PendingHeight = width, height
}

// UpdateViewport applies a pending size and fans it out to the grid, the intro
// curtain and the hit space.
func UpdateViewport(e *ecs.ECS) {
	vp := getViewport(e)
	if vp == nil {
		return
	}
	vp.Resized = false
	if vp.PendingWidth <= 0 || vp.PendingHeight <= 0 {
		return
	}
	if vp.PendingWidth == vp.Width && vp.PendingHeight == vp.Height {
		return
	}
	vp.Width, vp.Height = vp.PendingWidth, vp.PendingHeight
	vp.Resized = true

	if g := getGrid(e); g != nil && g.Layout != nil {
		g.Layout.Resize(vp.Width, vp.Height)
	}
	if in := getIntro(e); in != nil && in.Sequencer != nil {
		in.Sequencer.Resize(float64(vp.Width), float64(vp.Height))
	}
	if entry, ok := components.HitSpace.First(e.World); ok {
		resizeHitSpace(components.HitSpace.Get(entry), vp.Width, vp.Height)
	}
}
