package systems

import (
	"image/color"

	"github.com/automoto/landing/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getPageEntry returns the entity carrying the page singletons.
func getPageEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Page.First(e.World)
}

func getPage(e *ecs.ECS) *components.PageData {
	entry, ok := getPageEntry(e)
	if !ok {
		return nil
	}
	return components.Page.Get(entry)
}

func getViewport(e *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		return nil
	}
	return components.Viewport.Get(entry)
}

func getGrid(e *ecs.ECS) *components.GridData {
	entry, ok := components.Grid.First(e.World)
	if !ok {
		return nil
	}
	return components.Grid.Get(entry)
}

func getIntro(e *ecs.ECS) *components.IntroData {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return nil
	}
	return components.Intro.Get(entry)
}

func getTagline(e *ecs.ECS) (*components.TaglineData, *components.EntranceData) {
	entry, ok := components.Tagline.First(e.World)
	if !ok {
		return nil, nil
	}
	return components.Tagline.Get(entry), components.Entrance.Get(entry)
}

func getWaitlist(e *ecs.ECS) *components.WaitlistData {
	entry, ok := components.Waitlist.First(e.World)
	if !ok {
		return nil
	}
	return components.Waitlist.Get(entry)
}

// IsModalOpen reports whether the waitlist form covers the page.
func IsModalOpen(e *ecs.ECS) bool {
	w := getWaitlist(e)
	return w != nil && w.Form != nil && w.Form.IsOpen()
}

// pointerFree reports whether page content may react to the pointer: the intro
// overlay has let go of it and no modal is open.
func pointerFree(e *ecs.ECS) bool {
	if IsModalOpen(e) {
		return false
	}
	in := getIntro(e)
	return in == nil || in.Sequencer == nil || in.Sequencer.PassesPointer()
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
