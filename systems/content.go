package systems

import (
	"log"

	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/palette"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContent applies content reloaded by the file watcher: new palette for
// the next ripple, new background, new typewriter phrases and gradients.
func UpdateContent(e *ecs.ECS) {
	page := getPage(e)
	if page == nil || page.Watcher == nil {
		return
	}
	c := page.Watcher.Take()
	if c == nil {
		return
	}
	ApplyContent(e, c)
	log.Printf("[content] applied %d phrases, %d colours", len(c.Phrases), len(c.PaletteColors))
}

// ApplyContent swaps the live page content for c.
func ApplyContent(e *ecs.ECS, c *cfg.Content) {
	page := getPage(e)
	if page == nil {
		return
	}
	page.Content = c

	if g := getGrid(e); g != nil && g.Layout != nil {
		picker, err := palette.NewPicker(c.PaletteColors, nil)
		if err != nil {
			log.Printf("[content] Warning: keeping previous palette: %v", err)
		} else {
			g.Picker = picker
			g.Ripple.SetPicker(picker)
		}
		if c.BackgroundColor != g.Layout.Background() {
			g.Ripple.Cancel()
			g.Layout.SetBackground(c.BackgroundColor)
		}
	}

	if tl, _ := getTagline(e); tl != nil && tl.Typewriter != nil {
		if err := tl.Typewriter.Reset(c.PhraseTexts()); err != nil {
			log.Printf("[content] Warning: keeping previous phrases: %v", err)
			return
		}
		tl.Gradients = c.Gradients
	}
}
