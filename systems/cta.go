package systems

import (
	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/fonts"
	"github.com/automoto/landing/intro"
	"github.com/automoto/landing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCTA opens the waitlist form from the call-to-action button, or from
// Select once the page is revealed.
func UpdateCTA(e *ecs.ECS) {
	w := getWaitlist(e)
	if w == nil || w.Form == nil || !pointerFree(e) {
		return
	}
	input := getOrCreateInput(e)

	if regionAt(getHitSpace(e), input.CursorX, input.CursorY, tags.ResolvCTA) != nil {
		input.Hovering = tags.ResolvCTA
		if takeClick(input) {
			w.Form.Open()
			return
		}
	}

	if in := getIntro(e); in != nil && in.Sequencer != nil && in.Sequencer.State() != intro.Revealed {
		return
	}
	if GetAction(input, cfg.ActionSelect).JustPressed {
		w.Form.Open()
	}
}

// DrawCTA renders the call-to-action button and the footer line.
func DrawCTA(e *ecs.ECS, screen *ebiten.Image) {
	page := getPage(e)
	_, ent := getTagline(e)
	if page == nil || ent == nil || page.Content == nil {
		return
	}
	input := getOrCreateInput(e)

	cta := &ent.Items[components.EntranceCTA]
	if a := cta.Alpha(cfg.Entrance.Rise); a > 0 {
		r := page.CTA
		y := r.Y + cta.Offset.Pos
		bg := cfg.Colors.Button
		if input.Hovering == tags.ResolvCTA {
			bg = cfg.Colors.ButtonHover
		}
		vector.FillRect(screen, float32(r.X), float32(y), float32(r.W), float32(r.H), fade(bg, a), true)
		face := fonts.BodyBold.Text()
		drawText(screen, page.Content.CTA, face, r.X+cfg.Page.CTAPadX, y+cfg.Page.CTAPadY, cfg.Colors.ButtonText, a)
	}

	footer := &ent.Items[components.EntranceFooter]
	if a := footer.Alpha(cfg.Entrance.Rise); a > 0 {
		face := fonts.Small.Text()
		w := float64(screen.Bounds().Dx())
		tw := text.Advance(page.Content.Footer, face)
		drawText(screen, page.Content.Footer, face, (w-tw)/2, page.FooterY+footer.Offset.Pos, cfg.Colors.MutedText, a)
	}
}
