package systems

import (
	"fmt"

	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/fonts"
	"github.com/automoto/landing/tags"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// lineHeight is the ascent plus descent of face.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// UpdatePageLayout places the headline, rotator button, dropdown rows, CTA and
// footer for the current viewport and content, and moves the matching hit
// regions. The typewriter line is centred on the full phrase so it does not
// shift while typing.
func UpdatePageLayout(e *ecs.ECS) {
	page := getPage(e)
	vp := getViewport(e)
	tl, _ := getTagline(e)
	if page == nil || vp == nil || tl == nil || page.Content == nil || vp.Width == 0 {
		return
	}
	content := page.Content
	w, h := float64(vp.Width), float64(vp.Height)

	regular := fonts.Headline.Text()
	bold := fonts.HeadlineBold.Text()
	lh := lineHeight(regular)

	top := h/2 + cfg.Page.HeadlineOffsetY - lh
	page.Headline1Y = top
	page.Headline2Y = top + lh + cfg.Page.LineGap

	// Line 1: "<lead> [option v]"
	lead := content.Headline.Lead + " "
	leadW := text.Advance(lead, regular)
	label := tl.Rotator.Selected().Style().Label
	btnW := text.Advance(label, bold) + cfg.Page.ButtonPadX*2 + cfg.Page.ChevronSize*2.5
	page.LeadX = (w - leadW - btnW) / 2
	page.Button = components.Rect{
		X: page.LeadX + leadW,
		Y: page.Headline1Y - cfg.Page.ButtonPadY,
		W: btnW,
		H: lh + cfg.Page.ButtonPadY*2,
	}

	// Dropdown rows under the button
	options := tl.Rotator.Options()
	rowW := btnW
	if rowW < cfg.Page.DropdownMinWidth {
		rowW = cfg.Page.DropdownMinWidth
	}
	page.Dropdown = page.Dropdown[:0]
	for i := range options {
		page.Dropdown = append(page.Dropdown, components.Rect{
			X: page.Button.X,
			Y: page.Button.Y + page.Button.H + 4 + float64(i)*cfg.Page.DropdownRowHeight,
			W: rowW,
			H: cfg.Page.DropdownRowHeight,
		})
	}

	// Line 2: "<middle> <phrase>"
	middle := content.Headline.Middle + " "
	middleW := text.Advance(middle, regular)
	phraseW := text.Advance(tl.Typewriter.Phrase(), bold) + cfg.Page.CaretWidth
	page.MiddleX = (w - middleW - phraseW) / 2
	page.PhraseX = page.MiddleX + middleW

	// CTA and footer
	body := fonts.BodyBold.Text()
	ctaW := text.Advance(content.CTA, body) + cfg.Page.CTAPadX*2
	ctaH := lineHeight(body) + cfg.Page.CTAPadY*2
	page.CTA = components.Rect{
		X: (w - ctaW) / 2,
		Y: page.Headline2Y + lh + cfg.Page.CTAGap,
		W: ctaW,
		H: ctaH,
	}
	page.FooterY = page.CTA.Y + page.CTA.H + cfg.Page.FooterGap

	hs := getHitSpace(e)
	if hs == nil {
		return
	}
	setRegion(hs, "intro", components.Rect{W: w, H: h}, nil, tags.ResolvIntro)
	setRegion(hs, "rotator", page.Button, nil, tags.ResolvRotator)
	setRegion(hs, "cta", page.CTA, nil, tags.ResolvCTA)
	for i, r := range page.Dropdown {
		setRegion(hs, optionRegion(i), r, i, tags.ResolvOption)
	}
	for i := len(page.Dropdown); ; i++ {
		if _, ok := hs.Regions[optionRegion(i)]; !ok {
			break
		}
		removeRegion(hs, optionRegion(i))
	}
}

func optionRegion(i int) string {
	return fmt.Sprintf("option%d", i)
}
