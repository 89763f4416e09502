package systems

import (
	"image/color"
	"math"

	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/fonts"
	"github.com/automoto/landing/palette"
	"github.com/automoto/landing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTagline handles the option rotator: button toggles the dropdown, a row
// picks a theme, a press anywhere else collapses it. The chevron spring
// follows the open state.
func UpdateTagline(e *ecs.ECS) {
	tl, _ := getTagline(e)
	if tl == nil || tl.Rotator == nil {
		return
	}
	rot := tl.Rotator
	defer func() {
		tl.Chevron.Target = 0
		if rot.IsOpen() {
			tl.Chevron.Target = 180
		}
		tl.Chevron.Update()
	}()

	tl.HoverIndex = -1
	if !pointerFree(e) {
		return
	}
	input := getOrCreateInput(e)
	hs := getHitSpace(e)

	if rot.IsOpen() && GetAction(input, cfg.ActionBack).JustPressed {
		rot.Collapse()
		return
	}

	if rot.IsOpen() {
		if obj := regionAt(hs, input.CursorX, input.CursorY, tags.ResolvOption); obj != nil {
			idx, _ := obj.Data.(int)
			tl.HoverIndex = idx
			input.Hovering = tags.ResolvOption
			if takeClick(input) {
				rot.Select(idx)
			}
			return
		}
	}

	if regionAt(hs, input.CursorX, input.CursorY, tags.ResolvRotator) != nil {
		input.Hovering = tags.ResolvRotator
		if takeClick(input) {
			rot.Toggle()
		}
		return
	}

	if rot.IsOpen() && input.Clicked {
		rot.Collapse()
	}
}

// DrawTagline renders both headline lines: the lead words with the rotator
// button, then the fixed middle words with the typewriter phrase in its
// gradient and the blinking caret. The dropdown is drawn last so it overlaps
// the second line.
func DrawTagline(e *ecs.ECS, screen *ebiten.Image) {
	page := getPage(e)
	tl, ent := getTagline(e)
	if page == nil || tl == nil || page.Content == nil {
		return
	}
	item := &ent.Items[components.EntranceHeadline]
	alpha := item.Alpha(cfg.Entrance.Rise)
	if alpha <= 0 {
		return
	}
	dy := item.Offset.Pos
	regular := fonts.Headline.Text()
	bold := fonts.HeadlineBold.Text()

	drawText(screen, page.Content.Headline.Lead, regular, page.LeadX, page.Headline1Y+dy, cfg.Colors.Text, alpha)
	drawRotatorButton(screen, tl, page.Button, dy, alpha)

	drawText(screen, page.Content.Headline.Middle, regular, page.MiddleX, page.Headline2Y+dy, cfg.Colors.Text, alpha)
	x := drawGradientText(screen, tl.Typewriter.Text(), tl.Typewriter.Phrase(), phraseGradient(tl), bold, page.PhraseX, page.Headline2Y+dy, alpha)
	if tl.Typewriter.CaretVisible() {
		vector.FillRect(screen, float32(x+2), float32(page.Headline2Y+dy), float32(cfg.Page.CaretWidth), float32(lineHeight(bold)), fade(cfg.Colors.Text, alpha), false)
	}

	if tl.Rotator.IsOpen() {
		drawDropdown(screen, tl, page.Dropdown, dy, alpha)
	}
}

func phraseGradient(tl *components.TaglineData) []color.RGBA {
	i := tl.Typewriter.PhraseIndex()
	if i < 0 || i >= len(tl.Gradients) {
		return []color.RGBA{cfg.Colors.Text}
	}
	return tl.Gradients[i]
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.RGBA, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
}

// drawGradientText draws visible rune by rune, colouring each by its position
// in full so the gradient does not stretch while typing. It returns the x
// after the last rune.
func drawGradientText(screen *ebiten.Image, visible, full string, stops []color.RGBA, face text.Face, x, y, alpha float64) float64 {
	n := len([]rune(full))
	i := 0
	for _, r := range visible {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		s := string(r)
		drawText(screen, s, face, x, y, palette.Gradient(stops, t), alpha)
		x += text.Advance(s, face)
		i++
	}
	return x
}

func drawRotatorButton(screen *ebiten.Image, tl *components.TaglineData, r components.Rect, dy, alpha float64) {
	style := tl.Rotator.Selected().Style()
	stops := style.Gradient[:]
	y := r.Y + dy

	// Horizontal gradient in thin vertical strips
	const strip = 2.0
	for sx := 0.0; sx < r.W; sx += strip {
		c := palette.Gradient(stops, sx/r.W)
		vector.FillRect(screen, float32(r.X+sx), float32(y), float32(math.Min(strip, r.W-sx)), float32(r.H), fade(c, alpha), false)
	}

	bold := fonts.HeadlineBold.Text()
	drawText(screen, style.Label, bold, r.X+cfg.Page.ButtonPadX, y+cfg.Page.ButtonPadY, cfg.Colors.ButtonText, alpha)

	// Chevron rotated by the spring angle about its centre
	size := cfg.Page.ChevronSize
	cx := r.X + r.W - cfg.Page.ButtonPadX - size
	cy := y + r.H/2
	theta := tl.Chevron.Pos * math.Pi / 180
	rot := func(px, py float64) (float32, float32) {
		sin, cos := math.Sincos(theta)
		return float32(cx + px*cos - py*sin), float32(cy + px*sin + py*cos)
	}
	x0, y0 := rot(-size, -size/2)
	x1, y1 := rot(0, size/2)
	x2, y2 := rot(size, -size/2)
	c := fade(cfg.Colors.ButtonText, alpha)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2.5, c, true)
	vector.StrokeLine(screen, x1, y1, x2, y2, 2.5, c, true)
}

func drawDropdown(screen *ebiten.Image, tl *components.TaglineData, rows []components.Rect, dy, alpha float64) {
	if len(rows) == 0 {
		return
	}
	first, last := rows[0], rows[len(rows)-1]
	vector.FillRect(screen, float32(first.X), float32(first.Y+dy), float32(first.W), float32(last.Y+last.H-first.Y), fade(cfg.Colors.Panel, alpha), false)
	vector.StrokeRect(screen, float32(first.X), float32(first.Y+dy), float32(first.W), float32(last.Y+last.H-first.Y), 1, fade(cfg.Colors.GridLine, alpha), false)

	face := fonts.Body.Text()
	boldFace := fonts.BodyBold.Text()
	for i, theme := range tl.Rotator.Options() {
		r := rows[i]
		if i == tl.HoverIndex {
			vector.FillRect(screen, float32(r.X), float32(r.Y+dy), float32(r.W), float32(r.H), fade(cfg.Colors.Dropdown, alpha), false)
		}
		f := face
		if i == tl.Rotator.Index() {
			f = boldFace
		}
		style := theme.Style()
		ty := r.Y + dy + (r.H-lineHeight(f))/2
		drawText(screen, style.Label, f, r.X+16, ty, style.Accent, alpha)
	}
}
