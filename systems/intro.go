package systems

import (
	"math"

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

var introDrawOp = &ebiten.DrawImageOptions{}

// UpdateIntro finishes an async clip load, forwards clicks on the overlay to
// the sequencer and advances it by this tick's elapsed time.
func UpdateIntro(e *ecs.ECS) {
	in := getIntro(e)
	if in == nil || in.Sequencer == nil {
		return
	}
	seq := in.Sequencer

	if in.Loader != nil {
		if frames, ok, err := in.Loader.Poll(); ok {
			in.Loader = nil
			if err != nil {
				in.Clip.Fail(err)
			} else {
				in.Frames = frames
				in.Clip.Load(len(frames))
			}
		}
	}

	input := getOrCreateInput(e)
	if !seq.PassesPointer() {
		if GetAction(input, cfg.ActionSkipIntro).JustPressed {
			seq.Skip()
		} else if input.Clicked && regionAt(getHitSpace(e), input.CursorX, input.CursorY, tags.ResolvIntro) != nil {
			// The overlay swallows the press even when the sequencer ignores it
			input.Consumed = true
			seq.Click()
		}
		if !seq.PassesPointer() {
			input.Hovering = tags.ResolvIntro
		}
	}

	seq.Update(frameDelta(e))
}

// DrawIntro renders the overlay: logo and clip while the intro owns the
// screen, the feathered curtain while it dissolves, nothing once revealed.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	in := getIntro(e)
	if in == nil || in.Sequencer == nil {
		return
	}
	seq := in.Sequencer
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	switch seq.State() {
	case intro.Revealed:
		return
	case intro.Dissolving:
		drawCurtain(screen, seq.Curtain())
		return
	}

	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Colors.Curtain, false)

	if seq.State() == intro.PlayingVideo {
		drawClip(e, screen, in, w, h, 1-seq.LogoAlpha())
	}
	if seq.ShowsLogo() {
		drawLogo(e, screen, w, h, seq.LogoAlpha())
	}
}

func drawLogo(e *ecs.ECS, screen *ebiten.Image, w, h, alpha float64) {
	page := getPage(e)
	if page == nil || page.Content == nil {
		return
	}
	face := fonts.Logo.Text()
	logo := page.Content.Logo
	tw := text.Advance(logo, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate((w-tw)/2, (h-lineHeight(face))/2)
	op.ColorScale.ScaleWithColor(cfg.Colors.Text)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, logo, face, op)
}

// clipRect is the square the clip is drawn into, scaled to fit the viewport.
func clipRect(w, h float64) components.Rect {
	size := math.Min(w, h) * 0.6
	return components.Rect{X: (w - size) / 2, Y: (h - size) / 2, W: size, H: size}
}

func drawClip(e *ecs.ECS, screen *ebiten.Image, in *components.IntroData, w, h, alpha float64) {
	r := clipRect(w, h)
	frame := in.Clip.Frame()
	if len(in.Frames) > 0 {
		if frame >= len(in.Frames) {
			frame = len(in.Frames) - 1
		}
		img := in.Frames[frame]
		scale := r.W / float64(img.Bounds().Dx())
		introDrawOp.GeoM.Reset()
		introDrawOp.ColorScale.Reset()
		introDrawOp.GeoM.Scale(scale, scale)
		introDrawOp.GeoM.Translate(r.X, r.Y)
		introDrawOp.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(img, introDrawOp)
		return
	}
	drawBuiltinClip(e, screen, r, frame, in.Clip.Last+1, alpha)
}

// drawBuiltinClip renders the bundled clip: a 4x4 block of palette squares
// breathing out of phase, swept by a progress bar.
func drawBuiltinClip(e *ecs.ECS, screen *ebiten.Image, r components.Rect, frame, total int, alpha float64) {
	page := getPage(e)
	if page == nil || len(page.Content.PaletteColors) == 0 || total <= 0 {
		return
	}
	colors := page.Content.PaletteColors
	const n = 4
	cell := r.W / n
	t := float64(frame) / float64(total)
	for i := 0; i < n*n; i++ {
		row, col := i/n, i%n
		phase := 2*math.Pi*t*2 + float64(row+col)*0.5
		scale := 0.55 + 0.35*(math.Sin(phase)+1)/2
		size := cell * scale
		x := r.X + float64(col)*cell + (cell-size)/2
		y := r.Y + float64(row)*cell + (cell-size)/2
		c := colors[(i+frame/6)%len(colors)]
		vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), fade(c, alpha), true)
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y+r.H+12), float32(r.W*t), 4, fade(cfg.Colors.Text, alpha), false)
}

// drawCurtain draws each panel as an opaque slab plus feather bands whose
// alpha follows intro.AlphaAt toward the inner edge.
func drawCurtain(screen *ebiten.Image, c *intro.Curtain) {
	feather := c.Feather()
	step := cfg.Curtain.BandStep
	if step <= 0 {
		step = 1
	}
	for _, p := range c.Panels() {
		if p.Empty() {
			continue
		}
		solid := math.Max(0, p.Size-feather)
		if solid > 0 {
			fillPanelBand(screen, p, 0, solid, 1)
		}
		for d := solid; d < p.Size; d += step {
			band := math.Min(step, p.Size-d)
			a := intro.AlphaAt(d+band/2, p.Size, feather)
			fillPanelBand(screen, p, d, band, a)
		}
	}
}

// fillPanelBand fills the slice of p between depth and depth+thickness,
// measured from the panel's outer edge.
func fillPanelBand(screen *ebiten.Image, p intro.Panel, depth, thickness, alpha float64) {
	c := fade(cfg.Colors.Curtain, alpha)
	var x, y, w, h float64
	switch p.Side {
	case intro.Left:
		x, y, w, h = p.X+depth, p.Y, thickness, p.H
	case intro.Right:
		x, y, w, h = p.X+p.W-depth-thickness, p.Y, thickness, p.H
	case intro.Top:
		x, y, w, h = p.X, p.Y+depth, p.W, thickness
	case intro.Bottom:
		x, y, w, h = p.X, p.Y+p.H-depth-thickness, p.W, thickness
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
