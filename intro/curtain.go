package intro

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Side names one of the four curtain panels.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// Panel is one curtain rectangle. Size is its thickness along the wipe axis,
// measured from the viewport edge it is attached to.
type Panel struct {
	Side       Side
	X, Y, W, H float64
	Size       float64
}

// Empty reports whether the panel has fully retracted.
func (p Panel) Empty() bool {
	return p.W <= 0 || p.H <= 0
}

// MaxExtent is how far the curtain must open to clear a w x h viewport.
func MaxExtent(w, h, feather float64) float64 {
	return math.Max(w/2, h/2) + feather
}

// Panels lays out the four panels for a curtain opened by progress.
func Panels(w, h, progress, feather float64) [4]Panel {
	cw := math.Max(0, w/2-progress)
	ch := math.Max(0, h/2-progress)
	return [4]Panel{
		{Side: Left, X: 0, Y: 0, W: cw, H: h, Size: cw},
		{Side: Right, X: w - cw, Y: 0, W: cw, H: h, Size: cw},
		{Side: Top, X: 0, Y: 0, W: w, H: ch, Size: ch},
		{Side: Bottom, X: 0, Y: h - ch, W: w, H: ch, Size: ch},
	}
}

// AlphaAt is the panel opacity at depth from its outer edge: opaque up to
// size-feather, 0.8 at size-feather/2, transparent at size.
func AlphaAt(depth, size, feather float64) float64 {
	if depth < 0 || depth > size {
		return 0
	}
	solid := size - feather
	mid := size - feather/2
	switch {
	case depth <= solid:
		return 1
	case depth <= mid:
		return 1 - 0.2*(depth-solid)/(mid-solid)
	}
	return 0.8 * (1 - (depth-mid)/(size-mid))
}

// Curtain drives the wipe progress over a fixed duration of elapsed time.
type Curtain struct {
	duration time.Duration
	feather  float64
	tween    *gween.Tween
	fraction float64
	width    float64
	height   float64
	extent   float64 // never shrinks while the curtain is open
	active   bool
	done     bool
}

// NewCurtain returns an idle curtain.
func NewCurtain(duration time.Duration, feather float64) *Curtain {
	return &Curtain{duration: duration, feather: feather}
}

// Start opens the curtain over a w x h viewport.
func (c *Curtain) Start(w, h float64) {
	c.Resize(w, h)
	c.extent = MaxExtent(c.width, c.height, c.feather)
	c.fraction = 0
	c.active = true
	c.done = c.duration <= 0
	if c.done {
		c.fraction = 1
		return
	}
	c.tween = gween.New(0, 1, float32(c.duration.Seconds()), ease.Linear)
}

// Resize changes the viewport. The opened fraction is kept, and an open
// curtain's extent only grows so the wipe never moves backwards.
func (c *Curtain) Resize(w, h float64) {
	c.width = math.Max(0, w)
	c.height = math.Max(0, h)
	if c.active {
		c.extent = math.Max(c.extent, MaxExtent(c.width, c.height, c.feather))
	}
}

// Update advances the wipe by dt and reports whether it is complete.
func (c *Curtain) Update(dt time.Duration) bool {
	if !c.active || c.done {
		return c.done
	}
	f, finished := c.tween.Update(float32(dt.Seconds()))
	if v := float64(f); v > c.fraction {
		c.fraction = math.Min(v, 1)
	}
	if finished {
		c.fraction = 1
		c.done = true
	}
	return c.done
}

func (c *Curtain) Active() bool      { return c.active }
func (c *Curtain) Done() bool        { return c.done }
func (c *Curtain) Fraction() float64 { return c.fraction }
func (c *Curtain) Feather() float64  { return c.feather }

// Max is the full extent: fixed at Start and grown by later resizes while
// open, derived from the viewport before that.
func (c *Curtain) Max() float64 {
	if c.active {
		return c.extent
	}
	return MaxExtent(c.width, c.height, c.feather)
}

// Progress is how far the curtain has opened, in pixels.
func (c *Curtain) Progress() float64 {
	return c.fraction * c.Max()
}

// Panels lays out the panels for the current progress.
func (c *Curtain) Panels() [4]Panel {
	return Panels(c.width, c.height, c.Progress(), c.feather)
}
