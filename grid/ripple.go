package grid

import (
	"image/color"
	"sort"
	"time"

	"github.com/automoto/landing/palette"
	"github.com/automoto/landing/timeline"
)

// ColorPicker supplies the pulse colour for each ripple.
type ColorPicker interface {
	Pick() color.RGBA
}

// RippleConfig tunes the ripple timing and look.
type RippleConfig struct {
	StepDelay     time.Duration // delay per unit of Manhattan distance
	PulseDuration time.Duration // how long a cell stays pulsed before reverting
	Waves         int           // 1..3 channel-shifted waves
	WaveSpacing   time.Duration // offset between consecutive waves
	PulseOpacity  float64
	PulseScale    float64
}

// Step is one scheduled cell pulse.
type Step struct {
	Cell  int
	Wave  int
	Delay time.Duration
}

// Plan lists the pulses for a ripple started at trigger, sorted by delay.
// Wave w of cell j fires at StepDelay*distance(j, trigger) + w*WaveSpacing.
func Plan(d Dimensions, trigger int, cfg RippleConfig) []Step {
	if !d.Contains(trigger) {
		return nil
	}
	waves := clampWaves(cfg.Waves)
	steps := make([]Step, 0, d.Total*waves)
	for w := 0; w < waves; w++ {
		offset := time.Duration(w) * cfg.WaveSpacing
		for j := 0; j < d.Total; j++ {
			steps = append(steps, Step{
				Cell:  j,
				Wave:  w,
				Delay: cfg.StepDelay*time.Duration(d.Distance(j, trigger)) + offset,
			})
		}
	}
	sort.SliceStable(steps, func(a, b int) bool { return steps[a].Delay < steps[b].Delay })
	return steps
}

func clampWaves(n int) int {
	switch {
	case n < 1:
		return 1
	case n > 3:
		return 3
	}
	return n
}

// Ripple drives distance-delayed pulses over a Layout. Only one ripple is live
// at a time; a new trigger or a grid resize supersedes the previous one.
type Ripple struct {
	layout *Layout
	sched  *timeline.Scheduler
	timers *timeline.Group
	gen    timeline.Generation
	picker ColorPicker
	cfg    RippleConfig

	unsubscribe func()
	lastColor   color.RGBA
}

// NewRipple attaches a ripple animator to layout. Close releases it.
func NewRipple(layout *Layout, sched *timeline.Scheduler, picker ColorPicker, cfg RippleConfig) *Ripple {
	r := &Ripple{
		layout: layout,
		sched:  sched,
		timers: timeline.NewGroup(sched),
		picker: picker,
		cfg:    cfg,
	}
	r.unsubscribe = layout.Subscribe(func(Dimensions) { r.supersede() })
	return r
}

// Trigger starts a ripple from cell. It reports false, and does nothing, when
// cell is not part of the current grid.
func (r *Ripple) Trigger(cell int) bool {
	dims := r.layout.Dimensions()
	if dims.Total == 0 || !dims.Contains(cell) {
		return false
	}
	r.Cancel()
	myID := r.gen.Next()

	base := r.picker.Pick()
	r.lastColor = base
	colors := palette.Variants(base)

	for _, st := range Plan(dims, cell, r.cfg) {
		st := st
		c := colors[st.Wave]
		r.timers.After(st.Delay, func() { r.apply(myID, st, c) })
	}
	return true
}

func (r *Ripple) apply(id uint64, st Step, c color.RGBA) {
	if !r.gen.IsCurrent(id) {
		return
	}
	cell := r.layout.Cell(st.Cell)
	if cell == nil {
		return
	}
	cell.Paint(c, r.sched.Now())
	cell.Opacity = r.cfg.PulseOpacity
	cell.Scale = r.cfg.PulseScale
	owner := Owner{Generation: id, Wave: st.Wave + 1}
	cell.Owner = owner

	r.timers.After(r.cfg.PulseDuration, func() { r.revert(owner, st.Cell) })
}

func (r *Ripple) revert(owner Owner, i int) {
	if !r.gen.IsCurrent(owner.Generation) {
		return
	}
	cell := r.layout.Cell(i)
	if cell == nil || cell.Owner != owner {
		return
	}
	cell.Paint(r.layout.Background(), r.sched.Now())
	cell.Opacity = 1
	cell.Scale = 1
	cell.Owner = Owner{}
}

// SetPicker swaps the colour source used by later triggers.
func (r *Ripple) SetPicker(p ColorPicker) {
	r.picker = p
}

// Cancel drops every pending step and returns all cells to rest synchronously.
func (r *Ripple) Cancel() {
	r.supersede()
	r.layout.ResetAll()
}

func (r *Ripple) supersede() {
	r.timers.CancelAll()
	r.gen.Next()
}

// Active reports whether the live ripple still has steps to run.
func (r *Ripple) Active() bool {
	return r.timers.Len() > 0
}

// Pending returns the number of scheduled steps of the live ripple.
func (r *Ripple) Pending() int {
	return r.timers.Len()
}

// Generation returns the live animation id.
func (r *Ripple) Generation() uint64 {
	return r.gen.Current()
}

// LastColor returns the base colour of the most recent ripple.
func (r *Ripple) LastColor() color.RGBA {
	return r.lastColor
}

// Close cancels everything and detaches from the layout.
func (r *Ripple) Close() {
	r.supersede()
	r.timers.Close()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
