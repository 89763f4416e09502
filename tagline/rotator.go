package tagline

import (
	"image/color"
	"time"

	"github.com/automoto/landing/timeline"
)

// Theme is one of the headline options.
type Theme int

const (
	Space Theme = iota
	Token
	Agent
)

// Themes lists every option in display order.
var Themes = []Theme{Space, Token, Agent}

// ThemeStyle is the presentation attached to a Theme.
type ThemeStyle struct {
	Label    string
	Gradient [3]color.RGBA
	Accent   color.RGBA // chevron and dropdown highlight
}

var themeStyles = map[Theme]ThemeStyle{
	Space: {
		Label:    "space",
		Gradient: [3]color.RGBA{rgb(0x2563eb), rgb(0x9333ea), rgb(0xdb2777)},
		Accent:   rgb(0x9333ea),
	},
	Token: {
		Label:    "token",
		Gradient: [3]color.RGBA{rgb(0x22c55e), rgb(0x10b981), rgb(0x14b8a6)},
		Accent:   rgb(0x059669),
	},
	Agent: {
		Label:    "agent",
		Gradient: [3]color.RGBA{rgb(0xf97316), rgb(0xef4444), rgb(0xf43f5e)},
		Accent:   rgb(0xea580c),
	},
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Style returns the presentation of t.
func (t Theme) Style() ThemeStyle {
	return themeStyles[t]
}

func (t Theme) String() string {
	if s, ok := themeStyles[t]; ok {
		return s.Label
	}
	return "unknown"
}

// ManualPolicy decides what a manual pick does to the automatic timer.
type ManualPolicy int

const (
	// PausePermanently stops automatic rotation for the rest of the session.
	PausePermanently ManualPolicy = iota
	// RestartPeriod re-arms the timer so the next tick is a full period away.
	RestartPeriod
	// KeepRunning leaves the timer untouched.
	KeepRunning
)

// RotatorConfig holds the rotator timing. A zero Period disables rotation.
type RotatorConfig struct {
	Period time.Duration
	Policy ManualPolicy
}

// Rotator cycles through a fixed list of themes on a timer and lets the user
// pick one from a dropdown.
type Rotator struct {
	options  []Theme
	cfg      RotatorConfig
	timers   *timeline.Group
	tick     timeline.Handle
	selected int
	open     bool
	paused   bool
	running  bool
}

// NewRotator returns a stopped rotator. With no options it uses Themes.
func NewRotator(sched *timeline.Scheduler, cfg RotatorConfig, options ...Theme) *Rotator {
	if len(options) == 0 {
		options = Themes
	}
	return &Rotator{
		options: append([]Theme(nil), options...),
		cfg:     cfg,
		timers:  timeline.NewGroup(sched),
	}
}

// Start arms the automatic timer.
func (r *Rotator) Start() {
	if r.running {
		return
	}
	r.running = true
	r.arm()
}

func (r *Rotator) arm() {
	if r.cfg.Period <= 0 || r.paused || !r.running {
		return
	}
	r.tick = r.timers.Every(r.cfg.Period, r.advance)
}

func (r *Rotator) advance() {
	r.selected = (r.selected + 1) % len(r.options)
}

// Stop cancels the timer.
func (r *Rotator) Stop() {
	r.running = false
	r.timers.CancelAll()
	r.tick = 0
}

// Close stops the rotator for good.
func (r *Rotator) Close() {
	r.Stop()
	r.timers.Close()
}

// Toggle expands or collapses the dropdown.
func (r *Rotator) Toggle() {
	r.open = !r.open
}

// Open expands the dropdown.
func (r *Rotator) Open() { r.open = true }

// Collapse folds the dropdown.
func (r *Rotator) Collapse() { r.open = false }

// Select picks option i, collapses the dropdown and applies the manual policy.
// It reports false for an out-of-range index.
func (r *Rotator) Select(i int) bool {
	if i < 0 || i >= len(r.options) {
		return false
	}
	r.selected = i
	r.open = false
	switch r.cfg.Policy {
	case PausePermanently:
		r.paused = true
		r.timers.Cancel(r.tick)
		r.tick = 0
	case RestartPeriod:
		r.timers.Cancel(r.tick)
		r.arm()
	}
	return true
}

// Selected returns the current theme.
func (r *Rotator) Selected() Theme {
	return r.options[r.selected]
}

// Index returns the current option index.
func (r *Rotator) Index() int {
	return r.selected
}

// Options returns the themes in display order.
func (r *Rotator) Options() []Theme {
	return r.options
}

// IsOpen reports whether the dropdown is expanded.
func (r *Rotator) IsOpen() bool {
	return r.open
}

// Paused reports whether a manual pick stopped automatic rotation.
func (r *Rotator) Paused() bool {
	return r.paused
}
