// Package tagline animates the headline: a typewriter that cycles through
// phrases and a rotator that cycles the highlighted option.
package tagline

import (
	"errors"
	"time"

	"github.com/automoto/landing/timeline"
)

// ErrNoPhrases is returned when a typewriter is built without phrases.
var ErrNoPhrases = errors.New("tagline: no phrases")

// Mode is the typewriter state.
type Mode int

const (
	Typing Mode = iota
	Deleting
	Pausing
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	case Pausing:
		return "pausing"
	}
	return "unknown"
}

// TypewriterConfig holds the typewriter timings.
type TypewriterConfig struct {
	TypeInterval   time.Duration
	DeleteInterval time.Duration
	HoldFull       time.Duration // pause with the whole phrase visible
	HoldEmpty      time.Duration // pause with nothing visible
	CaretBlink     time.Duration
}

// DefaultTypewriterConfig matches the timings of the live page.
func DefaultTypewriterConfig() TypewriterConfig {
	return TypewriterConfig{
		TypeInterval:   100 * time.Millisecond,
		DeleteInterval: 50 * time.Millisecond,
		HoldFull:       1500 * time.Millisecond,
		HoldEmpty:      200 * time.Millisecond,
		CaretBlink:     500 * time.Millisecond,
	}
}

// Typewriter types a phrase one rune at a time, holds it, deletes it, and
// moves on to the next phrase, forever. The visible text is always a prefix of
// the current phrase.
type Typewriter struct {
	phrases [][]rune
	cfg     TypewriterConfig
	timers  *timeline.Group

	index   int
	visible int
	mode    Mode
	caret   bool
	running bool

	// OnPhrase, when set, is called each time a new phrase starts typing.
	OnPhrase func(index int)
}

// NewTypewriter returns a stopped typewriter over phrases.
func NewTypewriter(sched *timeline.Scheduler, cfg TypewriterConfig, phrases []string) (*Typewriter, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	tw := &Typewriter{
		cfg:    cfg,
		timers: timeline.NewGroup(sched),
		caret:  true,
	}
	tw.setPhrases(phrases)
	return tw, nil
}

func (tw *Typewriter) setPhrases(phrases []string) {
	tw.phrases = make([][]rune, len(phrases))
	for i, p := range phrases {
		tw.phrases[i] = []rune(p)
	}
}

// Start begins typing the first phrase and blinking the caret.
func (tw *Typewriter) Start() {
	if tw.running {
		return
	}
	tw.running = true
	if tw.cfg.CaretBlink > 0 {
		tw.timers.Every(tw.cfg.CaretBlink, func() { tw.caret = !tw.caret })
	}
	tw.enterTyping()
}

// Stop releases every timer. A stopped typewriter keeps its last state.
func (tw *Typewriter) Stop() {
	tw.running = false
	tw.timers.CancelAll()
}

// Close stops the typewriter for good.
func (tw *Typewriter) Close() {
	tw.Stop()
	tw.timers.Close()
}

// Reset replaces the phrase list and starts over from the first phrase.
func (tw *Typewriter) Reset(phrases []string) error {
	if len(phrases) == 0 {
		return ErrNoPhrases
	}
	running := tw.running
	tw.Stop()
	tw.setPhrases(phrases)
	tw.index = 0
	tw.visible = 0
	tw.mode = Typing
	tw.caret = true
	if running {
		tw.Start()
	}
	return nil
}

func (tw *Typewriter) phrase() []rune {
	return tw.phrases[tw.index]
}

func (tw *Typewriter) enterTyping() {
	tw.mode = Typing
	if tw.OnPhrase != nil {
		tw.OnPhrase(tw.index)
	}
	if tw.visible >= len(tw.phrase()) {
		tw.hold(tw.cfg.HoldFull, tw.enterDeleting)
		return
	}
	tw.timers.After(tw.cfg.TypeInterval, tw.typeStep)
}

func (tw *Typewriter) typeStep() {
	tw.visible++
	if tw.visible >= len(tw.phrase()) {
		tw.visible = len(tw.phrase())
		tw.hold(tw.cfg.HoldFull, tw.enterDeleting)
		return
	}
	tw.timers.After(tw.cfg.TypeInterval, tw.typeStep)
}

func (tw *Typewriter) enterDeleting() {
	tw.mode = Deleting
	if tw.visible == 0 {
		tw.hold(tw.cfg.HoldEmpty, tw.nextPhrase)
		return
	}
	tw.timers.After(tw.cfg.DeleteInterval, tw.deleteStep)
}

func (tw *Typewriter) deleteStep() {
	tw.visible--
	if tw.visible <= 0 {
		tw.visible = 0
		tw.hold(tw.cfg.HoldEmpty, tw.nextPhrase)
		return
	}
	tw.timers.After(tw.cfg.DeleteInterval, tw.deleteStep)
}

func (tw *Typewriter) nextPhrase() {
	tw.index = (tw.index + 1) % len(tw.phrases)
	tw.enterTyping()
}

func (tw *Typewriter) hold(d time.Duration, next func()) {
	tw.mode = Pausing
	tw.timers.After(d, next)
}

// Text returns the visible part of the current phrase.
func (tw *Typewriter) Text() string {
	return string(tw.phrase()[:tw.visible])
}

// Phrase returns the full current phrase.
func (tw *Typewriter) Phrase() string {
	return string(tw.phrase())
}

// PhraseIndex returns the index of the current phrase.
func (tw *Typewriter) PhraseIndex() int {
	return tw.index
}

// Mode returns the current state.
func (tw *Typewriter) Mode() Mode {
	return tw.mode
}

// CaretVisible reports the blink phase of the caret.
func (tw *Typewriter) CaretVisible() bool {
	return tw.caret
}

// Running reports whether the typewriter has been started and not stopped.
func (tw *Typewriter) Running() bool {
	return tw.running
}
