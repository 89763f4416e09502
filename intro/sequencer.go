package intro

import (
	"errors"
	"log"
	"time"

	"github.com/automoto/landing/timeline"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State is the intro phase.
type State int

const (
	ShowingLogo State = iota
	AutoplayPending
	PlayingVideo
	Dissolving
	Revealed
)

func (s State) String() string {
	switch s {
	case ShowingLogo:
		return "showing-logo"
	case AutoplayPending:
		return "autoplay-pending"
	case PlayingVideo:
		return "playing-video"
	case Dissolving:
		return "dissolving"
	case Revealed:
		return "revealed"
	}
	return "unknown"
}

// Config holds the intro timings.
type Config struct {
	AutoplayDelay time.Duration
	LogoFade      time.Duration
	// WatchdogGrace is added to the clip length before playback is abandoned.
	WatchdogGrace   time.Duration
	CurtainDuration time.Duration
	Feather         float64
}

// DefaultConfig matches the live page.
func DefaultConfig() Config {
	return Config{
		AutoplayDelay:   3000 * time.Millisecond,
		LogoFade:        400 * time.Millisecond,
		WatchdogGrace:   2 * time.Second,
		CurtainDuration: 1500 * time.Millisecond,
		Feather:         50,
	}
}

// Sequencer walks the intro from logo to reveal. It is driven by the
// scheduler for the autoplay timer, by Update for playback and the curtain,
// and by Click for user interaction.
type Sequencer struct {
	cfg    Config
	media  Media
	timers *timeline.Group

	state       State
	autoplay    timeline.Handle
	userControl bool
	wantPlay    bool
	playedFor   time.Duration

	logo      *gween.Tween
	logoAlpha float64
	curtain   *Curtain

	width, height float64
	onReveal      []func()
}

// NewSequencer attaches to media. Call Start to arm the autoplay timer.
func NewSequencer(sched *timeline.Scheduler, media Media, cfg Config) *Sequencer {
	s := &Sequencer{
		cfg:       cfg,
		media:     media,
		timers:    timeline.NewGroup(sched),
		logoAlpha: 1,
		curtain:   NewCurtain(cfg.CurtainDuration, cfg.Feather),
	}
	media.SetListener(s.onMedia)
	return s
}

// Start arms the autoplay timer.
func (s *Sequencer) Start() {
	if s.state != ShowingLogo {
		return
	}
	s.state = AutoplayPending
	s.autoplay = s.timers.After(s.cfg.AutoplayDelay, s.autoplayDue)
}

func (s *Sequencer) autoplayDue() {
	s.autoplay = 0
	if s.state > AutoplayPending {
		return
	}
	s.enterPlaying(false)
}

func (s *Sequencer) enterPlaying(gesture bool) {
	s.timers.Cancel(s.autoplay)
	s.autoplay = 0
	s.state = PlayingVideo
	s.playedFor = 0
	if s.cfg.LogoFade > 0 {
		s.logo = gween.New(float32(s.logoAlpha), 0, float32(s.cfg.LogoFade.Seconds()), ease.Linear)
	} else {
		s.logoAlpha = 0
	}
	s.requestPlay(gesture)
}

func (s *Sequencer) requestPlay(gesture bool) {
	if s.media.Failed() {
		s.dissolve()
		return
	}
	if !s.media.Loaded() {
		s.wantPlay = true
		return
	}
	s.wantPlay = false
	err := s.media.Play(gesture)
	switch {
	case err == nil:
	case errors.Is(err, ErrPlaybackRefused):
		log.Printf("[intro] Playback refused, waiting for a click")
	default:
		log.Printf("[intro] Warning: playback failed: %v", err)
		s.dissolve()
	}
}

func (s *Sequencer) onMedia(ev Event, err error) {
	switch ev {
	case EventLoaded:
		if s.wantPlay && s.state == PlayingVideo {
			s.requestPlay(s.userControl)
		}
	case EventEnded:
		if s.state == PlayingVideo {
			s.dissolve()
		}
	case EventError:
		log.Printf("[intro] Warning: media error: %v", err)
		// In the logo phases the autoplay timer or a click takes the fallback.
		if s.state == PlayingVideo {
			s.dissolve()
		}
	}
}

// Click handles a pointer press on the intro layer. It reports whether the
// click was consumed; from Dissolving on clicks pass through.
func (s *Sequencer) Click() bool {
	switch s.state {
	case ShowingLogo, AutoplayPending:
		s.userControl = true
		if s.media.Loaded() {
			s.enterPlaying(true)
		} else {
			s.dissolve()
		}
		return true
	case PlayingVideo:
		s.userControl = true
		if s.media.Playing() {
			s.media.Pause()
		} else {
			s.requestPlay(true)
		}
		return true
	}
	return false
}

func (s *Sequencer) dissolve() {
	if s.state >= Dissolving {
		return
	}
	s.timers.CancelAll()
	s.autoplay = 0
	s.wantPlay = false
	if s.media.Playing() {
		s.media.Pause()
	}
	s.state = Dissolving
	s.logo = nil
	s.logoAlpha = 0
	s.curtain.Start(s.width, s.height)
}

// Skip jumps straight to Revealed.
func (s *Sequencer) Skip() {
	if s.state == Revealed {
		return
	}
	s.dissolve()
	s.reveal()
}

func (s *Sequencer) reveal() {
	s.state = Revealed
	subs := s.onReveal
	s.onReveal = nil
	for _, fn := range subs {
		fn()
	}
}

// Update advances playback, the logo fade, the watchdog and the curtain.
func (s *Sequencer) Update(dt time.Duration) {
	before := s.state
	s.media.Update(dt)

	if s.logo != nil {
		a, done := s.logo.Update(float32(dt.Seconds()))
		s.logoAlpha = float64(a)
		if done {
			s.logo = nil
		}
	}

	switch s.state {
	case PlayingVideo:
		// Time the user spends paused is theirs.
		if !s.userControl || s.media.Playing() {
			s.playedFor += dt
		}
		if limit := s.media.Duration() + s.cfg.WatchdogGrace; s.playedFor >= limit {
			log.Printf("[intro] Warning: no end of playback after %v, revealing", s.playedFor)
			s.dissolve()
		}
	case Dissolving:
		if before == Dissolving && s.curtain.Update(dt) {
			s.reveal()
		}
	}
}

// Resize updates the viewport used for the curtain extent.
func (s *Sequencer) Resize(w, h float64) {
	s.width, s.height = w, h
	s.curtain.Resize(w, h)
}

// OnReveal registers fn to run once when the intro reaches Revealed. If it
// already has, fn runs immediately.
func (s *Sequencer) OnReveal(fn func()) {
	if s.state == Revealed {
		fn()
		return
	}
	s.onReveal = append(s.onReveal, fn)
}

// PassesPointer reports whether clicks go through to the page underneath.
func (s *Sequencer) PassesPointer() bool {
	return s.state >= Dissolving
}

func (s *Sequencer) State() State       { return s.state }
func (s *Sequencer) UserControl() bool  { return s.userControl }
func (s *Sequencer) LogoAlpha() float64 { return s.logoAlpha }
func (s *Sequencer) Curtain() *Curtain  { return s.curtain }
func (s *Sequencer) Media() Media       { return s.media }

// ShowsLogo reports whether the logo is still (partly) visible.
func (s *Sequencer) ShowsLogo() bool {
	return s.state < Dissolving && s.logoAlpha > 0
}

// Close releases the timers and detaches from the media.
func (s *Sequencer) Close() {
	s.timers.Close()
	s.media.SetListener(nil)
	s.onReveal = nil
}
