package intro

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/landing/timeline"
)

type harness struct {
	sched *timeline.Scheduler
	clip  *Clip
	seq   *Sequencer
}

func newHarness(autoplay bool) *harness {
	s := timeline.NewScheduler()
	c := NewClip(100*time.Millisecond, autoplay)
	seq := NewSequencer(s, c, DefaultConfig())
	seq.Resize(1280, 720)
	return &harness{sched: s, clip: c, seq: seq}
}

// run advances the clock and the sequencer together in 10ms frames.
func (h *harness) run(d time.Duration) {
	const frame = 10 * time.Millisecond
	for d > 0 {
		step := min(frame, d)
		h.sched.Advance(step)
		h.seq.Update(step)
		d -= step
	}
}

func (h *harness) runUntil(t *testing.T, want State, limit time.Duration) time.Duration {
	t.Helper()
	var elapsed time.Duration
	for h.seq.State() != want {
		if elapsed > limit {
			t.Fatalf("state %v after %v, want %v", h.seq.State(), elapsed, want)
		}
		h.run(10 * time.Millisecond)
		elapsed += 10 * time.Millisecond
	}
	return elapsed
}

func TestAutoplayTimerLeavesLogoWithoutInteraction(t *testing.T) {
	h := newHarness(true)
	h.clip.Load(30)
	h.seq.Start()
	if h.seq.State() != AutoplayPending {
		t.Fatalf("state after Start = %v", h.seq.State())
	}
	h.run(2990 * time.Millisecond)
	if h.seq.State() != AutoplayPending {
		t.Fatalf("left the logo early: %v", h.seq.State())
	}
	h.run(10 * time.Millisecond)
	if h.seq.State() != PlayingVideo || !h.clip.Playing() {
		t.Fatalf("at 3000ms: state %v playing %v", h.seq.State(), h.clip.Playing())
	}
	h.run(400 * time.Millisecond)
	if h.seq.LogoAlpha() != 0 {
		t.Errorf("logo alpha %v after fade", h.seq.LogoAlpha())
	}
}

func TestAutoplayArmedEvenIfMediaNeverLoads(t *testing.T) {
	h := newHarness(true)
	h.seq.Start()
	h.run(3 * time.Second)
	if h.seq.State() != PlayingVideo {
		t.Fatalf("state = %v, want playing-video", h.seq.State())
	}
	// Nothing ever loads: the watchdog gives up after the grace period.
	h.runUntil(t, Revealed, 5*time.Second)
}

func TestLateLoadStartsPendingPlayback(t *testing.T) {
	h := newHarness(true)
	h.seq.Start()
	h.run(3100 * time.Millisecond)
	h.clip.Load(10)
	if !h.clip.Playing() {
		t.Error("clip did not start once loaded")
	}
}

func TestClickShortCircuitsAutoplay(t *testing.T) {
	h := newHarness(false)
	h.clip.Load(30)
	h.seq.Start()
	h.run(time.Second)

	if !h.seq.Click() {
		t.Fatal("click on logo not consumed")
	}
	if h.seq.State() != PlayingVideo || !h.seq.UserControl() {
		t.Fatalf("after click: %v control=%v", h.seq.State(), h.seq.UserControl())
	}
	if !h.clip.Playing() {
		t.Error("gesture playback refused")
	}
	if h.sched.Pending() != 0 {
		t.Errorf("autoplay timer still pending (%d)", h.sched.Pending())
	}
}

func TestClickBeforeLoadFallsBackToCurtain(t *testing.T) {
	h := newHarness(true)
	h.seq.Start()
	h.seq.Click()
	if h.seq.State() != Dissolving {
		t.Fatalf("state = %v, want dissolving", h.seq.State())
	}
	if !h.seq.PassesPointer() || h.seq.Click() {
		t.Error("dissolving layer still captures clicks")
	}
	h.runUntil(t, Revealed, 1600*time.Millisecond)
}

func TestClickTogglesPlayback(t *testing.T) {
	h := newHarness(true)
	h.clip.Load(30)
	h.seq.Start()
	h.run(3 * time.Second)
	h.seq.Click()
	if h.clip.Playing() {
		t.Fatal("click did not pause")
	}
	// User-held pause stops the watchdog.
	h.run(20 * time.Second)
	if h.seq.State() != PlayingVideo {
		t.Fatalf("watchdog fired while user paused: %v", h.seq.State())
	}
	h.seq.Click()
	if !h.clip.Playing() {
		t.Fatal("click did not resume")
	}
}

func TestEndOfClipRevealsOnce(t *testing.T) {
	h := newHarness(true)
	var reveals int
	h.seq.OnReveal(func() { reveals++ })
	h.clip.Load(20) // 2s
	h.seq.Start()

	h.runUntil(t, Dissolving, 5100*time.Millisecond)
	if !h.clip.Ended() {
		t.Error("dissolving before the clip ended")
	}
	took := h.runUntil(t, Revealed, 1600*time.Millisecond)
	if took < 1500*time.Millisecond {
		t.Errorf("curtain took %v, want at least 1500ms", took)
	}
	h.run(time.Second)
	if reveals != 1 {
		t.Errorf("OnReveal ran %d times", reveals)
	}
	late := 0
	h.seq.OnReveal(func() { late++ })
	if late != 1 {
		t.Error("OnReveal after reveal did not run immediately")
	}
}

func TestRefusedAutoplayWaitsThenWatchdogReveals(t *testing.T) {
	h := newHarness(false)
	h.clip.Load(10) // 1s
	h.seq.Start()
	h.run(3 * time.Second)
	if h.seq.State() != PlayingVideo || h.clip.Playing() {
		t.Fatalf("state %v playing %v", h.seq.State(), h.clip.Playing())
	}
	h.run(2900 * time.Millisecond)
	if h.seq.State() != PlayingVideo {
		t.Fatalf("watchdog fired early: %v", h.seq.State())
	}
	h.runUntil(t, Dissolving, 200*time.Millisecond)
}

func TestMediaErrorWhilePlayingDissolves(t *testing.T) {
	h := newHarness(true)
	h.clip.Load(50)
	h.seq.Start()
	h.run(3500 * time.Millisecond)
	h.clip.Fail(errors.New("decode failed"))
	if h.seq.State() != Dissolving {
		t.Errorf("state = %v, want dissolving", h.seq.State())
	}
}

func TestMediaErrorDuringLogoUsesTimerFallback(t *testing.T) {
	h := newHarness(true)
	h.seq.Start()
	h.clip.Fail(errors.New("missing file"))
	if h.seq.State() != AutoplayPending {
		t.Fatalf("state = %v", h.seq.State())
	}
	h.run(3 * time.Second)
	if h.seq.State() != Dissolving {
		t.Errorf("state at 3000ms = %v, want dissolving", h.seq.State())
	}
}

func TestSkipAndClose(t *testing.T) {
	h := newHarness(true)
	h.seq.Start()
	h.seq.Skip()
	if h.seq.State() != Revealed || h.sched.Pending() != 0 {
		t.Errorf("after Skip: %v, %d timers", h.seq.State(), h.sched.Pending())
	}
	h.seq.Close()
	h.clip.Load(3) // detached: must not panic or change state
	if h.seq.State() != Revealed {
		t.Errorf("state changed after Close: %v", h.seq.State())
	}
}
