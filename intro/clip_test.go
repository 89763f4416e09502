package intro

import (
	"errors"
	"testing"
	"time"
)

type eventLog []Event

func (l *eventLog) listen(ev Event, _ error) { *l = append(*l, ev) }

func TestClipPlaybackEmitsEvents(t *testing.T) {
	var events eventLog
	c := NewClip(100*time.Millisecond, true)
	c.SetListener(events.listen)

	if err := c.Play(true); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Play before Load = %v, want ErrNotLoaded", err)
	}
	c.Load(5)
	if c.Duration() != 500*time.Millisecond {
		t.Errorf("Duration() = %v", c.Duration())
	}
	if err := c.Play(false); err != nil {
		t.Fatalf("Play: %v", err)
	}
	c.Update(250 * time.Millisecond)
	if c.Frame() != 2 {
		t.Errorf("Frame() = %d after 250ms, want 2", c.Frame())
	}
	c.Pause()
	c.Update(time.Second)
	if c.Frame() != 2 {
		t.Errorf("paused clip advanced to %d", c.Frame())
	}
	c.Play(true)
	c.Update(time.Second)
	if !c.Ended() || c.Playing() || c.Frame() != 4 {
		t.Errorf("after end: ended=%v playing=%v frame=%d", c.Ended(), c.Playing(), c.Frame())
	}
	c.Update(time.Second)

	want := []Event{EventLoaded, EventPlay, EventPause, EventPlay, EventEnded}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestClipRefusesAutoplay(t *testing.T) {
	c := NewClip(100*time.Millisecond, false)
	c.Load(3)
	if err := c.Play(false); !errors.Is(err, ErrPlaybackRefused) {
		t.Errorf("Play(false) = %v, want ErrPlaybackRefused", err)
	}
	if err := c.Play(true); err != nil {
		t.Errorf("Play(true) = %v", err)
	}
}

func TestClipFailure(t *testing.T) {
	var events eventLog
	c := NewClip(100*time.Millisecond, true)
	c.SetListener(events.listen)
	c.Load(0)
	if !c.Failed() || c.Loaded() {
		t.Fatalf("zero-frame clip: failed=%v loaded=%v", c.Failed(), c.Loaded())
	}
	if err := c.Play(true); err == nil {
		t.Error("failed clip played")
	}
	if len(events) != 1 || events[0] != EventError {
		t.Errorf("events = %v", events)
	}
}
