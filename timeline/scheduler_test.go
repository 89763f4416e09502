package timeline

import (
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.After(30*time.Millisecond, func() { got = append(got, 3) })
	s.After(10*time.Millisecond, func() { got = append(got, 1) })
	s.After(20*time.Millisecond, func() { got = append(got, 2) })
	s.After(10*time.Millisecond, func() { got = append(got, 11) })

	s.Advance(25 * time.Millisecond)
	want := []int{1, 11, 2}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fired %v, want %v", got, want)
		}
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
	if s.Now() != 25*time.Millisecond {
		t.Errorf("Now() = %v, want 25ms", s.Now())
	}
}

func TestSchedulerChainedCallbacksFireWithinOneAdvance(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	var step func()
	step = func() {
		at = append(at, s.Now())
		if len(at) < 4 {
			s.After(100*time.Millisecond, step)
		}
	}
	s.After(100*time.Millisecond, step)

	s.Advance(time.Second)
	if len(at) != 4 {
		t.Fatalf("chain fired %d times, want 4", len(at))
	}
	for i, d := range at {
		if want := time.Duration(i+1) * 100 * time.Millisecond; d != want {
			t.Errorf("step %d fired at %v, want %v", i, d, want)
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(time.Millisecond, func() { fired = true })
	if !s.Cancel(h) {
		t.Fatal("Cancel() = false for pending handle")
	}
	if s.Cancel(h) {
		t.Error("second Cancel() = true")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("cancelled callback fired")
	}
}

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	n := 0
	h := s.Every(500*time.Millisecond, func() { n++ })
	s.Advance(1600 * time.Millisecond)
	if n != 3 {
		t.Fatalf("ticks = %d, want 3", n)
	}
	s.Cancel(h)
	s.Advance(time.Second)
	if n != 3 {
		t.Errorf("ticks after cancel = %d, want 3", n)
	}
}

func TestGroupReleasesHandles(t *testing.T) {
	s := NewScheduler()
	g := NewGroup(s)
	g.After(10*time.Millisecond, func() {})
	g.After(20*time.Millisecond, func() {})
	g.Every(5*time.Millisecond, func() {})
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	s.Advance(10 * time.Millisecond)
	if g.Len() != 2 {
		t.Errorf("Len() after one fired = %d, want 2", g.Len())
	}

	g.Close()
	if g.Len() != 0 || s.Pending() != 0 {
		t.Errorf("after Close: group %d, scheduler %d pending", g.Len(), s.Pending())
	}
	if h := g.After(time.Millisecond, func() { t.Error("closed group scheduled a callback") }); h != 0 {
		t.Errorf("closed group returned handle %d", h)
	}
	s.Advance(time.Second)
}

func TestGeneration(t *testing.T) {
	var g Generation
	first := g.Next()
	if !g.IsCurrent(first) {
		t.Fatal("fresh id is not current")
	}
	second := g.Next()
	if g.IsCurrent(first) {
		t.Error("superseded id still current")
	}
	if second <= first {
		t.Errorf("ids not monotonic: %d then %d", first, second)
	}
}
