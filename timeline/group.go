package timeline

import "time"

// Group is the set of timers owned by one component. Everything scheduled
// through a Group is released by CancelAll or Close.
type Group struct {
	s       *Scheduler
	handles map[Handle]struct{}
	closed  bool
}

// NewGroup returns an empty group on s.
func NewGroup(s *Scheduler) *Group {
	return &Group{s: s, handles: make(map[Handle]struct{})}
}

// After schedules fn once and tracks the handle until it fires or is cancelled.
// A closed group schedules nothing and returns the zero Handle.
func (g *Group) After(delay time.Duration, fn func()) Handle {
	if g.closed {
		return 0
	}
	var h Handle
	h = g.s.After(delay, func() {
		delete(g.handles, h)
		fn()
	})
	g.handles[h] = struct{}{}
	return h
}

// Every schedules fn repeatedly and tracks the handle until cancelled.
func (g *Group) Every(interval time.Duration, fn func()) Handle {
	if g.closed {
		return 0
	}
	h := g.s.Every(interval, fn)
	g.handles[h] = struct{}{}
	return h
}

// Cancel cancels one handle owned by the group.
func (g *Group) Cancel(h Handle) bool {
	if _, ok := g.handles[h]; !ok {
		return false
	}
	delete(g.handles, h)
	return g.s.Cancel(h)
}

// CancelAll cancels every pending handle of the group.
func (g *Group) CancelAll() {
	for h := range g.handles {
		g.s.Cancel(h)
	}
	clear(g.handles)
}

// Len returns the number of pending handles.
func (g *Group) Len() int {
	return len(g.handles)
}

// Close cancels everything and refuses further scheduling.
func (g *Group) Close() {
	g.CancelAll()
	g.closed = true
}

// Generation is a monotonic counter used to invalidate stale callbacks: a
// callback captures Next() and checks IsCurrent before touching state.
type Generation struct {
	current uint64
}

// Next invalidates every previously issued id and returns a fresh one.
func (g *Generation) Next() uint64 {
	g.current++
	return g.current
}

// Current returns the live id.
func (g *Generation) Current() uint64 {
	return g.current
}

// IsCurrent reports whether id is still the live id.
func (g *Generation) IsCurrent(id uint64) bool {
	return id == g.current
}
