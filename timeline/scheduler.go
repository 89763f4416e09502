// Package timeline provides the virtual clock every animation on the page is
// scheduled against. The game loop advances it with real elapsed time once per
// tick, so callbacks fire on the main goroutine in due order.
package timeline

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type task struct {
	handle   Handle
	due      time.Duration
	seq      uint64
	interval time.Duration // > 0 for repeating tasks
	fn       func()
	index    int
}

// Scheduler is a single-goroutine timer queue driven by Advance.
type Scheduler struct {
	now     time.Duration
	nextID  Handle
	nextSeq uint64
	queue   taskQueue
	tasks   map[Handle]*task
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[Handle]*task)}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// After schedules fn to run once, delay from now. Negative delays run on the
// next Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	return s.schedule(delay, 0, fn)
}

// Every schedules fn to run repeatedly every interval, first after one interval.
// A non-positive interval is treated as one nanosecond.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return s.schedule(interval, interval, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.nextSeq++
	t := &task{
		handle:   s.nextID,
		due:      s.now + delay,
		seq:      s.nextSeq,
		interval: interval,
		fn:       fn,
	}
	s.tasks[t.handle] = t
	heap.Push(&s.queue, t)
	return t.handle
}

// Cancel removes a pending callback. It reports whether the handle was pending.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.tasks[h]
	if !ok {
		return false
	}
	delete(s.tasks, h)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Advance moves the clock forward by dt and runs every callback that became
// due, in due-time order. Callbacks scheduled while advancing run in the same
// call when they fall due before the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due
		if next.interval > 0 {
			s.nextSeq++
			next.due += next.interval
			next.seq = s.nextSeq
			heap.Push(&s.queue, next)
		} else {
			delete(s.tasks, next.handle)
		}
		next.fn()
	}
	s.now = target
}

// Clear cancels everything.
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
	clear(s.tasks)
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
