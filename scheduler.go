package canopy

import (
	"container/heap"
	"time"
)

// TimerID is a cancellable handle returned by Loop.After. Zero is never a
// valid handle.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// timerQueue orders timers by due time, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].id < q[j].id
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any)   { *q = append(*q, x.(*timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Loop is the single-threaded timer primitive every animation runs on. Time
// only moves when the host calls Advance (once per frame) or AdvanceTo, so
// the same Loop drives a real window and deterministic tests.
//
// Loop is not safe for concurrent use; canopy is single-threaded.
type Loop struct {
	now    time.Duration
	queue  timerQueue
	live   map[TimerID]*timer
	nextID TimerID
}

// NewLoop creates a loop at time zero with no pending timers.
func NewLoop() *Loop {
	return &Loop{live: make(map[TimerID]*timer)}
}

// Now returns the loop's current time, measured from its creation.
func (l *Loop) Now() time.Duration {
	return l.now
}

// After schedules fn to run once, d after the current time. A non-positive d
// runs fn on the next Advance call.
func (l *Loop) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	l.nextID++
	t := &timer{id: l.nextID, due: l.now + d, fn: fn}
	heap.Push(&l.queue, t)
	l.live[t.id] = t
	return t.id
}

// Cancel removes a pending timer. Reports whether the timer was still pending.
func (l *Loop) Cancel(id TimerID) bool {
	t, ok := l.live[id]
	if !ok {
		return false
	}
	delete(l.live, id)
	t.fn = nil
	return true
}

// Pending returns the number of timers that have not fired or been cancelled.
func (l *Loop) Pending() int {
	return len(l.live)
}

// Advance moves time forward by d and fires every timer that comes due, in
// order. Returns the number of callbacks run.
func (l *Loop) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return l.AdvanceTo(l.now + d)
}

// AdvanceTo moves time forward to t (never backward) and fires every timer due
// at or before t. Timers scheduled by callbacks that also fall due by t fire
// in the same call.
func (l *Loop) AdvanceTo(t time.Duration) int {
	fired := 0
	for len(l.queue) > 0 {
		next := l.queue[0]
		if next.due > t {
			break
		}
		heap.Pop(&l.queue)
		if next.fn == nil {
			continue // cancelled
		}
		delete(l.live, next.id)
		if next.due > l.now {
			l.now = next.due
		}
		fn := next.fn
		next.fn = nil
		fn()
		fired++
	}
	if t > l.now {
		l.now = t
	}
	return fired
}
