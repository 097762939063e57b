// Package sched provides the single-threaded timer and frame scheduling the
// simulation runs on.
//
// A Loop owns a virtual monotonic clock. Nothing advances it except its owner:
// tests step it with simulated time, the terminal platform pumps it with the
// wall clock on every Bubble Tea tick. All callbacks run to completion on the
// goroutine that advances the Loop, so simulation code needs no locking.
package sched

import (
	"container/heap"
	"time"
)

// Clock is a monotonic time source measured from an arbitrary epoch.
type Clock interface {
	Now() time.Duration
}

// Scheduler runs one-shot delayed callbacks and next-frame callbacks.
type Scheduler interface {
	Clock

	// After schedules fn to run once d after the current time.
	After(d time.Duration, fn func()) *Timer

	// RequestFrame schedules fn for the next frame pump. Callbacks that want
	// to run every frame must request again from inside fn.
	RequestFrame(fn func()) *Timer
}

// Loop is a Scheduler whose clock only moves when its owner advances it.
// It is not safe for concurrent use.
type Loop struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
	frames []*Timer
}

// NewLoop creates a loop with its clock at zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// After schedules fn to run once, d from now. Negative delays run on the next
// advance.
func (l *Loop) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &Timer{due: l.now + d, seq: l.seq, fn: fn}
	heap.Push(&l.timers, t)
	return t
}

// RequestFrame queues fn for the next call to Frame.
func (l *Loop) RequestFrame(fn func()) *Timer {
	l.seq++
	t := &Timer{due: l.now, seq: l.seq, fn: fn, frame: true}
	l.frames = append(l.frames, t)
	return t
}

// AdvanceTo moves the clock forward to t, firing every due timer in
// (due time, scheduling order). The clock reads each timer's due time while
// its callback runs. Returns the number of callbacks fired.
func (l *Loop) AdvanceTo(t time.Duration) int {
	fired := 0
	for l.timers.Len() > 0 {
		next := l.timers[0]
		if next.done {
			heap.Pop(&l.timers)
			continue
		}
		if next.due > t {
			break
		}
		heap.Pop(&l.timers)
		if next.due > l.now {
			l.now = next.due
		}
		next.done = true
		next.fn()
		fired++
	}
	if t > l.now {
		l.now = t
	}
	return fired
}

// Frame runs the frame callbacks that were requested before this call.
// Requests made while the frame runs are deferred to the next Frame.
func (l *Loop) Frame() int {
	pending := l.frames
	l.frames = nil

	ran := 0
	for _, f := range pending {
		if f.done {
			continue
		}
		f.done = true
		f.fn()
		ran++
	}
	return ran
}

// Pump advances the clock to t and then runs one frame.
func (l *Loop) Pump(t time.Duration) {
	l.AdvanceTo(t)
	l.Frame()
}

// Step pumps the loop dt past its current time.
func (l *Loop) Step(dt time.Duration) {
	l.Pump(l.now + dt)
}

// Run pumps the loop at a fixed frame interval until total has elapsed.
func (l *Loop) Run(total, frame time.Duration) {
	if frame <= 0 {
		frame = time.Second / 60
	}
	end := l.now + total
	for l.now < end {
		l.Step(min(frame, end-l.now))
	}
}

// Pending returns the number of live timers and frame requests.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.timers {
		if !t.done {
			n++
		}
	}
	for _, f := range l.frames {
		if !f.done {
			n++
		}
	}
	return n
}

// timerHeap orders timers by due time, then by scheduling sequence.
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*Timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
