package sched

import "time"

// Timer is a handle to a scheduled callback.
type Timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	frame bool
	done  bool // fired or stopped
}

// Stop prevents the callback from running. It returns false if the timer
// already fired or was stopped. Stop on a nil timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	return true
}

// Active reports whether the callback is still pending.
func (t *Timer) Active() bool {
	return t != nil && !t.done
}

// Due returns the loop time at which the timer fires.
func (t *Timer) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}

// Group collects timers so they can be stopped together.
type Group struct {
	timers []*Timer
}

// Add tracks t and returns it. Timers that already finished are dropped.
func (g *Group) Add(t *Timer) *Timer {
	live := g.timers[:0]
	for _, old := range g.timers {
		if old.Active() {
			live = append(live, old)
		}
	}
	g.timers = append(live, t)
	return t
}

// Stop stops every tracked timer and forgets them.
// Returns the number of timers that were still pending.
func (g *Group) Stop() int {
	n := 0
	for _, t := range g.timers {
		if t.Stop() {
			n++
		}
	}
	g.timers = nil
	return n
}

// Len returns the number of tracked timers that are still pending.
func (g *Group) Len() int {
	n := 0
	for _, t := range g.timers {
		if t.Active() {
			n++
		}
	}
	return n
}
