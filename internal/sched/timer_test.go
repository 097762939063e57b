package sched

import (
	"testing"
	"time"
)

func TestGroupStop(t *testing.T) {
	l := NewLoop()
	var g Group
	fired := 0

	g.Add(l.After(time.Second, func() { fired++ }))
	g.Add(l.After(2*time.Second, func() { fired++ }))
	g.Add(l.RequestFrame(func() { fired++ }))

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", g.Len())
	}

	if n := g.Stop(); n != 3 {
		t.Errorf("Stop() = %d, expected 3", n)
	}

	l.Pump(5 * time.Second)
	if fired != 0 {
		t.Errorf("%d callbacks fired after group stop", fired)
	}
	if g.Len() != 0 {
		t.Errorf("Len() after Stop = %d, expected 0", g.Len())
	}
}

func TestGroupDropsFinishedTimers(t *testing.T) {
	l := NewLoop()
	var g Group

	g.Add(l.After(time.Second, func() {}))
	l.AdvanceTo(time.Second)
	g.Add(l.After(time.Second, func() {}))

	if len(g.timers) != 1 {
		t.Errorf("group tracks %d timers, expected 1 pending", len(g.timers))
	}
	if n := g.Stop(); n != 1 {
		t.Errorf("Stop() = %d, expected 1", n)
	}
}
