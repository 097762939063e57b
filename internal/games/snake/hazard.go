package snake

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/sched"
)

// Hazard runs the wait → warning → stone cycle.
//
// Each round waits a random interval, marks a free cell with a warning, and
// after the warning interval hands the cell to land. Rounds that expire while
// the session is inactive, or that find no free cell, are skipped and the
// wait is re-armed.
type Hazard struct {
	cfg    config.HazardConfig
	sched  sched.Scheduler
	rng    *rand.Rand
	timers *sched.Group
	logger *log.Logger

	active func() bool
	pick   func() (core.Position, error)
	land   func(core.Position)

	warning    core.Position
	hasWarning bool
	waitT      *sched.Timer
	warnT      *sched.Timer
}

// Warning returns the cell currently marked for the next stone.
func (h *Hazard) Warning() (core.Position, bool) {
	return h.warning, h.hasWarning
}

// Armed reports whether a round is in progress.
func (h *Hazard) Armed() bool {
	return h.waitT.Active() || h.warnT.Active()
}

// Arm starts a new round unless one is already pending.
func (h *Hazard) Arm() {
	if !h.cfg.Enabled || h.Armed() {
		return
	}
	h.waitT = h.timers.Add(h.sched.After(h.nextWait(), h.expire))
}

// Stop cancels the round and clears any live warning.
func (h *Hazard) Stop() {
	h.waitT.Stop()
	h.warnT.Stop()
	h.waitT, h.warnT = nil, nil
	h.hasWarning = false
}

// nextWait draws a wait in [MinWait, MaxWait) at millisecond granularity.
func (h *Hazard) nextWait() time.Duration {
	span := h.cfg.MaxWaitMs - h.cfg.MinWaitMs
	wait := h.cfg.MinWaitMs
	if span > 0 {
		wait += h.rng.Intn(span)
	}
	return time.Duration(wait) * time.Millisecond
}

func (h *Hazard) expire() {
	h.waitT = nil
	if !h.active() {
		h.Arm()
		return
	}

	pos, err := h.pick()
	if err != nil {
		h.logger.Debug("hazard round skipped", "err", err)
		h.Arm()
		return
	}

	h.warning, h.hasWarning = pos, true
	h.logger.Debug("stone warning", "x", pos.X, "y", pos.Y)
	h.warnT = h.timers.Add(h.sched.After(h.cfg.Warning(), h.resolve))
}

func (h *Hazard) resolve() {
	h.warnT = nil
	pos := h.warning
	h.hasWarning = false
	h.land(pos)
	h.Arm()
}
