package snake

import (
	"time"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/sched"
)

const (
	// MinLength is the shortest the snake can ever be.
	MinLength = 3
	// MaxEnergy is the energy required to activate a boost.
	MaxEnergy = 100.0
)

// Snake owns body geometry, heading and the speed/boost state.
//
// Boost states: resting -> boosting -> cooldown -> resting. Energy only
// regenerates while not boosting.
type Snake struct {
	body          []core.Position // Head at index 0
	direction     core.Direction
	nextDirection core.Direction // Applied at the start of the next move

	baseSpeed    time.Duration
	currentSpeed time.Duration
	minSpeed     time.Duration

	boost      config.BoostConfig
	energy     float64
	boosting   bool
	onCooldown bool
	lastRegen  time.Duration

	sched         sched.Scheduler
	boostTimer    *sched.Timer
	cooldownTimer *sched.Timer
	onBoostEnd    func()
}

// NewSnake creates a three-segment snake with its head at head, heading right.
func NewSnake(s sched.Scheduler, head core.Position, speed config.SpeedConfig, boost config.BoostConfig) *Snake {
	return &Snake{
		body: []core.Position{
			head,
			head.Add(-1, 0),
			head.Add(-2, 0),
		},
		direction:     core.DirRight,
		nextDirection: core.DirRight,
		baseSpeed:     speed.Base(),
		currentSpeed:  speed.Base(),
		minSpeed:      speed.Min(),
		boost:         boost,
		energy:        MaxEnergy,
		lastRegen:     s.Now(),
		sched:         s,
	}
}

// Body returns the segments, head first. The slice must not be modified.
func (s *Snake) Body() []core.Position { return s.body }

// Head returns the head cell.
func (s *Snake) Head() core.Position { return s.body[0] }

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Direction returns the heading applied on the last move.
func (s *Snake) Direction() core.Direction { return s.direction }

// NextDirection returns the buffered heading for the next move.
func (s *Snake) NextDirection() core.Direction { return s.nextDirection }

// BaseSpeed returns the tick interval without boost.
func (s *Snake) BaseSpeed() time.Duration { return s.baseSpeed }

// CurrentSpeed returns the effective tick interval.
func (s *Snake) CurrentSpeed() time.Duration { return s.currentSpeed }

// Energy returns the boost energy in [0, MaxEnergy].
func (s *Snake) Energy() float64 { return s.energy }

// Boosting reports whether a boost is active.
func (s *Snake) Boosting() bool { return s.boosting }

// OnCooldown reports whether the post-boost cooldown is running.
func (s *Snake) OnCooldown() bool { return s.onCooldown }

// SetBoostEndCallback registers the function called when a boost expires.
func (s *Snake) SetBoostEndCallback(fn func()) {
	s.onBoostEnd = fn
}

// Move adopts the buffered heading and prepends the new head.
// The tail is left in place; the caller removes it once food is resolved.
func (s *Snake) Move() {
	s.direction = s.nextDirection
	head := s.body[0].Step(s.direction)

	s.body = append(s.body, core.Position{})
	copy(s.body[1:], s.body)
	s.body[0] = head
}

// ChangeDirection buffers a heading for the next move.
// Reversing onto the current heading is silently ignored.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d.IsOpposite(s.direction) {
		return
	}
	s.nextDirection = d
}

// Grow appends n+1 copies of the tail cell.
func (s *Snake) Grow(n int) {
	if n < 0 {
		n = 0
	}
	tail := s.body[len(s.body)-1]
	for i := 0; i < n+1; i++ {
		s.body = append(s.body, tail)
	}
}

// Shrink removes up to n tail cells, never going below MinLength.
// Returns the number of cells actually removed.
func (s *Snake) Shrink(n int) int {
	n = core.Clamp(n, 0, max(0, len(s.body)-MinLength))
	s.body = s.body[:len(s.body)-n]
	return n
}

// RemoveTail drops the last cell, completing a move.
func (s *Snake) RemoveTail() {
	if len(s.body) > MinLength {
		s.body = s.body[:len(s.body)-1]
	}
}

// AdjustBaseSpeed sets the unboosted interval. An active boost keeps its
// current interval until it ends.
func (s *Snake) AdjustBaseSpeed(v time.Duration) {
	s.baseSpeed = v
	if !s.boosting {
		s.currentSpeed = v
	}
}

// ActivateBoost starts a boost when energy is full and no boost or cooldown
// is running. Returns false otherwise.
func (s *Snake) ActivateBoost() bool {
	if s.energy < MaxEnergy || s.boosting || s.onCooldown {
		return false
	}

	s.boosting = true
	s.energy = 0
	s.lastRegen = s.sched.Now()
	boosted := time.Duration(float64(s.currentSpeed) * s.boost.Factor)
	s.currentSpeed = max(s.minSpeed, boosted)
	s.boostTimer = s.sched.After(s.boost.Duration(), s.endBoost)
	return true
}

// endBoost restores the base interval and starts the cooldown.
func (s *Snake) endBoost() {
	s.boosting = false
	s.currentSpeed = s.baseSpeed
	s.boostTimer = nil
	s.lastRegen = s.sched.Now()

	if s.onBoostEnd != nil {
		s.onBoostEnd()
	}

	s.onCooldown = true
	s.cooldownTimer = s.sched.After(s.boost.Cooldown(), func() {
		s.onCooldown = false
		s.cooldownTimer = nil
	})
}

// UpdateEnergyRegen adds energy for the clock time since the previous call.
// Time spent boosting is consumed without regeneration.
func (s *Snake) UpdateEnergyRegen() {
	now := s.sched.Now()
	elapsed := now - s.lastRegen
	s.lastRegen = now

	if s.boosting || s.energy >= MaxEnergy || elapsed <= 0 {
		return
	}
	s.energy = min(MaxEnergy, s.energy+elapsed.Seconds()*s.boost.RegenPerSec)
}

// CheckSelfCollision returns true if the head overlaps any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Stop cancels pending boost and cooldown timers and returns to resting.
func (s *Snake) Stop() {
	s.boostTimer.Stop()
	s.cooldownTimer.Stop()
	s.boostTimer = nil
	s.cooldownTimer = nil
	s.boosting = false
	s.onCooldown = false
	s.currentSpeed = s.baseSpeed
}
