package snake

// requestFrame schedules the next frame and tracks it with the world timers.
func (g *Game) requestFrame() {
	g.frame = g.world.Add(g.sched.RequestFrame(g.onFrame))
}

// onFrame runs once per display frame. The next frame is requested before
// the tick so a tick that ends the game can cancel it.
func (g *Game) onFrame() {
	g.frame = nil
	if !g.running {
		return
	}
	g.requestFrame()
	g.snake.UpdateEnergyRegen()

	now := g.sched.Now()
	if now-g.lastTick >= g.snake.CurrentSpeed() {
		g.lastTick = now
		g.tick()
	}
}

// resync restarts the tick cadence from now.
func (g *Game) resync() {
	g.frame.Stop()
	g.lastTick = g.sched.Now()
	g.requestFrame()
}
