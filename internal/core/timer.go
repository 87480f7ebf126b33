package core

import "time"

// TickGate rejects updates that arrive before a minimum interval has passed
// since the last accepted one. A zero interval accepts every update.
type TickGate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewTickGate constructs a gate with the given interval. A nil clock falls
// back to time.Now. The gate starts counting from construction.
func NewTickGate(interval time.Duration, now func() time.Time) *TickGate {
	if now == nil {
		now = time.Now
	}
	if interval < 0 {
		interval = 0
	}
	g := &TickGate{interval: interval, now: now}
	g.last = now()
	return g
}

// Interval returns the configured minimum interval.
func (g *TickGate) Interval() time.Duration { return g.interval }

// SetInterval changes the minimum interval. It is safe to call from the main loop.
func (g *TickGate) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	g.interval = d
}

// Ready reports whether enough time has elapsed to accept another update.
func (g *TickGate) Ready() bool {
	if g.interval <= 0 {
		return true
	}
	return g.now().Sub(g.last) >= g.interval
}

// Mark records the current time as the last accepted update.
func (g *TickGate) Mark() {
	g.last = g.now()
}
