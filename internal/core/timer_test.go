package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickGateWaitsForInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	gate := NewTickGate(70*time.Millisecond, clock.Now)

	if gate.Ready() {
		t.Fatal("gate should not be ready immediately after construction")
	}
	clock.Advance(69 * time.Millisecond)
	if gate.Ready() {
		t.Fatal("gate should not be ready before the interval elapses")
	}
	clock.Advance(time.Millisecond)
	if !gate.Ready() {
		t.Fatal("gate should be ready once the interval elapses")
	}
	gate.Mark()
	if gate.Ready() {
		t.Fatal("Mark should restart the interval")
	}
}

func TestTickGateZeroIntervalAlwaysReady(t *testing.T) {
	gate := NewTickGate(0, nil)
	for i := 0; i < 3; i++ {
		if !gate.Ready() {
			t.Fatal("ungated tick should always be ready")
		}
		gate.Mark()
	}
	gate.SetInterval(-time.Second)
	if gate.Interval() != 0 {
		t.Fatalf("negative interval should clamp to 0, got %v", gate.Interval())
	}
}
