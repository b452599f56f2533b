package swipe

import (
	"math"
	"testing"
)

func TestCardMotionCommitReachesExit(t *testing.T) {
	d := DecideSwipe(SwipeInput{Displacement: Vec2{200, 10}, Viewport: Size{400, 800}}, DefaultConfig().Swipe)
	m := NewCardMotion(d, Vec2{200, 10}, 0.3)

	// Exact halves avoid float32 accumulation drift.
	m.Update(0.15)
	if m.Done {
		t.Fatal("motion finished early")
	}
	m.Update(0.15)

	if !m.Done {
		t.Fatal("expected Done after full duration")
	}
	if off := m.Offset(); math.Abs(off.X-460) > 0.5 || math.Abs(off.Y-10) > 0.5 {
		t.Errorf("offset = %v, want ~{460 10}", off)
	}
}

func TestCardMotionSnapBackReturnsToOrigin(t *testing.T) {
	for _, v := range []Vec2{{0, 100}, {0, 900}} {
		d := DecideSwipe(SwipeInput{Displacement: Vec2{30, 40}, Velocity: v, Viewport: Size{400, 800}}, DefaultConfig().Swipe)
		if d.Committed() {
			t.Fatalf("velocity %v unexpectedly committed", v)
		}
		m := NewCardMotion(d, Vec2{30, 40}, 0.5)
		m.Update(0.25)
		m.Update(0.25)
		if off := m.Offset(); math.Abs(off.X) > 0.5 || math.Abs(off.Y) > 0.5 {
			t.Errorf("velocity %v: offset = %v, want ~origin", v, off)
		}
	}
}

func TestCardMotionUpdateAfterDone(t *testing.T) {
	d := SwipeDecision{Outcome: SnapBack, ReturnSpeed: ReturnGentle}
	m := NewCardMotion(d, Vec2{10, 0}, 0.1)
	m.Update(0.1)
	before := m.Offset()
	if got := m.Update(1); got != before {
		t.Errorf("Update after Done moved the card: %v -> %v", before, got)
	}
}
