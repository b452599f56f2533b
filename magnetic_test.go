package swipe

import (
	"math"
	"sync"
	"testing"
)

func newTestSelector(centers map[string]float64, ids ...string) *MagneticSelector {
	m := NewMagneticSelector(DefaultConfig().Magnetic, ids...)
	for _, id := range ids {
		if x, ok := centers[id]; ok {
			m.RegisterTargetCenter(id, x)
		}
	}
	return m
}

func TestMagneticSelectorNearest(t *testing.T) {
	m := newTestSelector(map[string]float64{"a": 20, "b": 60, "c": 100}, "a", "b", "c")
	m.Move(30, nil)
	m.Move(55, nil)
	sel := m.Release(55)
	if !sel.OK || sel.TargetID != "b" {
		t.Fatalf("Release(55) = %+v, want target b", sel)
	}
	// 5px from the center with a 48px radius.
	if want := 1 - 5.0/48; math.Abs(sel.ProximityAtRelease-want) > 1e-9 {
		t.Errorf("ProximityAtRelease = %v, want %v", sel.ProximityAtRelease, want)
	}
}

func TestMagneticSelectorNoMove(t *testing.T) {
	m := newTestSelector(map[string]float64{"a": 20, "b": 60, "c": 100}, "a", "b", "c")
	if sel := m.Release(20); sel.OK {
		t.Errorf("release without a move selected %q", sel.TargetID)
	}
}

func TestMagneticSelectorTieGoesToLowerIndex(t *testing.T) {
	m := newTestSelector(map[string]float64{"a": 40, "b": 80}, "a", "b")
	m.Move(60, nil)
	if sel := m.Release(60); sel.TargetID != "a" {
		t.Errorf("tie selected %q, want a", sel.TargetID)
	}
}

func TestMagneticSelectorUnregisteredTargets(t *testing.T) {
	m := NewMagneticSelector(DefaultConfig().Magnetic, "a", "b")
	m.Move(10, nil)
	if sel := m.Release(10); sel.OK {
		t.Error("no registered centers should select nothing")
	}

	m.RegisterTargetCenter("b", 200)
	m.Move(10, nil)
	if sel := m.Release(10); sel.TargetID != "b" {
		t.Errorf("selected %q, want the only registered target b", sel.TargetID)
	}
}

func TestMagneticSelectorProximity(t *testing.T) {
	m := newTestSelector(map[string]float64{"a": 100, "b": 200}, "a", "b", "c")
	got := m.Move(124, nil)
	want := []Proximity{{"a", 0.5}, {"b", 0}, {"c", 0}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].TargetID != want[i].TargetID || math.Abs(got[i].Weight-want[i].Weight) > 1e-9 {
			t.Errorf("proximity[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMagneticSelectorInvalidPointerKeepsLast(t *testing.T) {
	m := newTestSelector(map[string]float64{"a": 20, "b": 60}, "a", "b")
	m.Move(58, nil)
	m.Move(math.NaN(), nil)
	if sel := m.Release(math.Inf(1)); sel.TargetID != "b" {
		t.Errorf("selected %q, want b from the last valid sample", sel.TargetID)
	}
}

func TestMagneticSelectorSetTargetsKeepsCenters(t *testing.T) {
	m := newTestSelector(map[string]float64{"a": 20, "b": 60}, "a", "b")
	m.SetTargets("b", "c")
	if ids := m.Targets(); len(ids) != 2 || ids[0] != "b" || ids[1] != "c" {
		t.Fatalf("Targets = %v, want [b c]", ids)
	}
	m.Move(0, nil)
	if sel := m.Release(0); sel.TargetID != "b" {
		t.Errorf("selected %q, want b with its kept center", sel.TargetID)
	}
}

func TestMagneticSelectorConcurrentRegister(t *testing.T) {
	m := NewMagneticSelector(DefaultConfig().Magnetic, "a", "b", "c")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			m.RegisterTargetCenter("b", float64(i%200))
		}
	}()
	var buf []Proximity
	for i := 0; i < 1000; i++ {
		buf = m.Move(float64(i%300), buf[:0])
	}
	wg.Wait()
	m.RegisterTargetCenter("b", 150)
	m.Move(150, nil)
	if sel := m.Release(150); sel.TargetID != "b" {
		t.Errorf("selected %q, want b", sel.TargetID)
	}
}
