package swipe

import (
	"math"
	"sync"
)

// Proximity is the continuous closeness of the pointer to one target,
// in [0, 1]. It is consumed by presentation only.
type Proximity struct {
	TargetID string
	Weight   float64
}

// ReactionSelection is the result of a reaction picker gesture. OK is
// false when nothing was chosen.
type ReactionSelection struct {
	TargetID           string
	OK                 bool
	ProximityAtRelease float64
}

type magneticTarget struct {
	id         string
	center     float64
	registered bool
}

// MagneticSelector resolves the reaction nearest to a moving pointer.
// Target centers are written by the layout side, possibly from another
// goroutine, and read on every pointer sample; a stale center is corrected
// by the next sample.
//
// Targets keep the order in which they were declared; ties go to the lower
// index.
type MagneticSelector struct {
	mu      sync.RWMutex
	targets []magneticTarget
	index   map[string]int
	radius  float64

	moved bool
	lastX float64
}

// NewMagneticSelector creates a selector with the given targets declared
// in order. Centers arrive later via RegisterTargetCenter.
func NewMagneticSelector(cfg MagneticConfig, ids ...string) *MagneticSelector {
	m := &MagneticSelector{radius: cfg.InfluenceRadius, index: make(map[string]int)}
	m.SetTargets(ids...)
	return m
}

// SetTargets replaces the declared target list. Centers already registered
// for ids that remain are kept.
func (m *MagneticSelector) SetTargets(ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old := m.targets
	oldIndex := m.index
	m.targets = make([]magneticTarget, 0, len(ids))
	m.index = make(map[string]int, len(ids))
	for _, id := range ids {
		if _, dup := m.index[id]; dup {
			continue
		}
		t := magneticTarget{id: id}
		if i, ok := oldIndex[id]; ok {
			t = old[i]
		}
		m.index[id] = len(m.targets)
		m.targets = append(m.targets, t)
	}
}

// RegisterTargetCenter records the horizontal center of a target. An id
// that was never declared is appended after the declared targets.
func (m *MagneticSelector) RegisterTargetCenter(id string, x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[id]
	if !ok {
		i = len(m.targets)
		m.index[id] = i
		m.targets = append(m.targets, magneticTarget{id: id})
	}
	m.targets[i].center = x
	m.targets[i].registered = true
}

// Targets returns the declared target ids in order.
func (m *MagneticSelector) Targets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, len(m.targets))
	for i, t := range m.targets {
		ids[i] = t.id
	}
	return ids
}

// Reset starts a new selection gesture.
func (m *MagneticSelector) Reset() {
	m.moved = false
	m.lastX = 0
}

// Move records a pointer sample and appends the proximity of every target
// to buf. Targets without a registered center have zero proximity.
func (m *MagneticSelector) Move(x float64, buf []Proximity) []Proximity {
	if !validCoord(x) {
		x = m.lastX
	} else {
		m.moved = true
		m.lastX = x
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.targets {
		buf = append(buf, Proximity{TargetID: t.id, Weight: m.proximity(t, x)})
	}
	return buf
}

func (m *MagneticSelector) proximity(t magneticTarget, x float64) float64 {
	if !t.registered || m.radius <= 0 {
		return 0
	}
	return clamp01(1 - math.Abs(x-t.center)/m.radius)
}

// nearest returns the index of the closest registered target, or -1.
// Caller holds mu.
func (m *MagneticSelector) nearest(x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, t := range m.targets {
		if !t.registered {
			continue
		}
		if d := math.Abs(x - t.center); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Release ends the gesture at pointer x. A gesture that never moved is a
// cancel, not a pick of the first target.
func (m *MagneticSelector) Release(x float64) ReactionSelection {
	moved := m.moved
	if !validCoord(x) {
		x = m.lastX
	}
	m.Reset()
	if !moved {
		return ReactionSelection{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.nearest(x)
	if i < 0 {
		return ReactionSelection{}
	}
	t := m.targets[i]
	return ReactionSelection{TargetID: t.id, OK: true, ProximityAtRelease: m.proximity(t, x)}
}
