package swipe

import "time"

// --- Constants ---

const (
	defaultMinSampleInterval = 4 * time.Millisecond
	maxRecentSamples         = 16
)

// Sample is one accepted pointer position.
type Sample struct {
	Pos  Vec2
	Time time.Time
}

// PointerTrack accumulates the position, displacement and velocity of a
// single continuous contact. A track is live between Begin and End/Cancel;
// afterwards it is frozen and ignores further input.
//
// Invalid samples (NaN, infinite or negative coordinates, or timestamps
// earlier than the previous sample) are dropped and the previous valid
// state is kept.
type PointerTrack struct {
	origin    Vec2
	current   Vec2
	velocity  Vec2
	startTime time.Time
	lastTime  time.Time

	active    bool
	finalized bool
	cancelled bool
	moved     bool // at least one accepted move changed the position

	minInterval time.Duration
	recent      [maxRecentSamples]Sample
	recentHead  int
	recentLen   int
}

// NewPointerTrack returns an inactive track. minInterval is the smallest
// sample interval used for velocity; zero selects the default.
func NewPointerTrack(minInterval time.Duration) *PointerTrack {
	if minInterval <= 0 {
		minInterval = defaultMinSampleInterval
	}
	return &PointerTrack{minInterval: minInterval}
}

// Begin starts the track at (x, y). It returns false if the sample is
// invalid or the track was already started.
func (p *PointerTrack) Begin(x, y float64, t time.Time) bool {
	if p.active || p.finalized {
		return false
	}
	if !validCoord(x) || !validCoord(y) {
		return false
	}
	pos := Vec2{x, y}
	p.origin = pos
	p.current = pos
	p.velocity = Vec2{}
	p.startTime = t
	p.lastTime = t
	p.active = true
	p.pushRecent(Sample{Pos: pos, Time: t})
	return true
}

// Move records a new position. It returns false when the sample was
// ignored (inactive track or invalid sample).
func (p *PointerTrack) Move(x, y float64, t time.Time) bool {
	if !p.active {
		return false
	}
	if !validCoord(x) || !validCoord(y) || t.Before(p.lastTime) {
		return false
	}
	pos := Vec2{x, y}
	if pos == p.current {
		// Stationary sample: time advances, velocity is kept for the release.
		p.lastTime = t
		return true
	}
	dt := t.Sub(p.lastTime)
	if dt < p.minInterval {
		dt = p.minInterval
	}
	secs := dt.Seconds()
	p.velocity = Vec2{(pos.X - p.current.X) / secs, (pos.Y - p.current.Y) / secs}
	p.current = pos
	p.lastTime = t
	p.moved = true
	p.pushRecent(Sample{Pos: pos, Time: t})
	return true
}

// End applies the final position and freezes the track. Calling End on a
// frozen track is a no-op.
func (p *PointerTrack) End(x, y float64, t time.Time) {
	if !p.active {
		return
	}
	p.Move(x, y, t)
	p.active = false
	p.finalized = true
}

// Cancel freezes the track without a final sample. Idempotent.
func (p *PointerTrack) Cancel() {
	if !p.active {
		return
	}
	p.active = false
	p.finalized = true
	p.cancelled = true
}

func (p *PointerTrack) pushRecent(s Sample) {
	idx := (p.recentHead + p.recentLen) % maxRecentSamples
	if p.recentLen == maxRecentSamples {
		p.recentHead = (p.recentHead + 1) % maxRecentSamples
	} else {
		p.recentLen++
	}
	p.recent[idx] = s
}

// Recent appends the retained samples no older than window before the last
// sample to buf, oldest first.
func (p *PointerTrack) Recent(window time.Duration, buf []Sample) []Sample {
	for i := 0; i < p.recentLen; i++ {
		s := p.recent[(p.recentHead+i)%maxRecentSamples]
		if window > 0 && p.lastTime.Sub(s.Time) > window {
			continue
		}
		buf = append(buf, s)
	}
	return buf
}

// Origin returns the position where the contact began.
func (p *PointerTrack) Origin() Vec2 { return p.origin }

// Current returns the last accepted position.
func (p *PointerTrack) Current() Vec2 { return p.current }

// Displacement returns the cumulative displacement from the origin.
func (p *PointerTrack) Displacement() Vec2 { return p.current.Sub(p.origin) }

// Velocity returns the instantaneous velocity over the last sample interval.
func (p *PointerTrack) Velocity() Vec2 { return p.velocity }

// StartTime returns the contact start time.
func (p *PointerTrack) StartTime() time.Time { return p.startTime }

// LastTime returns the timestamp of the last accepted sample.
func (p *PointerTrack) LastTime() time.Time { return p.lastTime }

// Elapsed returns how long the contact has lasted as of now. For a frozen
// track the duration ends at the last sample.
func (p *PointerTrack) Elapsed(now time.Time) time.Duration {
	if !p.active || now.Before(p.lastTime) {
		return p.lastTime.Sub(p.startTime)
	}
	return now.Sub(p.startTime)
}

// IsActive reports whether the contact is still down.
func (p *PointerTrack) IsActive() bool { return p.active }

// IsCancelled reports whether the track ended through Cancel.
func (p *PointerTrack) IsCancelled() bool { return p.cancelled }

// Moved reports whether any move sample changed the position.
func (p *PointerTrack) Moved() bool { return p.moved }
