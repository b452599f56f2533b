package swipe

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CardMotion animates the card offset after a swipe decision: off screen
// for a commit, back to the origin for a snap-back. There is no global
// animation manager; callers call Update themselves each frame.
type CardMotion struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	offset Vec2
	Done   bool
}

// NewCardMotion creates the motion for d starting at offset from.
// duration is in seconds. Commits accelerate out; a fast snap-back
// overshoots slightly, a gentle one settles.
func NewCardMotion(d SwipeDecision, from Vec2, duration float32) *CardMotion {
	to := d.ExitOffset()
	var fn ease.TweenFunc
	switch {
	case d.Committed():
		fn = ease.InQuad
	case d.ReturnSpeed == ReturnFast:
		fn = ease.OutBack
	default:
		fn = ease.OutCubic
	}
	return &CardMotion{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, fn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, fn),
		offset: from,
	}
}

// Update advances the motion by dt seconds and returns the current offset.
func (m *CardMotion) Update(dt float32) Vec2 {
	if m.Done {
		return m.offset
	}
	x, doneX := m.tweenX.Update(dt)
	y, doneY := m.tweenY.Update(dt)
	m.offset = Vec2{float64(x), float64(y)}
	m.Done = doneX && doneY
	return m.offset
}

// Offset returns the offset after the last Update.
func (m *CardMotion) Offset() Vec2 { return m.offset }
