package swipe

import "math"

// SwipeOutcome is the terminal decision for a released drag.
type SwipeOutcome uint8

const (
	SnapBack    SwipeOutcome = iota // card returns to its origin, no action
	CommitLeft                      // pass
	CommitRight                     // like
	CommitUp                        // super-like
)

func (o SwipeOutcome) String() string {
	switch o {
	case SnapBack:
		return "snap-back"
	case CommitLeft:
		return "commit-left"
	case CommitRight:
		return "commit-right"
	case CommitUp:
		return "commit-up"
	}
	return "unknown"
}

// Direction returns the exit direction of a commit. ok is false for SnapBack.
func (o SwipeOutcome) Direction() (d Direction, ok bool) {
	switch o {
	case CommitLeft:
		return DirectionLeft, true
	case CommitRight:
		return DirectionRight, true
	case CommitUp:
		return DirectionUp, true
	}
	return 0, false
}

// ReturnSpeed classifies a snap-back for the return animation only.
type ReturnSpeed uint8

const (
	ReturnNone   ReturnSpeed = iota // not a snap-back
	ReturnGentle                    // slow release, soft spring
	ReturnFast                      // fast release that still did not commit
)

// SwipeInput is the final pan state at release.
type SwipeInput struct {
	Displacement Vec2
	Velocity     Vec2
	Viewport     Size
}

// SwipeDecision is the immutable result of DecideSwipe. The inputs are kept
// alongside the outcome so a decision can be replayed and compared.
type SwipeDecision struct {
	Outcome          SwipeOutcome
	ExitDisplacement float64 // along the exit axis; zero for SnapBack
	Displacement     Vec2
	Velocity         Vec2
	ReturnSpeed      ReturnSpeed
}

// Committed reports whether the card leaves the screen.
func (d SwipeDecision) Committed() bool {
	return d.Outcome != SnapBack
}

// ExitOffset returns the card offset at the end of a commit animation,
// or the origin for SnapBack.
func (d SwipeDecision) ExitOffset() Vec2 {
	switch d.Outcome {
	case CommitLeft, CommitRight:
		return Vec2{X: d.ExitDisplacement, Y: d.Displacement.Y}
	case CommitUp:
		return Vec2{X: d.Displacement.X, Y: d.ExitDisplacement}
	}
	return Vec2{}
}

// DecideSwipe turns a released drag into a commit or a snap-back. Checks
// run in a fixed order and the first match wins: right, left, up. A fast
// flick in the displacement's direction commits even below the distance
// threshold. Horizontal wins over vertical on diagonals.
func DecideSwipe(in SwipeInput, cfg SwipeConfig) SwipeDecision {
	dx, dy := in.Displacement.X, in.Displacement.Y
	vx, vy := in.Velocity.X, in.Velocity.Y
	w, h := in.Viewport.Width, in.Viewport.Height

	d := SwipeDecision{Displacement: in.Displacement, Velocity: in.Velocity}

	switch {
	case dx > w*cfg.HorizontalFraction || (dx > 0 && math.Abs(vx) > cfg.VelocityThreshold):
		d.Outcome = CommitRight
		d.ExitDisplacement = w + cfg.Overshoot
	case dx < -w*cfg.HorizontalFraction || (dx < 0 && math.Abs(vx) > cfg.VelocityThreshold):
		d.Outcome = CommitLeft
		d.ExitDisplacement = -w - cfg.Overshoot
	case dy < -h*cfg.VerticalFraction || (dy < 0 && math.Abs(vy) > cfg.VelocityThreshold):
		d.Outcome = CommitUp
		d.ExitDisplacement = -h - cfg.Overshoot
	default:
		d.Outcome = SnapBack
		d.ReturnSpeed = ReturnGentle
		if in.Velocity.Len() > cfg.VelocityThreshold {
			d.ReturnSpeed = ReturnFast
		}
	}
	return d
}
