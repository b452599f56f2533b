package swipe

import "math"

// Vec2 is a 2D vector used for positions, displacements and velocities
// throughout the API. Coordinates are in screen pixels with the origin at
// the top-left and Y increasing downward; velocities are in pixels/second.
type Vec2 struct {
	X, Y float64
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Size is a viewport size in pixels.
type Size struct {
	Width, Height float64
}

// RecognizerKind identifies one of the competing gesture recognizers.
type RecognizerKind uint8

const (
	KindNone      RecognizerKind = iota // no winner (ambiguous or failed attempt)
	KindTap                             // single short contact without movement
	KindDoubleTap                       // two taps in quick succession
	KindLongPress                       // contact held still past a minimum duration
	KindPan                             // contact dragged past the activation threshold
)

var kindNames = [...]string{"none", "tap", "double-tap", "long-press", "pan"}

func (k RecognizerKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// RecognizerStatus is the state of one recognizer within a gesture attempt.
// It is monotonic: once Recognized or Failed it never changes until the
// attempt is reset.
type RecognizerStatus uint8

const (
	StatusPending    RecognizerStatus = iota // still deciding
	StatusRecognized                         // pattern matched and all dependencies failed
	StatusFailed                             // pattern violated or force-failed by another recognizer
)

func (s RecognizerStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRecognized:
		return "recognized"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Phase identifies the kind of input event delivered to recognizers.
type Phase uint8

const (
	PhaseBegin  Phase = iota // contact started
	PhaseMove                // contact moved
	PhaseEnd                 // contact released
	PhaseTick                // time advanced with no pointer change
	PhaseCancel              // contact interrupted by the system
)

// Direction is the direction a committed card leaves the screen.
type Direction uint8

const (
	DirectionLeft  Direction = iota // pass
	DirectionRight                  // like
	DirectionUp                     // super-like
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	}
	return "unknown"
}

// validCoord reports whether c can be used as a screen coordinate.
func validCoord(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
