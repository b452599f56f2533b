package swipe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecideSwipe(t *testing.T) {
	cfg := DefaultConfig().Swipe
	vp := Size{Width: 400, Height: 800}

	tests := []struct {
		name string
		d, v Vec2
		want SwipeOutcome
	}{
		{"half width right", Vec2{200, 0}, Vec2{}, CommitRight},
		{"flick right", Vec2{40, 0}, Vec2{800, 0}, CommitRight},
		{"short slow right", Vec2{40, 0}, Vec2{}, SnapBack},
		{"half width left", Vec2{-200, 0}, Vec2{}, CommitLeft},
		{"flick left", Vec2{-40, 0}, Vec2{-800, 0}, CommitLeft},
		{"up", Vec2{0, -300}, Vec2{}, CommitUp},
		{"flick up", Vec2{0, -50}, Vec2{0, -900}, CommitUp},
		{"down never commits", Vec2{0, 400}, Vec2{0, 2000}, SnapBack},
		{"diagonal prefers horizontal", Vec2{150, -300}, Vec2{}, CommitRight},
		{"just under threshold", Vec2{119, 0}, Vec2{499, 0}, SnapBack},
		// The velocity branch checks magnitude, not sign.
		{"flick against displacement", Vec2{30, 0}, Vec2{-900, 0}, CommitRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideSwipe(SwipeInput{Displacement: tt.d, Velocity: tt.v, Viewport: vp}, cfg)
			if got.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", got.Outcome, tt.want)
			}
		})
	}
}

func TestDecideSwipeExitDisplacement(t *testing.T) {
	cfg := DefaultConfig().Swipe
	vp := Size{Width: 400, Height: 800}

	got := DecideSwipe(SwipeInput{Displacement: Vec2{200, 12}, Viewport: vp}, cfg)
	want := SwipeDecision{
		Outcome:          CommitRight,
		ExitDisplacement: 460,
		Displacement:     Vec2{200, 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecideSwipe mismatch (-want +got):\n%s", diff)
	}
	if off := got.ExitOffset(); off != (Vec2{460, 12}) {
		t.Errorf("ExitOffset = %v, want {460 12}", off)
	}

	up := DecideSwipe(SwipeInput{Displacement: Vec2{10, -400}, Viewport: vp}, cfg)
	if up.ExitDisplacement != -860 {
		t.Errorf("up ExitDisplacement = %v, want -860", up.ExitDisplacement)
	}
	left := DecideSwipe(SwipeInput{Displacement: Vec2{-200, 0}, Viewport: vp}, cfg)
	if left.ExitDisplacement != -460 {
		t.Errorf("left ExitDisplacement = %v, want -460", left.ExitDisplacement)
	}
}

func TestDecideSwipeReturnSpeed(t *testing.T) {
	cfg := DefaultConfig().Swipe
	vp := Size{Width: 400, Height: 800}

	gentle := DecideSwipe(SwipeInput{Displacement: Vec2{20, 10}, Velocity: Vec2{0, 100}, Viewport: vp}, cfg)
	if gentle.ReturnSpeed != ReturnGentle {
		t.Errorf("ReturnSpeed = %v, want gentle", gentle.ReturnSpeed)
	}
	fast := DecideSwipe(SwipeInput{Displacement: Vec2{0, 40}, Velocity: Vec2{0, 900}, Viewport: vp}, cfg)
	if fast.ReturnSpeed != ReturnFast || fast.Outcome != SnapBack {
		t.Errorf("got %v/%v, want snap-back with fast return", fast.Outcome, fast.ReturnSpeed)
	}
	if fast.ExitOffset() != (Vec2{}) {
		t.Error("snap-back should return to the origin")
	}
}

func TestDecideSwipeDeterministic(t *testing.T) {
	cfg := DefaultConfig().Swipe
	in := SwipeInput{Displacement: Vec2{37.5, -12}, Velocity: Vec2{612, -40}, Viewport: Size{390, 844}}
	first := DecideSwipe(in, cfg)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, DecideSwipe(in, cfg)); diff != "" {
			t.Fatalf("decision changed on replay:\n%s", diff)
		}
	}
}

func TestSwipeOutcomeDirection(t *testing.T) {
	tests := []struct {
		o      SwipeOutcome
		want   Direction
		wantOK bool
	}{
		{SnapBack, 0, false},
		{CommitLeft, DirectionLeft, true},
		{CommitRight, DirectionRight, true},
		{CommitUp, DirectionUp, true},
	}
	for _, tt := range tests {
		d, ok := tt.o.Direction()
		if ok != tt.wantOK || (ok && d != tt.want) {
			t.Errorf("%v.Direction() = %v, %v; want %v, %v", tt.o, d, ok, tt.want, tt.wantOK)
		}
	}
}
