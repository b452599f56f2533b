package swipe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const mousePointer = -1 // pointer id used for the mouse

// --- Contact state ---

type contactState struct {
	down    bool
	pointer int // mousePointer or an ebiten.TouchID
	lastX   float64
	lastY   float64
}

// EbitenSource polls Ebitengine input once per frame and feeds the engine.
// Only one contact is arbitrated at a time: the first pointer to go down
// owns the gesture, and a second simultaneous touch cancels it.
//
// Call Update from your game's Update method.
type EbitenSource struct {
	engine *Engine

	contact      contactState
	touchBuf     []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	runner       *ScriptRunner
	screenToView func(x, y float64) (float64, float64)
}

// NewEbitenSource creates a source driving engine.
func NewEbitenSource(engine *Engine) *EbitenSource {
	return &EbitenSource{engine: engine}
}

// SetTransform sets a conversion from screen to view coordinates, for
// example when the card view is scaled or offset inside the window.
func (s *EbitenSource) SetTransform(fn func(x, y float64) (float64, float64)) {
	s.screenToView = fn
}

// SetScriptRunner attaches a runner whose step is executed at the start of
// every Update.
func (s *EbitenSource) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Engine returns the engine being driven.
func (s *EbitenSource) Engine() *Engine { return s.engine }

// Update processes one frame of input and advances engine time.
func (s *EbitenSource) Update() {
	if s.runner != nil {
		s.runner.step(s)
	}
	if !s.processInjectedInput() {
		s.processMouse()
		s.processTouches()
	}
	s.engine.Tick(s.engine.Clock().Now())
}

func (s *EbitenSource) toView(x, y float64) (float64, float64) {
	if s.screenToView != nil {
		return s.screenToView(x, y)
	}
	return x, y
}

// processMouse handles the left mouse button as a contact.
func (s *EbitenSource) processMouse() {
	if s.contact.down && s.contact.pointer != mousePointer {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := s.toView(float64(mx), float64(my))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(mousePointer, x, y, pressed)
}

// processTouches handles touch input. The owning touch is followed until
// it lifts; any other touch while it is down cancels the gesture.
func (s *EbitenSource) processTouches() {
	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])

	if s.contact.down && s.contact.pointer != mousePointer {
		owner := ebiten.TouchID(s.contact.pointer)
		found := false
		for _, id := range s.touchBuf {
			if id == owner {
				found = true
				break
			}
		}
		if !found {
			s.processPointer(s.contact.pointer, s.contact.lastX, s.contact.lastY, false)
			return
		}
		if len(s.touchBuf) > 1 {
			s.engine.Cancel()
			s.contact.down = false
			return
		}
		tx, ty := ebiten.TouchPosition(owner)
		x, y := s.toView(float64(tx), float64(ty))
		s.processPointer(s.contact.pointer, x, y, true)
		return
	}

	if s.contact.down || len(s.touchBuf) != 1 {
		return
	}
	id := s.touchBuf[0]
	tx, ty := ebiten.TouchPosition(id)
	x, y := s.toView(float64(tx), float64(ty))
	s.processPointer(int(id), x, y, true)
}

// processPointer runs the press/move/release state machine for the owning
// pointer.
func (s *EbitenSource) processPointer(pointer int, x, y float64, pressed bool) {
	c := &s.contact
	now := s.engine.Clock().Now()

	switch {
	case pressed && !c.down:
		c.down = true
		c.pointer = pointer
		c.lastX, c.lastY = x, y
		s.engine.Begin(x, y, now)
	case !pressed && c.down:
		c.down = false
		s.engine.End(x, y, now)
	case pressed && c.down:
		if x != c.lastX || y != c.lastY {
			s.engine.Move(x, y, now)
			c.lastX, c.lastY = x, y
		}
	}
}
