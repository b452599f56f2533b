package swipe

// syntheticPointerEvent represents a single injected pointer event.
// Screen coordinates are used and converted through the source transform,
// identical to real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	cancel           bool
	idle             bool // consume a frame without pointer input
}

// InjectPress queues a press at the given screen coordinates. The event is
// consumed on the next Update.
func (s *EbitenSource) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true,
	})
}

// InjectMove queues a move with the pointer held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (s *EbitenSource) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true,
	})
}

// InjectRelease queues a release at the given screen coordinates.
func (s *EbitenSource) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: false,
	})
}

// InjectCancel queues a system cancel of the current contact.
func (s *EbitenSource) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectIdle queues frames with no pointer change, keeping any injected
// contact held.
func (s *EbitenSource) InjectIdle(frames int) {
	for i := 0; i < frames; i++ {
		s.injectQueue = append(s.injectQueue, syntheticPointerEvent{idle: true})
	}
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (s *EbitenSource) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectHold queues a press, frames idle frames, then a release.
func (s *EbitenSource) InjectHold(x, y float64, frames int) {
	s.InjectPress(x, y)
	s.InjectIdle(frames)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *EbitenSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (s *EbitenSource) Pending() int { return len(s.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real
// input is skipped for that frame).
func (s *EbitenSource) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch {
	case evt.idle:
	case evt.cancel:
		s.engine.Cancel()
		s.contact.down = false
	default:
		x, y := s.toView(evt.screenX, evt.screenY)
		s.processPointer(mousePointer, x, y, evt.pressed)
	}
	return true
}
