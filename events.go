package swipe

import "time"

// EventType identifies a kind of observer event.
type EventType uint8

const (
	EventGesture   EventType = iota // fires when an attempt resolves to a winner (or none)
	EventDrag                       // fires on every move while a pan owns the contact
	EventDecision                   // fires when a released pan is decided
	EventProximity                  // fires on every move while the reaction picker is open
	EventSelection                  // fires when the reaction picker gesture ends
)

// GestureContext describes a resolved attempt.
type GestureContext struct {
	Outcome ArbitrationOutcome
	Origin  Vec2 // where the last contact of the attempt began
}

// DragContext describes the in-progress pan.
type DragContext struct {
	Origin       Vec2
	Current      Vec2
	Displacement Vec2
	Velocity     Vec2
	Time         time.Time
}

// DecisionContext carries the swipe decision for a released pan.
type DecisionContext struct {
	Decision SwipeDecision
	Time     time.Time
}

// ProximityContext carries the per-target closeness while the picker is open.
// Weights is reused between events; copy it to retain it.
type ProximityContext struct {
	PointerX float64
	Weights  []Proximity
}

// SelectionContext carries the end of a reaction picker gesture.
type SelectionContext struct {
	Selection ReactionSelection
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	gesture   []handler[GestureContext]
	drag      []handler[DragContext]
	decision  []handler[DecisionContext]
	proximity []handler[ProximityContext]
	selection []handler[SelectionContext]
	nextID    uint32
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventGesture:
		h.reg.gesture = removeHandler(h.reg.gesture, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case EventDecision:
		h.reg.decision = removeHandler(h.reg.decision, h.id)
	case EventProximity:
		h.reg.proximity = removeHandler(h.reg.proximity, h.id)
	case EventSelection:
		h.reg.selection = removeHandler(h.reg.selection, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func addHandler[T any](reg *handlerRegistry, s *[]handler[T], event EventType, fn func(T)) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	*s = append(*s, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, event: event}
}

func fire[T any](s []handler[T], ctx T) {
	for _, h := range s {
		h.fn(ctx)
	}
}

// OnGesture registers a callback for resolved attempts.
func (e *Engine) OnGesture(fn func(GestureContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.gesture, EventGesture, fn)
}

// OnDrag registers a callback for pan movement.
func (e *Engine) OnDrag(fn func(DragContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.drag, EventDrag, fn)
}

// OnDecision registers a callback for swipe decisions.
func (e *Engine) OnDecision(fn func(DecisionContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.decision, EventDecision, fn)
}

// OnProximity registers a callback for reaction picker proximity updates.
func (e *Engine) OnProximity(fn func(ProximityContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.proximity, EventProximity, fn)
}

// OnSelection registers a callback for the end of a reaction picker gesture.
func (e *Engine) OnSelection(fn func(SelectionContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.selection, EventSelection, fn)
}
