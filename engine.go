package swipe

import (
	"fmt"
	"time"
)

// Action labels used for optimistic actions started by the engine.
const (
	LabelLike     = "like"
	LabelReaction = "reaction"
	LabelSwipe    = "swipe"
)

// Actions receives the application events the engine resolves. Methods
// that return an undo func take part in the undo window; returning nil
// makes the action permanent immediately.
type Actions interface {
	// Tap is a single tap on the card.
	Tap()
	// Like is a double-tap on the card.
	Like() (undo func())
	// OpenReactionPicker is a long-press on the card.
	OpenReactionPicker()
	// ChooseReaction ends a picker gesture on a target.
	ChooseReaction(targetID string) (undo func())
	// DismissReactionPicker ends a picker gesture with nothing chosen.
	DismissReactionPicker()
	// SwipeCommitted is a drag released past the commit rules.
	SwipeCommitted(dir Direction) (undo func())
}

type engineMode uint8

const (
	modeIdle        engineMode = iota // no attempt
	modeArbitrating                   // recognizers competing
	modeSettled                       // resolved, waiting for the contact to end
	modeDragging                      // pan owns the contact
	modePicking                       // reaction picker owns the contact
)

// Engine turns raw pointer samples into application actions. Input
// methods must be called from one goroutine in arrival order; the undo
// coordinator may be used concurrently.
type Engine struct {
	cfg      Config
	actions  Actions
	clock    Clock
	graph    *ArbitrationGraph
	attempt  *Attempt
	track    *PointerTrack
	selector *MagneticSelector
	coord    *Coordinator
	velocity VelocityEstimator
	handlers handlerRegistry

	mode    engineMode
	joined  bool // current contact joined an attempt awaiting a second tap
	debug   bool
	proxBuf []Proximity
}

// NewEngine validates cfg and wires the recognizers, the default
// arbitration graph, the reaction selector and the undo coordinator.
// A nil clock selects RealClock.
func NewEngine(cfg Config, actions Actions, clock Clock) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if actions == nil {
		return nil, fmt.Errorf("swipe: actions must not be nil")
	}
	if clock == nil {
		clock = RealClock{}
	}
	graph := DefaultArbitrationGraph()
	return &Engine{
		cfg:      cfg,
		actions:  actions,
		clock:    clock,
		graph:    graph,
		attempt:  NewAttempt(cfg, graph),
		selector: NewMagneticSelector(cfg.Magnetic),
		coord:    NewCoordinator(clock, cfg.UndoWindow),
		velocity: newVelocityEstimator(cfg),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Clock returns the engine clock.
func (e *Engine) Clock() Clock { return e.clock }

// Selector returns the reaction selector so the layout side can register
// target centers.
func (e *Engine) Selector() *MagneticSelector { return e.selector }

// Coordinator returns the undo coordinator.
func (e *Engine) Coordinator() *Coordinator { return e.coord }

// Attempt returns the current gesture attempt for inspection.
func (e *Engine) Attempt() *Attempt { return e.attempt }

// Track returns the current (or last) contact, or nil.
func (e *Engine) Track() *PointerTrack { return e.track }

// SetViewport updates the viewport used for swipe decisions.
func (e *Engine) SetViewport(width, height float64) {
	if width > 0 && height > 0 {
		e.cfg.Viewport = Size{Width: width, Height: height}
	}
}

// Undo reverses the most recent action still inside its undo window.
func (e *Engine) Undo() bool {
	ok := e.coord.UndoLatest()
	e.debugf("undo requested: performed=%v", ok)
	return ok
}

// Close reverses pending optimistic actions and stops accepting new windows.
func (e *Engine) Close() {
	e.coord.Close()
}

// --- Input ---

// Begin starts a contact at (x, y).
func (e *Engine) Begin(x, y float64, t time.Time) {
	if e.track != nil && e.track.IsActive() {
		return
	}

	// A pending double-tap may already have run out of time; give the
	// open attempt a chance to resolve before this contact joins it.
	if e.attempt.AwaitingSecondTap() {
		e.deliver(Event{Phase: PhaseTick, Track: e.track, Time: t})
	}
	joining := e.attempt.AwaitingSecondTap()
	if !joining {
		e.attempt.Close()
	}

	tr := NewPointerTrack(e.cfg.MinSampleInterval)
	if !tr.Begin(x, y, t) {
		return
	}
	e.track = tr
	e.joined = joining

	if !joining {
		e.attempt.Start()
		e.mode = modeArbitrating
		e.debugf("attempt started at (%.1f, %.1f)", x, y)
	} else {
		e.debugf("second contact joined attempt at (%.1f, %.1f)", x, y)
	}
	e.deliver(Event{Phase: PhaseBegin, Track: tr, Time: t})
}

// Move records a pointer sample for the active contact.
func (e *Engine) Move(x, y float64, t time.Time) {
	if e.track == nil || !e.track.IsActive() {
		return
	}
	if e.debug {
		debugCheckContact(e.mode, "move")
	}
	if !e.track.Move(x, y, t) {
		return
	}
	switch e.mode {
	case modeArbitrating:
		e.deliver(Event{Phase: PhaseMove, Track: e.track, Time: t})
	case modeDragging:
		e.fireDrag(t)
	case modePicking:
		e.pick()
	}
}

// End releases the active contact at (x, y).
func (e *Engine) End(x, y float64, t time.Time) {
	if e.track == nil || !e.track.IsActive() {
		return
	}
	if e.debug {
		debugCheckContact(e.mode, "end")
	}
	e.track.End(x, y, t)
	switch e.mode {
	case modeArbitrating:
		e.deliver(Event{Phase: PhaseEnd, Track: e.track, Time: t})
		switch e.mode {
		case modeDragging:
			e.release(t)
		case modePicking:
			e.choose()
		}
	case modeDragging:
		e.release(t)
	case modePicking:
		e.choose()
	}
	e.settle()
}

// Cancel aborts the active contact. Nothing is emitted for an unresolved
// attempt; a drag snaps back and an open picker is dismissed.
func (e *Engine) Cancel() {
	if e.track == nil || !e.track.IsActive() {
		return
	}
	e.track.Cancel()
	now := e.track.LastTime()
	switch e.mode {
	case modeArbitrating:
		e.attempt.Handle(Event{Phase: PhaseCancel, Track: e.track, Time: now})
		e.debugf("attempt cancelled")
	case modeDragging:
		d := SwipeDecision{
			Outcome:      SnapBack,
			Displacement: e.track.Displacement(),
			Velocity:     e.track.Velocity(),
			ReturnSpeed:  ReturnGentle,
		}
		fire(e.handlers.decision, DecisionContext{Decision: d, Time: now})
	case modePicking:
		e.selector.Reset()
		fire(e.handlers.selection, SelectionContext{})
		e.actions.DismissReactionPicker()
	}
	e.attempt.Close()
	e.mode = modeIdle
}

// Tick advances time with no pointer change. Call it once per frame so
// that long-presses and double-tap timeouts resolve without input.
func (e *Engine) Tick(t time.Time) {
	if e.mode != modeArbitrating {
		return
	}
	e.deliver(Event{Phase: PhaseTick, Track: e.track, Time: t})
	e.settle()
}

// settle closes a resolved attempt once no contact is down.
func (e *Engine) settle() {
	if e.track != nil && e.track.IsActive() {
		return
	}
	if e.attempt.Resolved() {
		e.attempt.Close()
		e.mode = modeIdle
	}
}

// deliver feeds one event to the attempt and dispatches a resulting outcome.
func (e *Engine) deliver(ev Event) {
	out, ok := e.attempt.Handle(ev)
	if !ok {
		return
	}
	e.resolve(out)
	if e.joined && out.Winner == KindTap {
		e.restart(ev)
	}
}

// restart replays a joined contact into a fresh attempt once the first
// contact has resolved as a tap, so pan and long-press can claim it.
func (e *Engine) restart(ev Event) {
	e.joined = false
	e.attempt.Close()
	e.attempt.Start()
	e.mode = modeArbitrating
	e.debugf("joined contact restarted as a new attempt")
	e.deliver(Event{Phase: PhaseBegin, Track: e.track, Time: e.track.StartTime()})
	if ev.Phase != PhaseBegin {
		e.deliver(Event{Phase: ev.Phase, Track: e.track, Time: ev.Time})
	}
}

func (e *Engine) resolve(out ArbitrationOutcome) {
	e.debugf("attempt resolved: winner=%v", out.Winner)
	var origin Vec2
	if e.track != nil {
		origin = e.track.Origin()
	}
	fire(e.handlers.gesture, GestureContext{Outcome: out, Origin: origin})

	e.mode = modeSettled
	switch out.Winner {
	case KindTap:
		e.actions.Tap()
	case KindDoubleTap:
		e.coord.ApplyFunc(LabelLike, e.actions.Like, 0)
	case KindLongPress:
		e.selector.Reset()
		e.mode = modePicking
		e.actions.OpenReactionPicker()
	case KindPan:
		e.mode = modeDragging
		e.fireDrag(out.ResolvedAt)
	}
}

func (e *Engine) fireDrag(t time.Time) {
	fire(e.handlers.drag, DragContext{
		Origin:       e.track.Origin(),
		Current:      e.track.Current(),
		Displacement: e.track.Displacement(),
		Velocity:     e.track.Velocity(),
		Time:         t,
	})
}

// release decides a finished pan.
func (e *Engine) release(t time.Time) {
	d := DecideSwipe(SwipeInput{
		Displacement: e.track.Displacement(),
		Velocity:     e.velocity.ReleaseVelocity(e.track),
		Viewport:     e.cfg.Viewport,
	}, e.cfg.Swipe)
	e.debugf("swipe decided: %v d=(%.1f, %.1f) v=(%.1f, %.1f)", d.Outcome,
		d.Displacement.X, d.Displacement.Y, d.Velocity.X, d.Velocity.Y)
	fire(e.handlers.decision, DecisionContext{Decision: d, Time: t})

	dir, ok := d.Outcome.Direction()
	if !ok {
		return
	}
	e.coord.ApplyFunc(LabelSwipe, func() func() {
		return e.actions.SwipeCommitted(dir)
	}, 0)
}

func (e *Engine) pick() {
	x := e.track.Current().X
	e.proxBuf = e.selector.Move(x, e.proxBuf[:0])
	fire(e.handlers.proximity, ProximityContext{PointerX: x, Weights: e.proxBuf})
}

// choose ends a picker gesture.
func (e *Engine) choose() {
	sel := e.selector.Release(e.track.Current().X)
	e.debugf("reaction picker released: target=%q ok=%v", sel.TargetID, sel.OK)
	fire(e.handlers.selection, SelectionContext{Selection: sel})
	if !sel.OK {
		e.actions.DismissReactionPicker()
		return
	}
	e.coord.ApplyFunc(LabelReaction, func() func() {
		return e.actions.ChooseReaction(sel.TargetID)
	}, 0)
}
