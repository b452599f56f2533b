package swipe

import (
	"fmt"
	"time"
)

// ArbitrationOutcome is the single result of a gesture attempt.
// Winner is KindNone when every recognizer failed.
type ArbitrationOutcome struct {
	Winner     RecognizerKind
	ResolvedAt time.Time
}

// requirement makes waiter unable to reach Recognized until on has failed.
type requirement struct {
	waiter, on RecognizerKind
}

// cancellation force-fails losers as soon as winner is recognized.
type cancellation struct {
	winner RecognizerKind
	losers []RecognizerKind
}

// ArbitrationGraph is a static dependency graph over the recognizer kinds.
// Cancellations are applied in the order they were added; held
// recognizers are promoted one at a time in priority order so that every
// promotion is followed by a cancellation pass.
type ArbitrationGraph struct {
	requires []requirement
	cancels  []cancellation
	priority []RecognizerKind
}

// NewArbitrationGraph returns an empty graph that promotes recognizers in
// the given priority order.
func NewArbitrationGraph(priority ...RecognizerKind) *ArbitrationGraph {
	return &ArbitrationGraph{priority: priority}
}

// DefaultArbitrationGraph wires the card gestures:
//
//   - an activated pan fails tap, double-tap and long-press;
//   - long-press and the tap group are exclusive;
//   - double-tap waits for long-press to fail, tap waits for double-tap.
func DefaultArbitrationGraph() *ArbitrationGraph {
	g := NewArbitrationGraph(KindPan, KindLongPress, KindDoubleTap, KindTap)
	g.Cancels(KindPan, KindTap, KindDoubleTap, KindLongPress)
	g.Cancels(KindLongPress, KindTap, KindDoubleTap)
	g.Cancels(KindDoubleTap, KindLongPress, KindTap)
	g.Cancels(KindTap, KindLongPress)
	g.RequireToFail(KindDoubleTap, KindLongPress)
	g.RequireToFail(KindTap, KindDoubleTap)
	return g
}

// RequireToFail makes waiter wait until on has failed.
func (g *ArbitrationGraph) RequireToFail(waiter, on RecognizerKind) {
	g.requires = append(g.requires, requirement{waiter: waiter, on: on})
}

// Cancels makes winner force-fail every loser once it is recognized.
func (g *ArbitrationGraph) Cancels(winner RecognizerKind, losers ...RecognizerKind) {
	g.cancels = append(g.cancels, cancellation{winner: winner, losers: losers})
}

// DependsOn reports whether waiter has a require-to-fail edge on on.
func (g *ArbitrationGraph) DependsOn(waiter, on RecognizerKind) bool {
	for _, req := range g.requires {
		if req.waiter == waiter && req.on == on {
			return true
		}
	}
	return false
}

func (g *ArbitrationGraph) dependenciesFailed(set *RecognizerSet, kind RecognizerKind) bool {
	for _, req := range g.requires {
		if req.waiter != kind {
			continue
		}
		if dep := set.Get(req.on); dep != nil && dep.Status() != StatusFailed {
			return false
		}
	}
	return true
}

func (g *ArbitrationGraph) applyCancels(set *RecognizerSet) bool {
	changed := false
	for _, c := range g.cancels {
		w := set.Get(c.winner)
		if w == nil || w.Status() != StatusRecognized {
			continue
		}
		for _, kind := range c.losers {
			r := set.Get(kind)
			if r != nil && r.Status() == StatusPending {
				r.base().fail()
				changed = true
			}
		}
	}
	return changed
}

func (g *ArbitrationGraph) promoteOne(set *RecognizerSet) bool {
	for _, kind := range g.priority {
		r := set.Get(kind)
		if r == nil || !r.Held() {
			continue
		}
		if g.dependenciesFailed(set, kind) && r.base().promote() {
			return true
		}
	}
	return false
}

// Settle applies cancellations and promotions until nothing changes.
func (g *ArbitrationGraph) Settle(set *RecognizerSet) {
	for {
		g.applyCancels(set)
		if !g.promoteOne(set) {
			return
		}
	}
}

// Resolve settles the set and reports the outcome if the attempt is
// decided: exactly one recognizer recognized, or all failed.
// Two recognized recognizers mean the graph is miswired; Resolve panics.
func (g *ArbitrationGraph) Resolve(set *RecognizerSet, now time.Time) (ArbitrationOutcome, bool) {
	g.Settle(set)

	var winners []RecognizerKind
	failed := 0
	for _, r := range set.All() {
		switch r.Status() {
		case StatusRecognized:
			winners = append(winners, r.Kind())
		case StatusFailed:
			failed++
		}
	}
	switch {
	case len(winners) > 1:
		panic(fmt.Sprintf("swipe: arbitration tie between %v", winners))
	case len(winners) == 1:
		return ArbitrationOutcome{Winner: winners[0], ResolvedAt: now}, true
	case failed == len(set.All()):
		return ArbitrationOutcome{Winner: KindNone, ResolvedAt: now}, true
	}
	return ArbitrationOutcome{}, false
}

// --- Attempt ---

// Attempt runs one gesture attempt: the recognizer set, the graph and the
// resolution latch. An attempt may span two contacts while a double-tap is
// still possible.
type Attempt struct {
	graph *ArbitrationGraph
	set   *RecognizerSet

	outcome   ArbitrationOutcome
	resolved  bool
	cancelled bool
	open      bool
}

// NewAttempt creates an idle attempt.
func NewAttempt(cfg Config, graph *ArbitrationGraph) *Attempt {
	if graph == nil {
		graph = DefaultArbitrationGraph()
	}
	return &Attempt{graph: graph, set: NewRecognizerSet(cfg)}
}

// Start resets every recognizer for a new attempt.
func (a *Attempt) Start() {
	a.set.Reset()
	a.outcome = ArbitrationOutcome{}
	a.resolved = false
	a.cancelled = false
	a.open = true
}

// Handle feeds ev to the recognizers and returns the outcome when this
// event resolved the attempt. Events after resolution are ignored, so a
// late recognition can never claim the attempt.
func (a *Attempt) Handle(ev Event) (ArbitrationOutcome, bool) {
	if !a.open || a.resolved {
		return ArbitrationOutcome{}, false
	}
	if ev.Phase == PhaseCancel {
		a.set.FailAll()
		a.cancelled = true
		a.resolved = true
		return ArbitrationOutcome{}, false
	}
	a.set.Handle(ev)
	out, ok := a.graph.Resolve(a.set, ev.Time)
	if !ok {
		return ArbitrationOutcome{}, false
	}
	a.outcome = out
	a.resolved = true
	return out, true
}

// Close ends the attempt; a new one needs Start.
func (a *Attempt) Close() { a.open = false }

// Open reports whether the attempt has been started and not closed.
func (a *Attempt) Open() bool { return a.open }

// Resolved reports whether the attempt has a final outcome (or was cancelled).
func (a *Attempt) Resolved() bool { return a.resolved }

// Cancelled reports whether the attempt was discarded by a contact cancel.
func (a *Attempt) Cancelled() bool { return a.cancelled }

// Outcome returns the resolved outcome.
func (a *Attempt) Outcome() ArbitrationOutcome { return a.outcome }

// Recognizers exposes the recognizer set for inspection.
func (a *Attempt) Recognizers() *RecognizerSet { return a.set }

// AwaitingSecondTap reports whether the attempt is open only because a
// double-tap may still follow.
func (a *Attempt) AwaitingSecondTap() bool {
	return a.open && !a.resolved && a.set.DoubleTap.AwaitingSecondTap()
}
