// Package swipe is a gesture arbitration and swipe-decision engine for
// card-style interfaces built on [Ebitengine].
//
// A single contact on a card can mean several things: a tap, a double-tap
// that likes the card, a long-press that opens a reaction picker, or a drag
// that swipes the card away. Swipe runs one recognizer per gesture, lets an
// arbitration graph pick exactly one winner per attempt, and turns that
// winner into an application event whose effect can be undone for a short
// window.
//
// # Quick start
//
// Implement [Actions], create an [Engine], and feed it input from an
// [EbitenSource] inside your game's Update:
//
//	engine, err := swipe.NewEngine(swipe.DefaultConfig(), myActions, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	source := swipe.NewEbitenSource(engine)
//
//	func (g *Game) Update() error { g.source.Update(); return nil }
//
// Engines can also be driven directly with [Engine.Begin], [Engine.Move],
// [Engine.End], [Engine.Cancel] and [Engine.Tick], which is how the input
// source and the tests do it.
//
// # Pipeline
//
// Every contact is tracked by a [PointerTrack]. Its samples are delivered
// to a [RecognizerSet] whose four recognizers ([TapRecognizer],
// [DoubleTapRecognizer], [LongPressRecognizer], [PanRecognizer]) each run
// their own state machine. The [ArbitrationGraph] holds the require-to-fail
// and cancel edges between them and emits exactly one
// [ArbitrationOutcome] per attempt.
//
// A winning pan is decided on release by [DecideSwipe], a pure function of
// displacement, velocity and viewport. A winning long-press hands the
// contact to the [MagneticSelector], which reports per-target [Proximity]
// while the pointer moves and selects the nearest reaction on release.
//
// Likes, reactions and committed swipes go through the [Coordinator], which
// applies them immediately and keeps an [OptimisticAction] open for undo
// until its window expires. Exactly one terminal state is reached per
// action even when undo and expiry race.
//
// # Observing the engine
//
// Presentation code registers callbacks with [Engine.OnGesture],
// [Engine.OnDrag], [Engine.OnDecision], [Engine.OnProximity] and
// [Engine.OnSelection]. Each returns a [CallbackHandle] for removal.
// [CardMotion] animates the card after a decision.
//
// # Configuration
//
// [DefaultConfig] returns the stock thresholds. Every field may be changed
// per engine, and [LoadConfig] applies a JSON override file on top of the
// defaults.
//
// # Testing
//
// [ManualClock] drives the engine and the undo windows deterministically.
// [EbitenSource.InjectTap], [EbitenSource.InjectDrag] and related methods
// queue synthetic input, and [LoadScript] plays back a JSON gesture script:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 300, "fromY": 400, "toX": 20, "toY": 400, "frames": 6},
//	  {"action": "wait", "frames": 10},
//	  {"action": "undo"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package swipe
