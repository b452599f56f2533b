package swipe

import "time"

// Event is one input step delivered to the recognizers. Track is the
// contact the event belongs to; for PhaseTick it is the most recent
// contact, which may already be frozen, or nil if there has been none.
type Event struct {
	Phase Phase
	Track *PointerTrack
	Time  time.Time
}

// Recognizer is a gesture state machine. Recognizers never arbitrate among
// themselves: when a recognizer's own pattern matches it becomes held, and
// the ArbitrationGraph promotes it to StatusRecognized once everything it
// depends on has failed.
type Recognizer interface {
	Kind() RecognizerKind
	Status() RecognizerStatus
	// Held reports whether the pattern has matched while the status is
	// still Pending awaiting require-to-fail dependencies.
	Held() bool
	Handle(ev Event)
	Reset()

	base() *recognizerBase
}

// recognizerBase carries the monotonic status shared by every recognizer.
type recognizerBase struct {
	kind   RecognizerKind
	status RecognizerStatus
	held   bool
}

func (b *recognizerBase) Kind() RecognizerKind     { return b.kind }
func (b *recognizerBase) Status() RecognizerStatus { return b.status }
func (b *recognizerBase) Held() bool               { return b.held }
func (b *recognizerBase) base() *recognizerBase    { return b }

func (b *recognizerBase) reset() {
	b.status = StatusPending
	b.held = false
}

// done reports whether the recognizer takes no further input.
func (b *recognizerBase) done() bool {
	return b.status != StatusPending || b.held
}

func (b *recognizerBase) match() {
	if b.status == StatusPending {
		b.held = true
	}
}

// fail moves a pending (or held) recognizer to Failed. Terminal states
// are never changed.
func (b *recognizerBase) fail() {
	if b.status == StatusPending {
		b.status = StatusFailed
		b.held = false
	}
}

func (b *recognizerBase) promote() bool {
	if b.status == StatusPending && b.held {
		b.status = StatusRecognized
		b.held = false
		return true
	}
	return false
}

// --- Tap ---

// TapRecognizer matches a single release within MaxDuration whose
// displacement never exceeded MaxDistance.
type TapRecognizer struct {
	recognizerBase
	cfg TapConfig
}

// NewTapRecognizer creates a tap recognizer.
func NewTapRecognizer(cfg TapConfig) *TapRecognizer {
	return &TapRecognizer{recognizerBase: recognizerBase{kind: KindTap}, cfg: cfg}
}

// Reset prepares the recognizer for a new attempt.
func (r *TapRecognizer) Reset() { r.reset() }

// Handle advances the tap state machine.
func (r *TapRecognizer) Handle(ev Event) {
	if r.done() {
		return
	}
	tr := ev.Track
	switch ev.Phase {
	case PhaseBegin:
	case PhaseMove, PhaseTick:
		if tr == nil || !tr.IsActive() {
			return
		}
		if tr.Displacement().Len() > r.cfg.MaxDistance || tr.Elapsed(ev.Time) > r.cfg.MaxDuration {
			r.fail()
		}
	case PhaseEnd:
		if tr.Displacement().Len() <= r.cfg.MaxDistance && tr.Elapsed(ev.Time) <= r.cfg.MaxDuration {
			r.match()
		} else {
			r.fail()
		}
	case PhaseCancel:
		r.fail()
	}
}

// --- DoubleTap ---

// DoubleTapRecognizer matches two tap-like contacts, each within
// MaxDuration and MaxDistance of its own origin, with at most MaxDelay
// between the first release and the second press.
type DoubleTapRecognizer struct {
	recognizerBase
	cfg DoubleTapConfig

	taps        int
	lastRelease time.Time
}

// NewDoubleTapRecognizer creates a double-tap recognizer.
func NewDoubleTapRecognizer(cfg DoubleTapConfig) *DoubleTapRecognizer {
	return &DoubleTapRecognizer{recognizerBase: recognizerBase{kind: KindDoubleTap}, cfg: cfg}
}

// Reset prepares the recognizer for a new attempt.
func (r *DoubleTapRecognizer) Reset() {
	r.reset()
	r.taps = 0
	r.lastRelease = time.Time{}
}

// AwaitingSecondTap reports whether the first tap completed and the
// recognizer is waiting for the second press.
func (r *DoubleTapRecognizer) AwaitingSecondTap() bool {
	return r.status == StatusPending && !r.held && r.taps == 1
}

// Handle advances the double-tap state machine.
func (r *DoubleTapRecognizer) Handle(ev Event) {
	if r.done() {
		return
	}
	tr := ev.Track
	switch ev.Phase {
	case PhaseBegin:
		if r.taps == 1 && ev.Time.Sub(r.lastRelease) > r.cfg.MaxDelay {
			r.fail()
		}
	case PhaseMove, PhaseTick:
		if tr != nil && tr.IsActive() {
			if tr.Displacement().Len() > r.cfg.MaxDistance || tr.Elapsed(ev.Time) > r.cfg.MaxDuration {
				r.fail()
			}
			return
		}
		if r.taps == 1 && ev.Time.Sub(r.lastRelease) > r.cfg.MaxDelay {
			r.fail()
		}
	case PhaseEnd:
		if tr.Displacement().Len() > r.cfg.MaxDistance || tr.Elapsed(ev.Time) > r.cfg.MaxDuration {
			r.fail()
			return
		}
		r.taps++
		if r.taps == 2 {
			r.match()
			return
		}
		r.lastRelease = ev.Time
	case PhaseCancel:
		r.fail()
	}
}

// --- LongPress ---

// LongPressRecognizer matches a contact held for MinDuration while staying
// within MaxDistance.
type LongPressRecognizer struct {
	recognizerBase
	cfg LongPressConfig
}

// NewLongPressRecognizer creates a long-press recognizer.
func NewLongPressRecognizer(cfg LongPressConfig) *LongPressRecognizer {
	return &LongPressRecognizer{recognizerBase: recognizerBase{kind: KindLongPress}, cfg: cfg}
}

// Reset prepares the recognizer for a new attempt.
func (r *LongPressRecognizer) Reset() { r.reset() }

// Handle advances the long-press state machine.
func (r *LongPressRecognizer) Handle(ev Event) {
	if r.done() {
		return
	}
	tr := ev.Track
	switch ev.Phase {
	case PhaseBegin:
	case PhaseMove, PhaseTick, PhaseEnd:
		if tr == nil {
			return
		}
		if tr.Displacement().Len() > r.cfg.MaxDistance {
			r.fail()
			return
		}
		if tr.Elapsed(ev.Time) >= r.cfg.MinDuration {
			r.match()
			return
		}
		if ev.Phase == PhaseEnd || !tr.IsActive() {
			r.fail()
		}
	case PhaseCancel:
		r.fail()
	}
}

// --- Pan ---

// PanRecognizer matches as soon as the displacement exceeds
// ActivationDistance. Once recognized the contact keeps reporting drag
// state until release; the recognizer itself takes no further input.
type PanRecognizer struct {
	recognizerBase
	cfg PanConfig
}

// NewPanRecognizer creates a pan recognizer.
func NewPanRecognizer(cfg PanConfig) *PanRecognizer {
	return &PanRecognizer{recognizerBase: recognizerBase{kind: KindPan}, cfg: cfg}
}

// Reset prepares the recognizer for a new attempt.
func (r *PanRecognizer) Reset() { r.reset() }

// Handle advances the pan state machine.
func (r *PanRecognizer) Handle(ev Event) {
	if r.done() {
		return
	}
	tr := ev.Track
	switch ev.Phase {
	case PhaseMove:
		if tr != nil && tr.Displacement().Len() > r.cfg.ActivationDistance {
			r.match()
		}
	case PhaseEnd:
		if tr != nil && tr.Displacement().Len() > r.cfg.ActivationDistance {
			r.match()
			return
		}
		r.fail()
	case PhaseCancel:
		r.fail()
	}
}

// --- Set ---

// RecognizerSet owns one recognizer of each kind for a gesture attempt.
type RecognizerSet struct {
	Tap       *TapRecognizer
	DoubleTap *DoubleTapRecognizer
	LongPress *LongPressRecognizer
	Pan       *PanRecognizer

	all [4]Recognizer
}

// NewRecognizerSet builds the four recognizers from cfg.
func NewRecognizerSet(cfg Config) *RecognizerSet {
	s := &RecognizerSet{
		Tap:       NewTapRecognizer(cfg.Tap),
		DoubleTap: NewDoubleTapRecognizer(cfg.DoubleTap),
		LongPress: NewLongPressRecognizer(cfg.LongPress),
		Pan:       NewPanRecognizer(cfg.Pan),
	}
	s.all = [4]Recognizer{s.Tap, s.DoubleTap, s.LongPress, s.Pan}
	return s
}

// Get returns the recognizer of the given kind, or nil for KindNone.
func (s *RecognizerSet) Get(kind RecognizerKind) Recognizer {
	if kind == KindNone || int(kind) > len(s.all) {
		return nil
	}
	return s.all[kind-1]
}

// All returns the recognizers in kind order.
func (s *RecognizerSet) All() []Recognizer {
	return s.all[:]
}

// Handle delivers ev to every recognizer.
func (s *RecognizerSet) Handle(ev Event) {
	for _, r := range s.all {
		r.Handle(ev)
	}
}

// Reset starts a fresh attempt for every recognizer.
func (s *RecognizerSet) Reset() {
	for _, r := range s.all {
		r.Reset()
	}
}

// FailAll force-fails every non-terminal recognizer.
func (s *RecognizerSet) FailAll() {
	for _, r := range s.all {
		r.base().fail()
	}
}
