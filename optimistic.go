package swipe

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ActionStatus is the lifecycle state of an optimistic action.
type ActionStatus uint32

const (
	ActionApplied         ActionStatus = iota // effect ran, undo window open
	ActionCommitted                           // window expired, action is permanent
	ActionUndoneByUser                        // user requested undo inside the window
	ActionUndoneByCleanup                     // coordinator closed while the window was open
)

func (s ActionStatus) String() string {
	switch s {
	case ActionApplied:
		return "applied"
	case ActionCommitted:
		return "committed"
	case ActionUndoneByUser:
		return "undone-by-user"
	case ActionUndoneByCleanup:
		return "undone-by-cleanup"
	}
	return "unknown"
}

// Terminal reports whether s is a final status.
func (s ActionStatus) Terminal() bool { return s != ActionApplied }

// UndoNotifier is told when an undo affordance should appear and
// disappear. Calls are notifications; the coordinator ignores what the
// notifier does with them.
type UndoNotifier interface {
	UndoWindowOpened(a *OptimisticAction)
	UndoWindowClosed(a *OptimisticAction)
}

// OptimisticAction is one applied effect that may still be reversed.
// Exactly one terminal status is ever reached and the undo callback runs
// at most once; the status compare-and-swap is the only guard.
type OptimisticAction struct {
	ID        uuid.UUID
	Label     string
	AppliedAt time.Time
	Window    time.Duration

	status atomic.Uint32
	done   chan struct{}
	coord  *Coordinator

	mu    sync.Mutex
	undo  func()
	timer Timer
}

// Status returns the current status.
func (a *OptimisticAction) Status() ActionStatus {
	return ActionStatus(a.status.Load())
}

// Done is closed once the action reaches a terminal status.
func (a *OptimisticAction) Done() <-chan struct{} {
	return a.done
}

// Deadline returns when the undo window closes.
func (a *OptimisticAction) Deadline() time.Time {
	return a.AppliedAt.Add(a.Window)
}

// Remaining returns the time left in the undo window as of now.
func (a *OptimisticAction) Remaining(now time.Time) time.Duration {
	if a.Status().Terminal() {
		return 0
	}
	if r := a.Deadline().Sub(now); r > 0 {
		return r
	}
	return 0
}

// RequestUndo reverses the action if its window is still open. It reports
// whether this call performed the undo; repeated calls are no-ops.
func (a *OptimisticAction) RequestUndo() bool {
	return a.finish(ActionUndoneByUser)
}

func (a *OptimisticAction) expire() {
	a.finish(ActionCommitted)
}

func (a *OptimisticAction) finish(to ActionStatus) bool {
	if !a.status.CompareAndSwap(uint32(ActionApplied), uint32(to)) {
		return false
	}
	a.mu.Lock()
	undo, timer := a.undo, a.timer
	a.undo, a.timer = nil, nil
	a.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if to != ActionCommitted && undo != nil {
		undo()
	}
	close(a.done)
	if a.coord != nil {
		a.coord.release(a)
	}
	return true
}

// Coordinator applies optimistic actions and owns their undo windows.
// It is safe for concurrent use: timers fire on their own goroutines and
// may race with RequestUndo, UndoLatest, CommitAll and Close.
type Coordinator struct {
	clock    Clock
	window   time.Duration
	notifier UndoNotifier

	mu     sync.Mutex
	live   []*OptimisticAction
	closed bool
}

// NewCoordinator creates a coordinator using clock for countdowns and
// window as the default undo window. A nil clock selects RealClock.
func NewCoordinator(clock Clock, window time.Duration) *Coordinator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Coordinator{clock: clock, window: window}
}

// SetNotifier sets the presentation collaborator. Set it before the first
// Apply.
func (c *Coordinator) SetNotifier(n UndoNotifier) {
	c.notifier = n
}

// Apply runs effect synchronously and opens an undo window of the given
// duration (the coordinator default if zero or negative). A nil undo, or a
// closed coordinator, commits immediately without opening a window.
func (c *Coordinator) Apply(label string, effect func(), undo func(), window time.Duration) *OptimisticAction {
	return c.ApplyFunc(label, func() func() {
		if effect != nil {
			effect()
		}
		return undo
	}, window)
}

// ApplyFunc is Apply for effects that produce their own undo. The undo
// returned by effect may be nil.
func (c *Coordinator) ApplyFunc(label string, effect func() (undo func()), window time.Duration) *OptimisticAction {
	var undo func()
	if effect != nil {
		undo = effect()
	}
	if window <= 0 {
		window = c.window
	}
	a := &OptimisticAction{
		ID:        uuid.New(),
		Label:     label,
		AppliedAt: c.clock.Now(),
		Window:    window,
		done:      make(chan struct{}),
		undo:      undo,
	}

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if undo == nil || closed || window <= 0 {
		a.undo = nil
		a.status.Store(uint32(ActionCommitted))
		close(a.done)
		return a
	}

	if c.notifier != nil {
		c.notifier.UndoWindowOpened(a)
	}
	a.coord = c
	c.mu.Lock()
	if c.closed {
		// Close ran after the window was announced; reverse like Close does.
		c.mu.Unlock()
		a.finish(ActionUndoneByCleanup)
		return a
	}
	c.live = append(c.live, a)
	c.mu.Unlock()

	a.mu.Lock()
	if !a.Status().Terminal() {
		a.timer = c.clock.AfterFunc(window, a.expire)
	}
	a.mu.Unlock()
	return a
}

// release drops a terminal action from the live set and notifies.
func (c *Coordinator) release(a *OptimisticAction) {
	c.mu.Lock()
	for i, l := range c.live {
		if l == a {
			copy(c.live[i:], c.live[i+1:])
			c.live[len(c.live)-1] = nil
			c.live = c.live[:len(c.live)-1]
			break
		}
	}
	c.mu.Unlock()
	if c.notifier != nil {
		c.notifier.UndoWindowClosed(a)
	}
}

// Latest returns the most recently applied action whose window is open.
func (c *Coordinator) Latest() *OptimisticAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.live) == 0 {
		return nil
	}
	return c.live[len(c.live)-1]
}

// Live returns a snapshot of the actions whose windows are open, oldest first.
func (c *Coordinator) Live() []*OptimisticAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*OptimisticAction, len(c.live))
	copy(out, c.live)
	return out
}

// UndoLatest undoes the most recent live action. It reports whether an
// undo was performed; losing the race with expiry reports false.
func (c *Coordinator) UndoLatest() bool {
	a := c.Latest()
	if a == nil {
		return false
	}
	return a.RequestUndo()
}

// CommitAll closes every open window early, making the actions permanent.
func (c *Coordinator) CommitAll() {
	for _, a := range c.Live() {
		a.finish(ActionCommitted)
	}
}

// Close reverses every action still inside its window and makes later
// Apply calls commit immediately.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	for _, a := range c.Live() {
		a.finish(ActionUndoneByCleanup)
	}
}
