package swipe

import "log"

// Logf is the package diagnostic logger. It defaults to log.Printf and may
// be replaced with SetLogger.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// SetDebug enables per-event diagnostic lines for this engine.
func (e *Engine) SetDebug(on bool) {
	e.debug = on
}

// debugf logs a diagnostic line when debug mode is on.
func (e *Engine) debugf(format string, v ...any) {
	if !e.debug {
		return
	}
	Logf("[swipe] "+format, v...)
}

// debugCheckContact panics when a contact phase arrives in a mode that
// cannot produce it. Only called in debug mode.
func debugCheckContact(m engineMode, op string) {
	if m == modeIdle {
		panic("swipe debug: " + op + " with no attempt in progress")
	}
}
