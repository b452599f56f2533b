package swipe

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Ms     int     `json:"ms,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "hold": true, "wait": true,
	"advance": true, "undo": true,
}

// ScriptRunner sequences injected pointer events across frames for
// automated gesture playback. Attach to a source via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script and returns a ScriptRunner ready
// to be attached to an EbitenSource.
//
//	{"steps": [
//	  {"action": "drag", "fromX": 200, "fromY": 400, "toX": 20, "toY": 400, "frames": 8},
//	  {"action": "undo"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("swipe: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("swipe: parse script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("swipe: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from EbitenSource.Update.
func (r *ScriptRunner) step(s *EbitenSource) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "cancel":
		s.InjectCancel()
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "hold":
		s.InjectHold(st.X, st.Y, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "advance":
		// Only meaningful under a manual clock; real time moves on its own.
		if mc, ok := s.engine.Clock().(*ManualClock); ok {
			mc.Advance(time.Duration(st.Ms) * time.Millisecond)
		}
	case "undo":
		s.engine.Undo()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
