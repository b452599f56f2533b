package swipe

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tap", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 300, "fromY": 400, "toX": 20, "toY": 400, "frames": 6},
			{"action": "undo"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "tap" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].ToX != 20 || runner.steps[2].Frames != 6 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	_, err := LoadScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "screenshot"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerSwipeAndUndo(t *testing.T) {
	s, clock, actions := newTestSource(t)

	data := []byte(`{"steps": [
		{"action": "drag", "fromX": 300, "fromY": 400, "toX": 20, "toY": 400, "frames": 6},
		{"action": "wait", "frames": 2},
		{"action": "undo"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)

	for i := 0; i < 100 && !runner.Done(); i++ {
		injectedFrame(s, clock)
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	if len(actions.calls) != 1 || actions.calls[0] != "swipe:left" {
		t.Errorf("calls = %v, want [swipe:left]", actions.calls)
	}
	if len(actions.undone) != 1 || actions.undone[0] != "swipe:left" {
		t.Errorf("undone = %v, want [swipe:left]", actions.undone)
	}
}

func TestRunnerAdvanceCommits(t *testing.T) {
	s, clock, actions := newTestSource(t)

	data := []byte(`{"steps": [
		{"action": "drag", "fromX": 100, "fromY": 400, "toX": 380, "toY": 400, "frames": 4},
		{"action": "advance", "ms": 6000},
		{"action": "undo"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		injectedFrame(s, clock)
	}
	if len(actions.calls) != 1 || actions.calls[0] != "swipe:right" {
		t.Errorf("calls = %v, want [swipe:right]", actions.calls)
	}
	if len(actions.undone) != 0 {
		t.Errorf("undo after the window reversed %v", actions.undone)
	}
}

func TestRunnerDoneWithoutSteps(t *testing.T) {
	runner := &ScriptRunner{}
	s, clock, _ := newTestSource(t)
	s.SetScriptRunner(runner)
	injectedFrame(s, clock)
	if !runner.Done() {
		t.Error("runner with no steps should finish on the first frame")
	}
}

func TestRunnerDoubleTapLikes(t *testing.T) {
	s, clock, actions := newTestSource(t)

	data := []byte(`{"steps": [
		{"action": "tap", "x": 120, "y": 300},
		{"action": "wait", "frames": 4},
		{"action": "tap", "x": 122, "y": 301},
		{"action": "wait", "frames": 30}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		injectedFrame(s, clock)
	}
	if len(actions.calls) != 1 || actions.calls[0] != "like" {
		t.Errorf("calls = %v, want [like]", actions.calls)
	}
	if a := s.Engine().Coordinator().Latest(); a == nil || a.Label != LabelLike {
		t.Error("expected an open like window")
	}
}
