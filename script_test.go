package qtads

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "move", "x": 80, "y": 8},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 10, "fromY": 8, "toX": 10, "toY": 80, "frames": 4},
			{"action": "leave"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "snapshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "move" || runner.steps[1].X != 80 || runner.steps[1].Y != 8 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "click" || runner.steps[2].X != 100 || runner.steps[2].Y != 200 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "wait" || runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[4].Action != "drag" || runner.steps[4].FromX != 10 || runner.steps[4].ToY != 80 {
		t.Error("step 4 mismatch")
	}
	if runner.steps[5].Action != "leave" {
		t.Error("step 5 mismatch")
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

func TestRunnerStep_Click(t *testing.T) {
	rig := newInjectRig()

	data := []byte(`{"steps": [{"action": "click", "x": 80, "y": 8}]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	rig.view.SetScriptRunner(runner)

	// First step call: click queues press+release (2 events).
	runner.step(rig.view)
	if len(rig.view.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(rig.view.injectQueue))
	}
	// Runner should not be done yet — injections still pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	// Drain injections.
	rig.view.processInjected()
	rig.view.processInjected()

	// Now step again — should finalize.
	runner.step(rig.view)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	cmd, ok := rig.cmds.Last()
	if !ok || cmd.Text != "read manual" {
		t.Errorf("command = %+v (ok=%v), want read manual", cmd, ok)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	rig := newInjectRig()

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "move", "x": 80, "y": 8}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(rig.view)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Frame 2: waitCount 2→1.
	runner.step(rig.view)
	if runner.Done() {
		t.Error("should not be done during wait countdown")
	}

	// Frame 3: waitCount 1→0.
	runner.step(rig.view)
	if runner.Done() {
		t.Error("should not be done — move step not yet executed")
	}

	// Frame 4: execute move step.
	runner.step(rig.view)
	if len(rig.view.injectQueue) != 1 {
		t.Fatalf("expected 1 queued move, got %d", len(rig.view.injectQueue))
	}
	rig.view.processInjected()
	if rig.view.Tracker().HoverLink() != rig.manual {
		t.Error("move step should land on the manual link")
	}

	// Frame 5: queue drained, runner finishes.
	runner.step(rig.view)
	if !runner.Done() {
		t.Error("runner should be done after final step drained")
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	rig := newInjectRig()

	data := []byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 8, "toX": 10, "toY": 80, "frames": 4}]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(rig.view)
	if len(rig.view.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", len(rig.view.injectQueue))
	}
}

func TestRunnerDone(t *testing.T) {
	rig := newInjectRig()

	data := []byte(`{"steps": [{"action": "snapshot", "label": "only"}]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	if runner.Done() {
		t.Error("runner should not be done before any steps")
	}

	// A snapshot queues no pointer events, so a single step finishes it.
	runner.step(rig.view)
	if !runner.Done() {
		t.Error("runner should be done after single snapshot step")
	}
	if len(rig.view.snapshotQueue) != 1 || rig.view.snapshotQueue[0] != "only" {
		t.Errorf("expected snapshot 'only', got %v", rig.view.snapshotQueue)
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	rig := newInjectRig()

	data := []byte(`{"steps": [
		{"action": "click", "x": 80, "y": 8},
		{"action": "snapshot", "label": "after"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Step 1: click queues 2 events.
	runner.step(rig.view)
	if len(rig.view.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rig.view.injectQueue))
	}

	// Step again — should NOT advance because inject queue is not drained.
	runner.step(rig.view)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	// Drain inject queue manually.
	rig.view.injectQueue = rig.view.injectQueue[:0]

	// Now step — should execute the snapshot.
	runner.step(rig.view)
	if len(rig.view.snapshotQueue) != 1 || rig.view.snapshotQueue[0] != "after" {
		t.Errorf("expected snapshot 'after', got %v", rig.view.snapshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerDrivesView(t *testing.T) {
	rig := newInjectRig()

	data := []byte(`{
		"steps": [
			{"action": "move", "x": 80, "y": 8},
			{"action": "click", "x": 80, "y": 8},
			{"action": "wait", "frames": 2},
			{"action": "drag", "fromX": 10, "fromY": 8, "toX": 10, "toY": 80, "frames": 4},
			{"action": "leave"}
		]
	}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	rig.view.SetScriptRunner(runner)

	for i := 0; !runner.Done() && i < 1000; i++ {
		runner.step(rig.view)
		rig.view.processInjected()
	}

	if !runner.Done() {
		t.Fatal("script never finished")
	}
	if rig.cmds.Len() != 1 {
		t.Fatalf("commands dispatched = %d, want 1", rig.cmds.Len())
	}
	cmd, _ := rig.cmds.Last()
	if cmd.Text != "read manual" {
		t.Errorf("command = %q, want read manual", cmd.Text)
	}
	if got := rig.doc.Selection(); got != (SelectionRange{Start: 1, End: 25}) {
		t.Errorf("selection = %+v, want {1 25}", got)
	}
	if got := rig.view.Tracker().Phase(); got != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle", got)
	}
	if got := rig.manual.Mode(); got != LinkModeNone {
		t.Errorf("manual.Mode = %v, want LinkModeNone", got)
	}
}
