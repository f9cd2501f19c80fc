package qtads

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Label  string `json:"label,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted pointer-interaction sequence over a View
// across ticks: demos and automation drive the exact controller path real
// input takes. Attach with View.SetScriptRunner.
//
// Supported actions: "move" (x, y), "click" (x, y), "drag" (fromX, fromY,
// toX, toY, frames), "leave", "wait" (frames), and "snapshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("qtads: parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("qtads: parse interaction script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the view. The runner advances one
// step per Update tick, ahead of input processing. Nil detaches.
func (v *View) SetScriptRunner(runner *ScriptRunner) {
	v.runner = runner
}

// Done reports whether every step has been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from View.Update.
func (r *ScriptRunner) step(v *View) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(v.injectQueue) > 0 {
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
	case "move":
		v.InjectMove(st.X, st.Y)
	case "click":
		v.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "leave":
		v.InjectLeave()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "snapshot":
		v.Snapshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
