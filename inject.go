package qtads

// Button ops for synthetic events. A move keeps the button state it finds.
const (
	buttonKeep uint8 = iota
	buttonDown
	buttonUp
)

// syntheticPointerEvent is one injected pointer sample in window
// coordinates, consumed one per Update tick ahead of real input.
type syntheticPointerEvent struct {
	x, y     int
	buttonOp uint8
	leave    bool
}

// InjectMove queues a pointer move to the given window coordinates. The
// button state is left as it was, so the same call serves both hover moves
// and drags between InjectPress and InjectRelease.
func (v *View) InjectMove(x, y int) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y, buttonOp: buttonKeep})
}

// InjectPress queues a primary-button press at the given window
// coordinates.
func (v *View) InjectPress(x, y int) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y, buttonOp: buttonDown})
}

// InjectRelease queues a primary-button release at the given window
// coordinates.
func (v *View) InjectRelease(x, y int) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y, buttonOp: buttonUp})
}

// InjectLeave queues a pointer-leave event. Button state is unchanged.
func (v *View) InjectLeave() {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectClick queues a press followed by a release at the same window
// coordinates. Consumes two ticks.
func (v *View) InjectClick(x, y int) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` ticks; the minimum is 2 (press + release).
func (v *View) InjectDrag(fromX, fromY, toX, toY int, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + int(float64(toX-fromX)*t)
		y := fromY + int(float64(toY-fromY)*t)
		v.InjectMove(x, y)
	}
	v.InjectRelease(toX, toY)
}

// processInjected pops one synthetic event and feeds it through the same
// pointer path as real input. Returns true when an event was consumed and
// real mouse input should be skipped this tick.
func (v *View) processInjected() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	if evt.leave {
		if v.inside {
			v.inside = false
			v.tracker.PointerLeave()
		}
		return true
	}

	pressed := v.pressed
	switch evt.buttonOp {
	case buttonDown:
		pressed = true
	case buttonUp:
		pressed = false
	}
	v.feedPointer(evt.x, evt.y, pressed)
	return true
}
