package qtads

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// wheelScrollStep is the scroll distance in pixels per wheel tick.
const wheelScrollStep = 40.0

// ViewConfig configures a View. Only Bounds is required.
type ViewConfig struct {
	// Bounds is the window-space rectangle the document is displayed in.
	Bounds Rect
	// Settings supplies the link flags. Nil means DefaultSettings; pass a
	// *Settings to make runtime toggles visible.
	Settings SettingsView
	// Commands receives activated link commands. Nil discards them
	// (OnActivate taps still fire).
	Commands CommandSink
	// Status receives feedback text. Nil means a View-owned StatusBar,
	// available via View.StatusBar.
	Status StatusSink
	// Cursor applies pointer shape changes. Nil applies them to the window
	// via ebiten.SetCursorShape.
	Cursor CursorSink
}

// View binds a Tracker to an Ebitengine window region. It polls the mouse
// once per tick and synthesizes ordered controller events (leave, move,
// press, release), translates window coordinates to document coordinates
// through the scroll offset, applies cursor changes, collects repaint
// damage, and draws the document through the formatter.
//
// Like the rest of the package, a View is single-threaded: call Update and
// Draw from the ebiten game loop only.
type View struct {
	formatter Formatter
	tracker   *Tracker
	scroller  *Scroller
	statusBar *StatusBar // owned default; nil when a custom sink is configured
	bounds    Rect

	appCommands CommandSink

	// Pointer synthesis state from the previous sample.
	lastX, lastY int
	havePointer  bool
	inside       bool
	pressed      bool

	lastGen     int
	needRefresh bool

	damage      []Rect
	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner
	store       EventStore

	// SnapshotDir is where View.Snapshot writes its PNG captures.
	SnapshotDir   string
	snapshotQueue []string

	// Event taps.
	activateHandlers  []activateHandler
	hoverHandlers     []hoverHandler
	selectionHandlers []selectionHandler
	nextTapID         uint32
	lastHover         *Link
	lastSel           SelectionRange
}

// NewView creates a view over f displayed at cfg.Bounds.
func NewView(f Formatter, cfg ViewConfig) *View {
	if f == nil {
		panic("qtads: NewView: nil formatter")
	}
	if cfg.Bounds.Empty() {
		panic("qtads: NewView: empty Bounds")
	}
	v := &View{
		formatter:   f,
		bounds:      cfg.Bounds,
		scroller:    NewScroller(f.DocumentHeight(), cfg.Bounds.Height),
		appCommands: cfg.Commands,
		lastGen:     f.Generation(),
		lastSel:     f.Selection(),
		SnapshotDir: "snapshots",
	}
	status := cfg.Status
	if status == nil {
		v.statusBar = NewStatusBar()
		status = v.statusBar
	}
	cursor := cfg.Cursor
	if cursor == nil {
		cursor = ebitenCursor{}
	}
	settings := cfg.Settings
	if settings == nil {
		settings = DefaultSettings()
	}
	v.tracker = NewTracker(TrackerConfig{
		Formatter: f,
		Settings:  settings,
		Status:    status,
		Commands:  v,
		Cursor:    cursor,
		Repaint:   v,
	})
	return v
}

// Tracker returns the view's interaction controller.
func (v *View) Tracker() *Tracker {
	return v.tracker
}

// Scroller returns the view's scroll state.
func (v *View) Scroller() *Scroller {
	return v.scroller
}

// StatusBar returns the view-owned status bar, or nil when a custom
// StatusSink was configured.
func (v *View) StatusBar() *StatusBar {
	return v.statusBar
}

// Bounds returns the window-space region the document is displayed in.
func (v *View) Bounds() Rect {
	return v.bounds
}

// SetBounds moves or resizes the view region, re-clamps the scroll offset,
// and schedules a full repaint and a tracking re-query.
func (v *View) SetBounds(r Rect) {
	if r.Empty() {
		panic("qtads: View.SetBounds: empty bounds")
	}
	v.bounds = r
	v.scroller.SetViewportHeight(r.Height)
	v.RequestRepaint(v.visibleDocRect())
	v.needRefresh = true
}

// SetDebugMode toggles controller tracing and strict reference checks.
func (v *View) SetDebugMode(debug bool) {
	v.tracker.SetDebugMode(debug)
}

// Update advances the view by one tick: layout-generation sync, scroll
// animation, wheel input, script and injected input, then real mouse
// input, then the post-scroll/relayout re-query. Call once per
// ebiten.Game Update.
func (v *View) Update() {
	v.syncLayout()

	dt := float32(1.0 / float64(ebiten.TPS()))
	if v.scroller.update(dt) {
		v.noteScrolled()
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		v.scroller.ScrollBy(-wy * wheelScrollStep)
		v.noteScrolled()
	}

	if v.runner != nil {
		v.runner.step(v)
	}
	if !v.processInjected() {
		v.processMouse()
	}

	v.flushRefresh()
	v.notifyTaps()
}

// Draw renders the full visible document region into screen and drops any
// accumulated damage. Hosts that clear the screen every frame (the ebiten
// default) use this.
func (v *View) Draw(screen *ebiten.Image) {
	v.damage = v.damage[:0]
	dst := subImage(screen, v.bounds)
	v.formatter.Draw(dst, v.visibleDocRect())
	v.flushSnapshots(dst)
}

// DrawDamaged renders only the regions invalidated since the last draw,
// for hosts that keep the previous frame (ebiten.SetScreenClearedEveryFrame
// disabled). No damage means nothing is drawn.
func (v *View) DrawDamaged(screen *ebiten.Image) {
	if len(v.damage) > 0 {
		visible := v.visibleDocRect()
		scrollY := int(v.scroller.Y())
		for _, r := range v.damage {
			r = r.Intersect(visible)
			if r.Empty() {
				continue
			}
			win := Rect{
				X:      v.bounds.X + r.X,
				Y:      v.bounds.Y + r.Y - scrollY,
				Width:  r.Width,
				Height: r.Height,
			}
			v.formatter.Draw(subImage(screen, win), r)
		}
		v.damage = v.damage[:0]
	}
	v.flushSnapshots(subImage(screen, v.bounds))
}

// RequestRepaint implements RepaintRequester. Damage rectangles are in
// document coordinates and are drained by the next Draw or DrawDamaged.
func (v *View) RequestRepaint(r Rect) {
	if r.Empty() {
		return
	}
	v.damage = append(v.damage, r)
}

// SubmitCommand implements CommandSink. The view sits between the
// controller and the configured sink so OnActivate taps observe every
// command.
func (v *View) SubmitCommand(cmd Command) {
	if v.appCommands != nil {
		v.appCommands.SubmitCommand(cmd)
	}
	for _, h := range v.activateHandlers {
		h.fn(cmd)
	}
	v.emitEvent(InteractionEvent{
		Type:    EventActivate,
		Href:    cmd.Text,
		Append:  cmd.Append,
		NoEnter: cmd.NoEnter,
	})
}

// syncLayout reconciles the view with the formatter each tick. On a new
// layout generation every held link reference is dropped before any query
// can touch it, the full view is repainted, and tracking is re-queried.
func (v *View) syncLayout() {
	v.scroller.SetDocumentHeight(v.formatter.DocumentHeight())
	gen := v.formatter.Generation()
	if gen == v.lastGen {
		return
	}
	v.lastGen = gen
	v.tracker.InvalidateTracking()
	v.RequestRepaint(v.visibleDocRect())
	v.needRefresh = true
}

func (v *View) noteScrolled() {
	v.RequestRepaint(v.visibleDocRect())
	v.needRefresh = true
}

// flushRefresh re-queries under the pointer after a scroll or relayout so
// feedback matches what the pointer is now over, even when it did not
// move.
func (v *View) flushRefresh() {
	if !v.needRefresh {
		return
	}
	v.needRefresh = false
	if v.inside {
		v.tracker.Refresh(v.docPoint(v.lastX, v.lastY))
	}
}

func (v *View) processMouse() {
	mx, my := ebiten.CursorPosition()
	v.feedPointer(mx, my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// feedPointer synthesizes ordered controller events from one polled pointer
// sample in window coordinates. Injected input and tests drive the same
// path as real input.
func (v *View) feedPointer(wx, wy int, pressed bool) {
	inside := v.bounds.Contains(Point{X: wx, Y: wy})
	moved := !v.havePointer || wx != v.lastX || wy != v.lastY
	v.lastX, v.lastY = wx, wy
	v.havePointer = true

	// Enter/leave first, then motion, then button edges, so a press in the
	// same sample as a move arms what the move hovered.
	if inside != v.inside {
		v.inside = inside
		if inside {
			v.tracker.PointerMove(v.docPoint(wx, wy))
		} else {
			v.tracker.PointerLeave()
			// A selection drag keeps receiving motion past the edge;
			// offsets clamp at the formatter.
			if v.tracker.Phase() == PhaseSelecting {
				v.tracker.PointerMove(v.docPoint(wx, wy))
			}
		}
	} else if moved {
		if inside || v.tracker.Phase() == PhaseSelecting {
			v.tracker.PointerMove(v.docPoint(wx, wy))
		}
	}

	if pressed != v.pressed {
		v.pressed = pressed
		if pressed {
			// Presses that begin outside the view are not ours.
			if inside {
				v.tracker.ButtonPress(v.docPoint(wx, wy))
			}
		} else {
			// Releases always reach the controller: they end selection
			// drags that wandered outside and are a no-op otherwise.
			v.tracker.ButtonRelease()
		}
	}
}

// docPoint maps window coordinates to document coordinates through the view
// origin and the scroll offset.
func (v *View) docPoint(wx, wy int) Point {
	return Point{
		X: wx - v.bounds.X,
		Y: wy - v.bounds.Y + int(v.scroller.Y()),
	}
}

// visibleDocRect returns the document-space region currently on screen.
func (v *View) visibleDocRect() Rect {
	return Rect{
		X:      0,
		Y:      int(v.scroller.Y()),
		Width:  v.bounds.Width,
		Height: v.bounds.Height,
	}
}

func subImage(img *ebiten.Image, r Rect) *ebiten.Image {
	return img.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
}

// ebitenCursor applies cursor requests to the window.
type ebitenCursor struct{}

func (ebitenCursor) RequestCursor(c Cursor) {
	switch c {
	case CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
