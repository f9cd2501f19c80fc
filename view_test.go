package qtads

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// viewRig displays the fixture document at a window offset so coordinate
// mapping bugs cannot hide: window (10,20) is document (0,0).
type viewRig struct {
	*testDoc
	view *View
	cmds *CommandRecorder
	cur  *cursorRecorder
}

func newViewRig() *viewRig {
	td := buildTestDoc()
	cmds := &CommandRecorder{}
	cur := &cursorRecorder{}
	v := NewView(td.doc, ViewConfig{
		Bounds:   Rect{X: 10, Y: 20, Width: 200, Height: 60},
		Commands: cmds,
		Cursor:   cur,
	})
	return &viewRig{testDoc: td, view: v, cmds: cmds, cur: cur}
}

func TestNewViewValidation(t *testing.T) {
	t.Run("nil formatter", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewView(nil, ViewConfig{Bounds: Rect{Width: 10, Height: 10}})
	})
	t.Run("empty bounds", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewView(NewDisplayList(), ViewConfig{})
	})
}

func TestViewOwnedStatusBar(t *testing.T) {
	rig := newViewRig()
	if rig.view.StatusBar() == nil {
		t.Error("a view without a custom sink owns a status bar")
	}

	custom := NewView(NewDisplayList(), ViewConfig{
		Bounds: Rect{Width: 10, Height: 10},
		Status: NewStatusBar(),
	})
	if custom.StatusBar() != nil {
		t.Error("a custom sink leaves no view-owned status bar")
	}
}

func TestViewPointerMapping(t *testing.T) {
	rig := newViewRig()

	// Window (90,28) is document (80,8): the manual link.
	rig.view.feedPointer(90, 28, false)

	if rig.view.Tracker().HoverLink() != rig.manual {
		t.Error("window position did not map onto the manual link")
	}
	if got := rig.view.StatusBar().Text(); got != "read manual" {
		t.Errorf("status = %q, want read manual", got)
	}
}

func TestViewPointerMappingWithScroll(t *testing.T) {
	rig := newViewRig()
	rig.view.Scroller().ScrollBy(24)

	// Window (40,36) is document (30,40) once scrolled: the image.
	rig.view.feedPointer(40, 36, false)

	if got := rig.view.StatusBar().Text(); got != "A dusty portrait" {
		t.Errorf("status = %q, want the image alt text", got)
	}
}

func TestViewEnterAndLeave(t *testing.T) {
	rig := newViewRig()
	rig.view.feedPointer(90, 28, false)
	if rig.view.Tracker().Phase() != PhaseHovering {
		t.Fatal("expected hover inside the view")
	}

	rig.view.feedPointer(5, 5, false)
	if got := rig.view.Tracker().Phase(); got != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle after leaving", got)
	}
	if got := rig.manual.Mode(); got != LinkModeNone {
		t.Errorf("manual.Mode = %v, want LinkModeNone", got)
	}

	// Re-entry hovers again with a single sample.
	rig.view.feedPointer(90, 28, false)
	if rig.view.Tracker().HoverLink() != rig.manual {
		t.Error("re-entry should re-hover immediately")
	}
}

func TestViewClick(t *testing.T) {
	rig := newViewRig()
	rig.view.feedPointer(90, 28, false)
	rig.view.feedPointer(90, 28, true)

	if got := rig.view.Tracker().Phase(); got != PhaseArmed {
		t.Fatalf("Phase = %v, want PhaseArmed", got)
	}

	rig.view.feedPointer(90, 28, false)

	cmd, ok := rig.cmds.Last()
	if !ok || cmd.Text != "read manual" {
		t.Errorf("command = %+v (ok=%v), want read manual", cmd, ok)
	}
}

func TestViewPressStartingOutsideIsIgnored(t *testing.T) {
	rig := newViewRig()
	rig.view.feedPointer(5, 5, true)
	rig.view.feedPointer(90, 28, true) // dragged in with the button held

	if got := rig.view.Tracker().Phase(); got != PhaseHovering {
		t.Errorf("Phase = %v, want PhaseHovering: the press was not ours", got)
	}

	rig.view.feedPointer(90, 28, false)
	if rig.cmds.Len() != 0 {
		t.Error("a press that began outside must not dispatch")
	}
}

func TestViewSelectionDragBeyondBounds(t *testing.T) {
	rig := newViewRig()
	rig.view.feedPointer(20, 28, true) // move+press over plain text

	if got := rig.view.Tracker().Phase(); got != PhaseSelecting {
		t.Fatalf("Phase = %v, want PhaseSelecting", got)
	}

	// Dragging below the view keeps extending: window (30,100) is document
	// (20,80), inside "The end.".
	rig.view.feedPointer(30, 100, true)
	if got := rig.doc.Selection(); got != (SelectionRange{Start: 1, End: 26}) {
		t.Errorf("selection = %+v, want {1 26}", got)
	}

	// The release outside still ends the drag.
	rig.view.feedPointer(30, 100, false)
	if got := rig.view.Tracker().Phase(); got != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle", got)
	}
	if got := rig.doc.Selection(); got != (SelectionRange{Start: 1, End: 26}) {
		t.Errorf("selection = %+v, want preserved {1 26}", got)
	}
}

func TestViewRelayoutInvalidatesTracking(t *testing.T) {
	rig := newViewRig()
	rig.view.feedPointer(90, 28, false)
	oldManual := rig.manual

	rig.relayout()
	rig.view.syncLayout()

	if got := rig.view.Tracker().HoverLink(); got != nil {
		t.Error("a new layout generation must drop the hover reference")
	}
	if got := oldManual.Mode(); got != LinkModeNone {
		t.Errorf("old link mode = %v, want LinkModeNone", got)
	}
	if len(rig.view.damage) == 0 {
		t.Error("a relayout schedules a full repaint")
	}

	// The deferred re-query hovers whatever the new layout put under the
	// stationary pointer.
	rig.view.flushRefresh()
	if got := rig.view.Tracker().HoverLink(); got != rig.manual {
		t.Errorf("HoverLink = %v, want the relaid-out manual link", got)
	}
	if oldManual == rig.manual {
		t.Fatal("fixture error: relayout should issue new links")
	}
}

func TestViewScrollRefreshesTracking(t *testing.T) {
	rig := newViewRig()
	rig.view.feedPointer(110, 28, false) // document (100,8): manual link
	if rig.view.Tracker().HoverLink() != rig.manual {
		t.Fatal("expected the manual link first")
	}

	// Content slides up 24px under the stationary pointer; the same window
	// position is now document (100,32): the annotated plaque.
	rig.view.Scroller().ScrollBy(24)
	rig.view.noteScrolled()
	rig.view.flushRefresh()

	if rig.view.Tracker().HoverLink() != rig.inert {
		t.Error("scroll refresh should hover the content now under the pointer")
	}
	if got := rig.view.StatusBar().Text(); got != "A brass plaque" {
		t.Errorf("status = %q, want the plaque alt text", got)
	}
	if got := rig.manual.Mode(); got != LinkModeNone {
		t.Errorf("manual.Mode = %v, want LinkModeNone", got)
	}
}

func TestViewUpdateAdvancesScrollAnimation(t *testing.T) {
	rig := newViewRig()
	rig.view.Scroller().ScrollTo(20, 1.0, ease.Linear)

	rig.view.Update()

	if got := rig.view.Scroller().Y(); got <= 0 || got >= 20 {
		t.Errorf("Y = %v, want mid-animation after one tick", got)
	}
}

func TestViewDamageLifecycle(t *testing.T) {
	rig := newViewRig()

	rig.view.RequestRepaint(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	rig.view.RequestRepaint(Rect{}) // ignored
	if got := len(rig.view.damage); got != 1 {
		t.Fatalf("damage = %d rects, want 1", got)
	}

	screen := ebiten.NewImage(320, 120)
	rig.view.Draw(screen)
	if len(rig.view.damage) != 0 {
		t.Error("Draw should drop accumulated damage")
	}

	// Incremental path: damage is drawn clipped to the visible region and
	// then cleared.
	rig.view.Scroller().ScrollBy(24)
	rig.view.RequestRepaint(Rect{X: 0, Y: 24, Width: 64, Height: 40})
	rig.view.RequestRepaint(Rect{X: 0, Y: 500, Width: 10, Height: 10}) // off-screen
	rig.view.DrawDamaged(screen)
	if len(rig.view.damage) != 0 {
		t.Error("DrawDamaged should drop accumulated damage")
	}
}

func TestViewSubmitCommandReachesTaps(t *testing.T) {
	rig := newViewRig()
	var tapped []Command
	handle := rig.view.OnActivate(func(cmd Command) { tapped = append(tapped, cmd) })

	rig.view.SubmitCommand(Command{Text: "look"})

	if got, _ := rig.cmds.Last(); got.Text != "look" {
		t.Errorf("sink got %q, want look", got.Text)
	}
	if len(tapped) != 1 || tapped[0].Text != "look" {
		t.Errorf("tap got %v, want [look]", tapped)
	}

	handle.Remove()
	rig.view.SubmitCommand(Command{Text: "again"})
	if len(tapped) != 1 {
		t.Error("removed tap must not fire")
	}
}

func TestViewHoverTap(t *testing.T) {
	rig := newViewRig()
	var hovers []*Link
	rig.view.OnHoverChange(func(l *Link) { hovers = append(hovers, l) })

	rig.view.feedPointer(90, 28, false)
	rig.view.notifyTaps()
	rig.view.notifyTaps() // unchanged: no extra event
	rig.view.feedPointer(20, 28, false)
	rig.view.notifyTaps()

	if len(hovers) != 2 || hovers[0] != rig.manual || hovers[1] != nil {
		t.Errorf("hover taps = %v, want [manual nil]", hovers)
	}
}

func TestViewSelectionTap(t *testing.T) {
	rig := newViewRig()
	var sels []SelectionRange
	handle := rig.view.OnSelectionChange(func(r SelectionRange) { sels = append(sels, r) })

	rig.view.feedPointer(20, 28, true)
	rig.view.notifyTaps() // baseline range
	rig.view.feedPointer(30, 100, true)
	rig.view.notifyTaps() // extended range

	if len(sels) != 2 {
		t.Fatalf("selection taps = %v, want 2 events", sels)
	}
	if sels[1] != (SelectionRange{Start: 1, End: 26}) {
		t.Errorf("final tap = %+v, want {1 26}", sels[1])
	}

	handle.Remove()
	rig.view.feedPointer(90, 100, true)
	rig.view.notifyTaps()
	if len(sels) != 2 {
		t.Error("removed tap must not fire")
	}
}

func TestViewSetBounds(t *testing.T) {
	rig := newViewRig()
	rig.view.Scroller().ScrollBy(24)

	rig.view.SetBounds(Rect{X: 0, Y: 0, Width: 200, Height: 200})

	if got := rig.view.Bounds(); got != (Rect{X: 0, Y: 0, Width: 200, Height: 200}) {
		t.Errorf("Bounds = %+v", got)
	}
	// The taller viewport swallows the whole document: offset re-clamps.
	if got := rig.view.Scroller().Y(); got != 0 {
		t.Errorf("Y = %v, want 0", got)
	}
	if len(rig.view.damage) == 0 {
		t.Error("SetBounds schedules a repaint")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty bounds")
		}
	}()
	rig.view.SetBounds(Rect{})
}
