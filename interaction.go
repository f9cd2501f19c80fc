package qtads

// CursorSink receives pointer shape requests from the controller. The
// controller dedupes, so a sink only sees actual changes.
type CursorSink interface {
	RequestCursor(c Cursor)
}

// CursorFunc adapts a function to the CursorSink interface.
type CursorFunc func(Cursor)

// RequestCursor calls f(c).
func (f CursorFunc) RequestCursor(c Cursor) {
	f(c)
}

// TrackerConfig wires a Tracker to its collaborators. Formatter is
// required; every other field may be nil, in which case that feedback
// surface is discarded (and settings default to DefaultSettings).
type TrackerConfig struct {
	// Formatter answers the geometry queries. Required.
	Formatter Formatter
	// Settings supplies the link flags consulted on every decision.
	Settings SettingsView
	// Status receives alt-text and destination feedback.
	Status StatusSink
	// Commands receives activated link commands.
	Commands CommandSink
	// Cursor receives pointer shape changes.
	Cursor CursorSink
	// Repaint receives damage for link visual-mode changes.
	Repaint RepaintRequester
}

// Tracker is the pointer-interaction controller for one viewed surface. It
// owns the hover/armed/selection state, mediates every link visual-mode
// write, maintains the active selection range, and turns committed clicks
// into commands.
//
// A Tracker is single-threaded: feed it events from the update loop only,
// strictly in arrival order. Every handler runs to completion before the
// next event. Positions are document coordinates.
type Tracker struct {
	formatter Formatter
	settings  SettingsView
	status    StatusSink
	commands  CommandSink
	cursor    CursorSink
	repaint   RepaintRequester

	hover        *Link
	armed        *Link
	selecting    bool
	selectOrigin Point
	annotated    bool   // alt text shown for a region with no hovered link
	cursorShape  Cursor // last requested shape

	debug bool
}

// NewTracker creates a controller in the idle state.
func NewTracker(cfg TrackerConfig) *Tracker {
	if cfg.Formatter == nil {
		panic("qtads: NewTracker: nil Formatter")
	}
	t := &Tracker{
		formatter: cfg.Formatter,
		settings:  cfg.Settings,
		status:    cfg.Status,
		commands:  cfg.Commands,
		cursor:    cfg.Cursor,
		repaint:   cfg.Repaint,
	}
	if t.settings == nil {
		t.settings = DefaultSettings()
	}
	if t.status == nil {
		t.status = nopStatus{}
	}
	if t.commands == nil {
		t.commands = nopCommands{}
	}
	if t.cursor == nil {
		t.cursor = nopCursor{}
	}
	return t
}

// Phase reports the controller's current interaction mode.
func (t *Tracker) Phase() Phase {
	switch {
	case t.selecting:
		return PhaseSelecting
	case t.armed != nil:
		return PhaseArmed
	case t.hover != nil || t.annotated:
		return PhaseHovering
	default:
		return PhaseIdle
	}
}

// HoverLink returns the link currently under the pointer, or nil.
func (t *Tracker) HoverLink() *Link {
	return t.hover
}

// ArmedLink returns the link pressed and pending commit, or nil.
func (t *Tracker) ArmedLink() *Link {
	return t.armed
}

// PointerMove handles pointer motion at p.
//
// While a selection drag is active both ends of the range are recomputed
// from pixel positions — the origin's offset as well as the current one —
// so the range stays correct even when content reflows under a held drag.
// No link tracking runs while selecting.
func (t *Tracker) PointerMove(p Point) {
	if t.selecting {
		start := t.formatter.TextOffsetAt(t.selectOrigin)
		end := t.formatter.TextOffsetAt(p)
		t.formatter.SetSelectionRange(start, end)
		t.debugf("select %d..%d", start, end)
		return
	}
	t.refresh(p)
}

// PointerLeave handles the pointer leaving the viewed surface: link
// tracking is invalidated. An active selection drag is unaffected — it
// continues past the edge until the button is released.
func (t *Tracker) PointerLeave() {
	t.InvalidateTracking()
}

// ButtonPress handles a primary-button press at p.
//
// With no link hovered it starts a selection drag at p and pushes the
// pre-drag baseline: an empty range at the end of the document. Over a
// hovered clickable link with link following enabled it arms the link.
// Hovering a non-clickable region arms nothing and starts nothing.
func (t *Tracker) ButtonPress(p Point) {
	t.debugCheckHeldLinks("press")
	if t.hover == nil {
		if t.selecting {
			return
		}
		t.selecting = true
		t.selectOrigin = p
		last := t.formatter.MaxTextOffset()
		t.formatter.SetSelectionRange(last, last)
		t.debugf("select start at %d,%d", p.X, p.Y)
		return
	}
	if t.hover.Clickable && t.settings.LinksEnabled() {
		t.hover.SetMode(t.repaint, LinkModeClicked)
		t.armed = t.hover
		t.debugf("armed link %d %q", t.armed.ID, t.armed.Href)
	}
}

// ButtonRelease handles a primary-button release.
//
// Releasing a selection drag just ends it — the range was pushed
// continuously during the drag and no command is issued. Releasing over
// the armed link dispatches its command and reverts the visual mode to
// hover when highlighting is enabled, otherwise to none. Releasing over a
// different link dispatches nothing; that link gets the hover mode when
// highlighting is enabled. The armed reference is cleared in all cases.
func (t *Tracker) ButtonRelease() {
	if t.selecting {
		t.selecting = false
		t.debugf("select end")
		return
	}
	if t.armed == nil {
		return
	}
	t.debugCheckHeldLinks("release")
	if t.armed == t.hover {
		t.dispatch(t.armed)
		if t.settings.HighlightEnabled() {
			t.armed.SetMode(t.repaint, LinkModeHover)
		} else {
			t.armed.SetMode(t.repaint, LinkModeNone)
		}
	} else if t.hover != nil && t.settings.HighlightEnabled() {
		t.hover.SetMode(t.repaint, LinkModeHover)
	}
	t.armed = nil
}

// Refresh re-runs link tracking at p without a pointer event. Hosts call it
// after a scroll or relayout with the last known pointer position so
// feedback matches the content now under the pointer. No-op while a
// selection drag is active.
func (t *Tracker) Refresh(p Point) {
	if t.selecting {
		return
	}
	t.refresh(p)
}

// InvalidateTracking drops every held link reference and resets feedback:
// the armed and hovered links revert to LinkModeNone, the cursor returns to
// CursorDefault, and the status line is cleared. Hosts must call it before
// any relayout that could strand the references. Idempotent; an active
// selection is unaffected.
func (t *Tracker) InvalidateTracking() {
	if t.armed != nil {
		t.armed.SetMode(t.repaint, LinkModeNone)
		t.armed = nil
	}
	if t.hover != nil {
		t.hover.SetMode(t.repaint, LinkModeNone)
		t.hover = nil
	}
	t.annotated = false
	t.requestCursor(CursorDefault)
	t.status.ClearMessage()
}

// refresh is the link-tracking pass shared by moves and re-queries.
func (t *Tracker) refresh(p Point) {
	t.debugCheckHeldLinks("refresh")

	obj, ok := t.formatter.DisplayObjectAt(p)
	if !ok {
		t.InvalidateTracking()
		return
	}

	// With link following disabled no link is ever resolved: nothing arms,
	// the cursor stays default, and destinations stay out of the status
	// line. Alt-text annotations below are still shown.
	var link *Link
	if obj.Kind == DisplayLink && t.settings.LinksEnabled() {
		link = t.formatter.LinkAt(obj, p)
	}

	if link != t.hover {
		// The previous hover loses its highlight even when it is the armed
		// link; re-entering an armed link does not restore the clicked
		// state.
		if t.hover != nil {
			t.hover.SetMode(t.repaint, LinkModeNone)
		}
		t.hover = link
		if link != nil {
			t.debugf("hover link %d %q", link.ID, link.Href)
		}
		if link != nil && link.Clickable && t.settings.HighlightEnabled() && t.armed == nil {
			link.SetMode(t.repaint, LinkModeHover)
		}
	}

	// The cursor follows what is under the pointer now, not transition
	// history: a pointing hand never lingers over a linkless region.
	if link != nil && link.Clickable {
		t.requestCursor(CursorPointer)
	} else {
		t.requestCursor(CursorDefault)
	}

	t.annotated = link == nil && obj.AltText != ""

	// Status precedence: alt text first, then a clickable destination,
	// otherwise clear.
	if obj.AltText != "" {
		t.status.ShowMessage(obj.AltText)
		return
	}
	if link != nil && link.Clickable {
		t.status.ShowMessage(link.Href)
		return
	}
	t.status.ClearMessage()
	if t.hover != nil {
		t.hover.SetMode(t.repaint, LinkModeNone)
		t.hover = nil
	}
}

func (t *Tracker) dispatch(l *Link) {
	t.debugf("dispatch %q append=%v noenter=%v", l.Href, l.Append, l.NoEnter)
	t.commands.SubmitCommand(Command{
		Text:    l.Href,
		Append:  l.Append,
		NoEnter: l.NoEnter,
	})
}

func (t *Tracker) requestCursor(c Cursor) {
	if c == t.cursorShape {
		return
	}
	t.cursorShape = c
	t.cursor.RequestCursor(c)
}

// --- No-op sinks for unwired feedback surfaces ---

type nopStatus struct{}

func (nopStatus) ShowMessage(string) {}
func (nopStatus) ClearMessage()      {}

type nopCommands struct{}

func (nopCommands) SubmitCommand(Command) {}

type nopCursor struct{}

func (nopCursor) RequestCursor(Cursor) {}
