package qtads

// EventType identifies a kind of viewer interaction event.
type EventType uint8

const (
	EventActivate        EventType = iota // a link command was dispatched
	EventHoverChange                      // the hovered link changed
	EventSelectionChange                  // the selection range changed
)

// EventStore is the interface for optional ECS integration. When set on a
// View, interaction events are forwarded to it as they happen.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge. Link data
// travels by value so consumers can process events after a relayout without
// holding a stale reference.
type InteractionEvent struct {
	Type EventType
	// Href is the link command text (EventActivate, EventHoverChange).
	Href string
	// LinkID identifies the link within its layout generation; -1 when the
	// pointer left all links (EventHoverChange).
	LinkID int
	// Command flags (EventActivate).
	Append  bool
	NoEnter bool
	// Selection holds the new range (EventSelectionChange).
	Selection SelectionRange
}

// SetEventStore sets the optional ECS bridge. Nil detaches.
func (v *View) SetEventStore(store EventStore) {
	v.store = store
}

func (v *View) emitEvent(evt InteractionEvent) {
	if v.store == nil {
		return
	}
	v.store.EmitEvent(evt)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

type activateHandler struct {
	id uint32
	fn func(Command)
}

type hoverHandler struct {
	id uint32
	fn func(*Link)
}

type selectionHandler struct {
	id uint32
	fn func(SelectionRange)
}

// OnActivate registers fn for every dispatched link command. Handlers run
// after the configured CommandSink.
func (v *View) OnActivate(fn func(Command)) CallbackHandle {
	v.nextTapID++
	id := v.nextTapID
	v.activateHandlers = append(v.activateHandlers, activateHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		v.activateHandlers = removeActivateHandler(v.activateHandlers, id)
	}}
}

// OnHoverChange registers fn to be called at the end of an Update whenever
// the hovered link changed since the previous tick. fn receives nil when
// the pointer left all links.
func (v *View) OnHoverChange(fn func(*Link)) CallbackHandle {
	v.nextTapID++
	id := v.nextTapID
	v.hoverHandlers = append(v.hoverHandlers, hoverHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		v.hoverHandlers = removeHoverHandler(v.hoverHandlers, id)
	}}
}

// OnSelectionChange registers fn to be called at the end of an Update
// whenever the formatter's selection range changed since the previous tick.
func (v *View) OnSelectionChange(fn func(SelectionRange)) CallbackHandle {
	v.nextTapID++
	id := v.nextTapID
	v.selectionHandlers = append(v.selectionHandlers, selectionHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		v.selectionHandlers = removeSelectionHandler(v.selectionHandlers, id)
	}}
}

// notifyTaps fires hover and selection handlers for state that changed
// since the previous tick. Called once at the end of View.Update.
func (v *View) notifyTaps() {
	if hover := v.tracker.HoverLink(); hover != v.lastHover {
		v.lastHover = hover
		for _, h := range v.hoverHandlers {
			h.fn(hover)
		}
		evt := InteractionEvent{Type: EventHoverChange, LinkID: -1}
		if hover != nil {
			evt.LinkID = hover.ID
			evt.Href = hover.Href
		}
		v.emitEvent(evt)
	}
	if sel := v.formatter.Selection(); sel != v.lastSel {
		v.lastSel = sel
		for _, h := range v.selectionHandlers {
			h.fn(sel)
		}
		v.emitEvent(InteractionEvent{Type: EventSelectionChange, Selection: sel})
	}
}

func removeActivateHandler(s []activateHandler, id uint32) []activateHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = activateHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeSelectionHandler(s []selectionHandler, id uint32) []selectionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
