package qtads

// StatusSink receives one-line feedback from the controller: alt-text
// annotations and link destinations.
type StatusSink interface {
	ShowMessage(text string)
	ClearMessage()
}

type statusHandler struct {
	id uint32
	fn func(string)
}

// StatusBar is the default StatusSink. It stores the current line, swallows
// redundant writes, and notifies change handlers with complete values only.
//
// Every mutation is bracketed: notifications are suspended, the text is
// replaced, then notifications resume and flush once. A handler never
// observes a torn or intermediate value, even when mutations nest via
// Batch, and the bracket is released by defer even if a step panics.
type StatusBar struct {
	text     string
	suspend  int  // >0 while updates are batched
	dirty    bool // text changed while suspended
	handlers []statusHandler
	nextID   uint32
}

// NewStatusBar returns an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// Text returns the currently displayed line.
func (b *StatusBar) Text() string {
	return b.text
}

// ShowMessage displays text. Writing the current text again notifies no one.
func (b *StatusBar) ShowMessage(text string) {
	b.set(text)
}

// ClearMessage removes any displayed line.
func (b *StatusBar) ClearMessage() {
	b.set("")
}

// Batch runs fn with notifications suspended and flushes the final value
// once afterwards. Batches nest; the outermost end flushes.
func (b *StatusBar) Batch(fn func()) {
	b.begin()
	defer b.end()
	fn()
}

// OnChange registers fn to be called with the complete status line after
// each effective update. Returns a handle that unregisters it.
func (b *StatusBar) OnChange(fn func(string)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, statusHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		b.handlers = removeStatusHandler(b.handlers, id)
	}}
}

func (b *StatusBar) set(text string) {
	b.begin()
	defer b.end()
	if text == b.text {
		return
	}
	b.text = text
	b.dirty = true
}

func (b *StatusBar) begin() {
	b.suspend++
}

func (b *StatusBar) end() {
	b.suspend--
	if b.suspend > 0 || !b.dirty {
		return
	}
	b.dirty = false
	text := b.text
	for _, h := range b.handlers {
		h.fn(text)
	}
}

func removeStatusHandler(s []statusHandler, id uint32) []statusHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = statusHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
