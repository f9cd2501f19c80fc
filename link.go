package qtads

// RepaintRequester receives damage rectangles whenever displayed state
// changes. A link visual-mode write is always followed by a repaint request
// for the link's bounds so visible state never diverges from controller
// state.
type RepaintRequester interface {
	RequestRepaint(r Rect)
}

// Link is an interactive region of the document. Links are owned by the
// layout that issued them; the controller holds at most two non-owning
// references at a time (the hovered link and the click-armed link) and drops
// both whenever tracking is invalidated.
type Link struct {
	// ID identifies the link within its layout generation.
	ID int
	// Href is the command text submitted when the link is activated.
	Href string
	// Append submits the command appended to any pending input instead of
	// replacing it.
	Append bool
	// NoEnter suppresses the automatic enter after the command text is
	// placed.
	NoEnter bool
	// Clickable distinguishes followable links from inert link regions.
	// Non-clickable links never arm, never change the cursor, and never
	// reach the status line.
	Clickable bool
	// Bounds is the union of the link's display regions in document
	// coordinates, maintained by the layout. Repaint requests cover it.
	Bounds Rect

	mode LinkMode
	gen  int // layout generation that issued the link; 0 when untracked
}

// Mode returns the link's current visual state.
func (l *Link) Mode() LinkMode {
	return l.mode
}

// SetMode sets the link's visual state and requests a repaint of the link's
// bounds from the host displaying it. Writing the current mode again is a
// no-op, so repeated refreshes cause no repaint churn.
func (l *Link) SetMode(host RepaintRequester, mode LinkMode) {
	if l.mode == mode {
		return
	}
	l.mode = mode
	if host != nil {
		host.RequestRepaint(l.Bounds)
	}
}
