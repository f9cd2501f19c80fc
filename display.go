package qtads

// DisplayObject is a positioned content unit reported by a Formatter query.
// Objects are returned by value, are valid only for the layout generation
// that produced them, and are never cached by the controller across events.
type DisplayObject struct {
	// ID is the object's arena index within the issuing layout.
	ID int
	// Kind tags which content shape the object has.
	Kind DisplayKind
	// AltText is the status-line annotation, empty when none. Alt text takes
	// precedence over a link destination in status feedback.
	AltText string
	// Bounds is the object's region in document coordinates.
	Bounds Rect
}

// Annotated reports whether the object carries non-empty alt text.
func (d DisplayObject) Annotated() bool {
	return d.AltText != ""
}

// displayKindFor derives the object tag from its content.
func displayKindFor(altText string, hasLink bool) DisplayKind {
	switch {
	case hasLink:
		return DisplayLink
	case altText != "":
		return DisplayAltText
	default:
		return DisplayPlain
	}
}
