package qtads

import "github.com/hajimehoshi/ebiten/v2"

// Formatter answers geometry-to-content queries for a laid-out document and
// draws regions of it on request. The controller consults it transiently per
// event and never initiates layout changes; Generation identifies the
// current layout pass so stale references can be rejected.
//
// All methods are called from the update/draw goroutine only.
type Formatter interface {
	// DisplayObjectAt returns the topmost display object at p, if any.
	DisplayObjectAt(p Point) (DisplayObject, bool)

	// LinkAt returns the link occupying p within obj, or nil when the exact
	// position misses every link region. Only consulted for objects of kind
	// DisplayLink.
	LinkAt(obj DisplayObject, p Point) *Link

	// TextOffsetAt returns the text offset nearest to p. Positions outside
	// the document clamp to the nearest valid offset.
	TextOffsetAt(p Point) int

	// SetSelectionRange marks the text between two offsets as the active
	// selection. The pair may arrive in either order and is clamped by the
	// formatter; callers never bounds-check offsets they only forward.
	SetSelectionRange(start, end int)

	// Selection returns the active selection range as last set.
	Selection() SelectionRange

	// MaxTextOffset returns the offset just past the last character.
	MaxTextOffset() int

	// TextBetween returns the document text between two offsets, accepted in
	// either order and clamped.
	TextBetween(start, end int) string

	// DocumentHeight returns the laid-out document height in pixels.
	DocumentHeight() int

	// Draw renders the document content of region into dst. The top-left of
	// region maps to dst.Bounds().Min, so dst may be a sub-image of the
	// screen.
	Draw(dst *ebiten.Image, region Rect)

	// Generation identifies the current layout pass. It increases on every
	// relayout; links issued before the current generation are stale.
	Generation() int
}
