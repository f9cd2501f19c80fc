package qtads

// Point is a pixel position in document coordinates. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside the rectangle. Rectangles are
// half-open: points on the right and bottom edges are outside, so adjacent
// items never claim the same pixel.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether r and other overlap in at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersect returns the overlapping region of r and other. The zero Rect is
// returned when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// LinkMode is a link's visual state. At most one link is in LinkModeClicked
// and at most one in LinkModeHover at any time; the Tracker is the only
// writer.
type LinkMode uint8

const (
	LinkModeNone    LinkMode = iota // default appearance
	LinkModeHover                   // pointer resting over the link
	LinkModeClicked                 // primary button held over the link, pending commit
)

// Cursor identifies a pointer shape requested by the controller.
type Cursor uint8

const (
	CursorDefault Cursor = iota // platform default arrow
	CursorPointer               // pointing hand over a clickable link
)

// Phase identifies the controller's current interaction mode.
type Phase uint8

const (
	PhaseIdle      Phase = iota // no hover, no selection, no armed link
	PhaseHovering               // pointer rests over a link or annotated region
	PhaseArmed                  // primary button held over a clickable link
	PhaseSelecting              // primary button dragging a text selection
)

// DisplayKind tags the shape of a display object. The controller branches
// only on these three cases.
type DisplayKind uint8

const (
	DisplayPlain   DisplayKind = iota // no link, no alt text
	DisplayAltText                    // carries alt text but exposes no link
	DisplayLink                       // exposes at least one link region
)
