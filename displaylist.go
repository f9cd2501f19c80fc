package qtads

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Placeholder fills used by DisplayList.Draw. Content is drawn as solid
// blocks so demos and tests run without fonts or assets.
var (
	textFill        = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	imageFill       = color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	linkFill        = color.RGBA{R: 0x4a, G: 0x6e, B: 0xc8, A: 0xff}
	linkHoverFill   = color.RGBA{R: 0x6e, G: 0x96, B: 0xf0, A: 0xff}
	linkClickedFill = color.RGBA{R: 0xd8, G: 0x8a, B: 0x3c, A: 0xff}
	selectionFill   = color.RGBA{R: 0x3c, G: 0x64, B: 0x50, A: 0xff}
)

type displayItem struct {
	bounds   Rect
	altText  string
	link     int // index into links; -1 when none
	startOfs int // text offset range [startOfs, endOfs)
	endOfs   int
}

// DisplayList is an in-memory Formatter for programmatically built
// documents: demos, tests, and hosts that position content themselves. It
// is not a text formatter — callers place items; the list answers the
// geometry queries over them and draws solid placeholder fills.
//
// Items stack in insertion order: the last item added at a position is the
// topmost. Text offsets accumulate in insertion order.
type DisplayList struct {
	items []displayItem
	links []*Link
	text  []rune
	sel   SelectionRange
	gen   int

	docHeight int
}

// NewDisplayList returns an empty display list at layout generation 1.
func NewDisplayList() *DisplayList {
	return &DisplayList{gen: 1}
}

// AddText places a run of plain text.
func (d *DisplayList) AddText(text string, bounds Rect) {
	d.addItem(text, "", -1, bounds)
}

// AddImage places an image placeholder annotated with alt text.
func (d *DisplayList) AddImage(altText string, bounds Rect) {
	d.addItem("", altText, -1, bounds)
}

// AddLink places a run of linked text and returns its clickable link.
// Adjust Append, NoEnter, or Clickable on the returned link before it is
// queried.
func (d *DisplayList) AddLink(text, href string, bounds Rect) *Link {
	return d.addLink(text, href, "", bounds)
}

// AddAnnotatedLink places linked text that also carries alt text. The alt
// text takes precedence over the destination in status feedback.
func (d *DisplayList) AddAnnotatedLink(text, href, altText string, bounds Rect) *Link {
	return d.addLink(text, href, altText, bounds)
}

// AddLinkRegion places an additional text region belonging to an existing
// link, image-map style. The link's bounds grow to cover the new region.
func (d *DisplayList) AddLinkRegion(link *Link, text string, bounds Rect) {
	if link.gen != d.gen {
		panic("qtads: AddLinkRegion: link is from a different layout generation")
	}
	idx := -1
	for i, l := range d.links {
		if l == link {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("qtads: AddLinkRegion: link is not owned by this display list")
	}
	link.Bounds = link.Bounds.Union(bounds)
	d.addItem(text, "", idx, bounds)
}

func (d *DisplayList) addLink(text, href, altText string, bounds Rect) *Link {
	l := &Link{
		ID:        len(d.links),
		Href:      href,
		Clickable: true,
		Bounds:    bounds,
		gen:       d.gen,
	}
	d.links = append(d.links, l)
	d.addItem(text, altText, len(d.links)-1, bounds)
	return l
}

func (d *DisplayList) addItem(text, altText string, link int, bounds Rect) {
	start := len(d.text)
	d.text = append(d.text, []rune(text)...)
	d.items = append(d.items, displayItem{
		bounds:   bounds,
		altText:  altText,
		link:     link,
		startOfs: start,
		endOfs:   len(d.text),
	})
	if bottom := bounds.Y + bounds.Height; bottom > d.docHeight {
		d.docHeight = bottom
	}
}

// Rebuild discards every item, link, and the selection, and starts a new
// layout generation. Links issued before the rebuild are stale; views
// notice the generation change and invalidate tracking before their next
// query.
func (d *DisplayList) Rebuild() {
	d.items = d.items[:0]
	d.links = d.links[:0]
	d.text = d.text[:0]
	d.sel = SelectionRange{}
	d.docHeight = 0
	d.gen++
}

// DisplayObjectAt implements Formatter. The topmost item wins: items are
// scanned in reverse insertion order.
func (d *DisplayList) DisplayObjectAt(p Point) (DisplayObject, bool) {
	for i := len(d.items) - 1; i >= 0; i-- {
		it := &d.items[i]
		if !it.bounds.Contains(p) {
			continue
		}
		return DisplayObject{
			ID:      i,
			Kind:    displayKindFor(it.altText, it.link >= 0),
			AltText: it.altText,
			Bounds:  it.bounds,
		}, true
	}
	return DisplayObject{}, false
}

// LinkAt implements Formatter: the item's link, when its region covers the
// exact position.
func (d *DisplayList) LinkAt(obj DisplayObject, p Point) *Link {
	if obj.ID < 0 || obj.ID >= len(d.items) {
		return nil
	}
	it := &d.items[obj.ID]
	if it.link < 0 {
		return nil
	}
	l := d.links[it.link]
	if !l.Bounds.Contains(p) {
		return nil
	}
	return l
}

// TextOffsetAt implements Formatter: the offset within the item nearest to
// p (vertical distance first, then horizontal), interpolated across the
// item's width. Positions outside the document clamp to the nearest item.
func (d *DisplayList) TextOffsetAt(p Point) int {
	if len(d.items) == 0 {
		return 0
	}
	best := -1
	var bestDy, bestDx int
	for i := range d.items {
		b := d.items[i].bounds
		var dy, dx int
		if p.Y < b.Y {
			dy = b.Y - p.Y
		} else if p.Y >= b.Y+b.Height {
			dy = p.Y - (b.Y + b.Height - 1)
		}
		if p.X < b.X {
			dx = b.X - p.X
		} else if p.X >= b.X+b.Width {
			dx = p.X - (b.X + b.Width - 1)
		}
		if best < 0 || dy < bestDy || (dy == bestDy && dx < bestDx) {
			best, bestDy, bestDx = i, dy, dx
		}
	}

	it := &d.items[best]
	span := it.endOfs - it.startOfs
	if span <= 0 || it.bounds.Width <= 0 {
		return it.startOfs
	}
	x := p.X
	if x < it.bounds.X {
		x = it.bounds.X
	}
	if x > it.bounds.X+it.bounds.Width {
		x = it.bounds.X + it.bounds.Width
	}
	return it.startOfs + span*(x-it.bounds.X)/it.bounds.Width
}

// SetSelectionRange implements Formatter. The pair is accepted in either
// order and clamped to the document.
func (d *DisplayList) SetSelectionRange(start, end int) {
	d.sel = SelectionRange{
		Start: d.clampOffset(start),
		End:   d.clampOffset(end),
	}.Normalized()
}

// Selection implements Formatter.
func (d *DisplayList) Selection() SelectionRange {
	return d.sel
}

// MaxTextOffset implements Formatter.
func (d *DisplayList) MaxTextOffset() int {
	return len(d.text)
}

// TextBetween implements Formatter.
func (d *DisplayList) TextBetween(start, end int) string {
	r := SelectionRange{
		Start: d.clampOffset(start),
		End:   d.clampOffset(end),
	}.Normalized()
	return string(d.text[r.Start:r.End])
}

// DocumentHeight implements Formatter: the bottom edge of the lowest item.
func (d *DisplayList) DocumentHeight() int {
	return d.docHeight
}

// Generation implements Formatter.
func (d *DisplayList) Generation() int {
	return d.gen
}

// Draw implements Formatter: every item intersecting region is drawn as a
// solid block, links tinted by their visual mode, with the selected text
// span overlaid.
func (d *DisplayList) Draw(dst *ebiten.Image, region Rect) {
	off := dst.Bounds().Min
	for i := range d.items {
		it := &d.items[i]
		if !it.bounds.Intersects(region) {
			continue
		}
		fillRect(dst, drawRect(it.bounds, region, off), d.itemFill(it))
		if sub, ok := d.selectedSubRect(it); ok {
			fillRect(dst, drawRect(sub, region, off), selectionFill)
		}
	}
}

func (d *DisplayList) itemFill(it *displayItem) color.RGBA {
	if it.link < 0 {
		if it.altText != "" && it.endOfs == it.startOfs {
			return imageFill
		}
		return textFill
	}
	switch d.links[it.link].Mode() {
	case LinkModeHover:
		return linkHoverFill
	case LinkModeClicked:
		return linkClickedFill
	default:
		return linkFill
	}
}

// selectedSubRect returns the part of the item covered by the selection,
// interpolated horizontally across the item's offset span.
func (d *DisplayList) selectedSubRect(it *displayItem) (Rect, bool) {
	if d.sel.Empty() {
		return Rect{}, false
	}
	span := it.endOfs - it.startOfs
	if span <= 0 || it.bounds.Width <= 0 {
		return Rect{}, false
	}
	a := max(d.sel.Start, it.startOfs)
	b := min(d.sel.End, it.endOfs)
	if a >= b {
		return Rect{}, false
	}
	x0 := it.bounds.X + (a-it.startOfs)*it.bounds.Width/span
	x1 := it.bounds.X + (b-it.startOfs)*it.bounds.Width/span
	return Rect{X: x0, Y: it.bounds.Y, Width: x1 - x0, Height: it.bounds.Height}, true
}

func (d *DisplayList) clampOffset(ofs int) int {
	if ofs < 0 {
		return 0
	}
	if ofs > len(d.text) {
		return len(d.text)
	}
	return ofs
}

// drawRect maps a document-space rectangle into dst coordinates for a draw
// of region.
func drawRect(r, region Rect, off image.Point) Rect {
	return Rect{
		X:      r.X - region.X + off.X,
		Y:      r.Y - region.Y + off.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

func fillRect(dst *ebiten.Image, r Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	sub := dst.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
	sub.Fill(c)
}
