package qtads

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scroller tracks the vertical scroll position of a document inside a
// viewport and animates scroll-to requests. The offset is clamped so the
// viewport never shows past either end of the document.
type Scroller struct {
	y          float64
	docHeight  int
	viewHeight int
	tween      *gween.Tween
}

// NewScroller creates a scroller at offset zero.
func NewScroller(docHeight, viewHeight int) *Scroller {
	return &Scroller{docHeight: docHeight, viewHeight: viewHeight}
}

// Y returns the current scroll offset: the document Y coordinate drawn at
// the top of the viewport.
func (s *Scroller) Y() float64 {
	return s.y
}

// MaxOffset returns the largest valid scroll offset.
func (s *Scroller) MaxOffset() float64 {
	m := float64(s.docHeight - s.viewHeight)
	if m < 0 {
		return 0
	}
	return m
}

// SetDocumentHeight updates the document extent and re-clamps the offset.
func (s *Scroller) SetDocumentHeight(h int) {
	s.docHeight = h
	s.y = s.clamp(s.y)
}

// SetViewportHeight updates the viewport extent and re-clamps the offset.
func (s *Scroller) SetViewportHeight(h int) {
	s.viewHeight = h
	s.y = s.clamp(s.y)
}

// ScrollTo animates the offset to y over duration seconds. A duration of
// zero or less snaps immediately. The target is clamped.
func (s *Scroller) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	target := s.clamp(y)
	if duration <= 0 {
		s.tween = nil
		s.y = target
		return
	}
	s.tween = gween.New(float32(s.y), float32(target), duration, easeFn)
}

// ScrollBy moves the offset immediately by dy, cancelling any active
// scroll animation.
func (s *Scroller) ScrollBy(dy float64) {
	s.tween = nil
	s.y = s.clamp(s.y + dy)
}

// update advances the scroll animation and reports whether the offset
// changed this tick.
func (s *Scroller) update(dt float32) bool {
	if s.tween == nil {
		return false
	}
	val, done := s.tween.Update(dt)
	if done {
		s.tween = nil
	}
	prev := s.y
	s.y = s.clamp(float64(val))
	return s.y != prev
}

func (s *Scroller) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if m := s.MaxOffset(); y > m {
		return m
	}
	return y
}
