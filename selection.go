package qtads

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SelectionRange is a pair of text offsets. Start is where the drag began
// and End is the current pointer offset, so the pair is unordered until
// Normalized. The controller only pushes ranges to the formatter; the
// formatter persists the active one.
type SelectionRange struct {
	Start, End int
}

// Normalized returns the range with Start <= End.
func (r SelectionRange) Normalized() SelectionRange {
	if r.Start > r.End {
		return SelectionRange{Start: r.End, End: r.Start}
	}
	return r
}

// Empty reports whether the range selects no text.
func (r SelectionRange) Empty() bool {
	return r.Start == r.End
}

// ClipboardFunc writes text to a clipboard. Tests substitute a capture
// function for the system clipboard.
type ClipboardFunc func(text string) error

// CopySelection extracts the formatter's current selection and writes it to
// the clipboard. An empty selection or empty extracted text is a no-op. A
// nil clip writes to the system clipboard.
func CopySelection(f Formatter, clip ClipboardFunc) error {
	sel := f.Selection()
	if sel.Empty() {
		return nil
	}
	text := f.TextBetween(sel.Start, sel.End)
	if text == "" {
		return nil
	}
	if clip == nil {
		clip = clipboard.WriteAll
	}
	if err := clip(text); err != nil {
		return fmt.Errorf("qtads: copy selection: %w", err)
	}
	return nil
}
