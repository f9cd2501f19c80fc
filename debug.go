package qtads

import (
	"fmt"
	"os"
)

// SetDebugMode toggles stderr tracing of controller transitions and strict
// checks on held link references. Release mode skips both entirely.
func (t *Tracker) SetDebugMode(debug bool) {
	t.debug = debug
}

// debugf prints a controller trace line to stderr.
func (t *Tracker) debugf(format string, args ...any) {
	if !t.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[qtads] "+format+"\n", args...)
}

// debugCheckHeldLinks panics when a held link predates the formatter's
// current layout generation: the host changed the layout without
// invalidating tracking first. Only called in debug mode.
func (t *Tracker) debugCheckHeldLinks(op string) {
	if !t.debug {
		return
	}
	gen := t.formatter.Generation()
	debugCheckLinkGeneration(t.hover, gen, op+" with hover link")
	debugCheckLinkGeneration(t.armed, gen, op+" with armed link")
}

// debugCheckLinkGeneration panics on a link issued by an earlier layout
// pass. Links with no recorded generation are exempt.
func debugCheckLinkGeneration(l *Link, current int, op string) {
	if l == nil || l.gen == 0 || l.gen == current {
		return
	}
	panic(fmt.Sprintf("qtads debug: %s: link %d is from layout generation %d (current %d)",
		op, l.ID, l.gen, current))
}
