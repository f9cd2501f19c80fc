// Package qtads implements pointer interaction for hypertext game
// transcripts on [Ebitengine].
//
// Qtads turns raw pointer input over a formatted document into the
// behavior players expect from an interactive-fiction viewer: hyperlinks
// highlight under the cursor, clicks arm and activate them into game
// commands, dragging over plain text selects it, and the status line and
// mouse cursor follow along.
//
// # Quick start
//
// Build a document with [DisplayList] (or implement [Formatter] over your
// own layout engine), wrap it in a [View], and drive the view from your
// [ebiten.Game]:
//
//	doc := qtads.NewDisplayList()
//	doc.AddText("You can ", qtads.Rect{X: 8, Y: 8, Width: 64, Height: 16})
//	doc.AddLink("look", "look", qtads.Rect{X: 72, Y: 8, Width: 32, Height: 16})
//
//	view := qtads.NewView(doc, qtads.ViewConfig{
//		Bounds: qtads.Rect{Width: 640, Height: 400},
//		Commands: qtads.CommandFunc(func(cmd qtads.Command) {
//			fmt.Println("player clicked:", cmd.Text)
//		}),
//	})
//
//	type Game struct{ view *qtads.View }
//
//	func (g *Game) Update() error         { g.view.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.view.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Interaction model
//
// The interaction state machine lives in [Tracker] and works purely in
// document coordinates, so it can be driven headlessly in tests. It
// consumes geometry through the [Formatter] interface and reports effects
// through small sinks: [CommandSink] for activated links, [StatusSink] for
// the status line, [CursorSink] for the mouse cursor shape, and
// [RepaintRequester] for damaged regions.
//
// A link under the cursor enters [LinkModeHover]; pressing a clickable
// link arms it as [LinkModeClicked]; releasing over the same link emits a
// [Command]. Pressing anywhere else starts a text selection that keeps
// tracking the pointer until release, even outside the view. When the
// document is reformatted, views notice the [Formatter.Generation] change
// and drop every held link before the next query.
//
// # Feedback and settings
//
// [Settings] gates the feedback: EnableLinks turns link interaction off
// wholesale, HighlightLinks keeps links functional but visually quiet.
// Status text goes through [StatusBar], which coalesces the intermediate
// values of a tracking pass so observers see only complete messages.
// [CopySelection] puts the selected text on the system clipboard.
//
// # Key features
//
// Qtads includes smooth scrolling with easing (via [gween]), synthetic
// pointer injection and JSON-scripted interaction replay for tests and
// demos, labeled PNG snapshots of the view region, change taps for
// hover/selection/activation plus an [EventStore] bridge for ECS worlds
// (see the ecs subpackage), a [Run] helper that hosts a single view, and a
// debug mode that panics on stale-link misuse.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package qtads
