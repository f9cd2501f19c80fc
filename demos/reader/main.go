// reader displays a long scrolling transcript with links on every screen,
// persists viewer settings to a TOML file between runs, logs dispatched
// commands, and can replay a scripted interaction sequence.
//
//   - mouse wheel scrolls; Home and End glide to the top and bottom;
//     PageUp and PageDown jump a screen at a time
//   - click links to dispatch their commands into the log
//   - drag to select text, C copies the selection to the clipboard
//   - L and H toggle link following and highlighting; both persist on exit
//   - run with -script path/to/script.json to replay a recorded interaction
//
// No external assets are required.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"

	"github.com/denispokataev/qtads"
)

const (
	windowTitle  = "QTads — Reader Demo"
	screenW      = 640
	screenH      = 480
	settingsFile = "reader_settings.toml"

	charW = 8
	lineH = 16
	rowH  = 24 // line height plus leading
)

func main() {
	scriptPath := flag.String("script", "", "replay a JSON interaction script")
	flag.Parse()

	settings, err := qtads.LoadSettings(settingsFile)
	if err != nil {
		log.Printf("using default settings: %v", err)
	}

	doc := buildTranscript()
	commands := &qtads.CommandRecorder{}

	view := qtads.NewView(doc, qtads.ViewConfig{
		Bounds:   qtads.Rect{X: 16, Y: 16, Width: screenW - 32, Height: screenH - 96},
		Settings: &settings,
		Commands: commands,
	})

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := qtads.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		view.SetScriptRunner(runner)
	}

	pageStep := float64(view.Bounds().Height - lineH)
	prev := map[ebiten.Key]bool{}
	pressedOnce := func(key ebiten.Key) bool {
		down := ebiten.IsKeyPressed(key)
		fired := down && !prev[key]
		prev[key] = down
		return fired
	}

	err = qtads.Run(view, qtads.RunConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
		OnUpdate: func() error {
			sc := view.Scroller()
			switch {
			case pressedOnce(ebiten.KeyHome):
				sc.ScrollTo(0, 0.4, ease.OutQuad)
			case pressedOnce(ebiten.KeyEnd):
				sc.ScrollTo(sc.MaxOffset(), 0.4, ease.OutQuad)
			case pressedOnce(ebiten.KeyPageUp):
				sc.ScrollBy(-pageStep)
			case pressedOnce(ebiten.KeyPageDown):
				sc.ScrollBy(pageStep)
			}
			if pressedOnce(ebiten.KeyC) {
				if err := qtads.CopySelection(doc, nil); err != nil {
					log.Printf("copy selection: %v", err)
				}
			}
			if pressedOnce(ebiten.KeyL) {
				settings.EnableLinks = !settings.EnableLinks
			}
			if pressedOnce(ebiten.KeyH) {
				settings.HighlightLinks = !settings.HighlightLinks
			}
			return nil
		},
		OnDraw: func(screen *ebiten.Image) {
			sc := view.Scroller()
			header := fmt.Sprintf("scroll %d/%d   [L]inks: %v   [H]ighlight: %v",
				int(sc.Y()), int(sc.MaxOffset()), settings.EnableLinks, settings.HighlightLinks)
			ebitenutil.DebugPrintAt(screen, header, 16, screenH-72)
			ebitenutil.DebugPrintAt(screen, "status: "+view.StatusBar().Text(), 16, screenH-56)

			recent := commands.Commands()
			if len(recent) > 2 {
				recent = recent[len(recent)-2:]
			}
			for i, cmd := range recent {
				line := "> " + cmd.Text
				if cmd.Append {
					line += " [append]"
				}
				ebitenutil.DebugPrintAt(screen, line, 16, screenH-36+i*16)
			}
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := settings.Save(settingsFile); err != nil {
		log.Printf("save settings: %v", err)
	}
}

// row lays out spans left to right on one line of the transcript.
type row struct {
	doc  *qtads.DisplayList
	x, y int
}

func (r *row) span(w int) qtads.Rect {
	b := qtads.Rect{X: r.x, Y: r.y, Width: w, Height: lineH}
	r.x += w
	return b
}

func (r *row) text(s string) {
	r.doc.AddText(s, r.span(len(s)*charW))
}

func (r *row) link(s, href string) *qtads.Link {
	return r.doc.AddLink(s, href, r.span(len(s)*charW))
}

func (r *row) annotated(s, href, alt string) *qtads.Link {
	return r.doc.AddAnnotatedLink(s, href, alt, r.span(len(s)*charW))
}

var rooms = []struct {
	name   string
	body   string
	object string
	exit   string
}{
	{"Foyer", "Dust sheets drape the furniture like patient ghosts.", "mirror", "north"},
	{"Gallery", "Portraits follow you with flaking eyes.", "portrait", "east"},
	{"Library", "Shelves sag under decades of unread spines.", "ledger", "up"},
	{"Landing", "A draft worries the candle flames.", "candle", "west"},
	{"Study", "Papers fan across the desk in no order at all.", "letter", "down"},
	{"Cellar", "The air is cold and tastes of iron.", "crate", "south"},
	{"Kitchen", "Copper pots hang green with neglect.", "kettle", "out"},
	{"Garden", "Brambles have claimed the sundial.", "sundial", "in"},
}

// buildTranscript assembles several screens of story so the document
// scrolls. The reference formatter renders items as solid blocks, so the
// geometry stands in for rendered text.
func buildTranscript() *qtads.DisplayList {
	doc := qtads.NewDisplayList()
	y := 8

	for _, room := range rooms {
		r := &row{doc: doc, y: y}
		r.text(room.name)
		y += rowH

		r = &row{doc: doc, y: y}
		r.text(room.body)
		y += rowH

		r = &row{doc: doc, y: y}
		r.text("You can see a ")
		obj := r.link(room.object, "examine "+room.object)
		obj.Append = true
		r.text(" here.")
		y += rowH

		r = &row{doc: doc, y: y}
		r.text("An exit leads ")
		r.annotated(room.exit, "go "+room.exit, "You could go "+room.exit+" from here.")
		r.text(".")
		y += rowH + rowH/2
	}

	// A single link wrapped across two lines: both regions hover and click
	// as one.
	r := &row{doc: doc, y: y}
	r.text("At the end of it all, ")
	stair := r.link("a winding stair", "climb stair")
	y += rowH
	r = &row{doc: doc, y: y}
	doc.AddLinkRegion(stair, "climbs into darkness", r.span(len("climbs into darkness")*charW))
	r.text(".")

	return doc
}
