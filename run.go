package qtads

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundFill is the window color behind the document.
var backgroundFill = color.RGBA{0x18, 0x18, 0x20, 0xff}

// RunConfig configures the Run convenience loop.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// OnUpdate runs each tick after the view updates. Returning a non-nil
	// error stops the loop; return ebiten.Termination for a clean exit.
	OnUpdate func() error

	// OnDraw runs each frame after the view is drawn, for status lines and
	// other chrome. The FPS overlay, when enabled, draws on top of it.
	OnDraw func(screen *ebiten.Image)
}

// Run opens a window and drives the view until the window is closed or
// cfg.OnUpdate returns an error. It is a convenience wrapper for hosts
// without their own ebiten.Game; embed the View in a Game directly for
// anything more involved.
func Run(view *View, cfg RunConfig) error {
	if view == nil {
		panic("qtads: Run: nil view")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "qtads"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	g := &runGame{view: view, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}

type runGame struct {
	view *View
	cfg  RunConfig
	fps  *fpsOverlay
}

func (g *runGame) Update() error {
	g.view.Update()
	if g.fps != nil {
		g.fps.tick(1.0 / float64(ebiten.TPS()))
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundFill)
	g.view.Draw(screen)
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
