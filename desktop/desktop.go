// Package desktop hosts panes in an ebiten window: the script runner and the
// pointer drive the positions, and every pane is drawn from the inline
// styles of its Box.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panes"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Script is optional; without one the panes only follow the pointer.
	Script *panes.Script
	// Logger defaults to the engine's warning logger.
	Logger *log.Logger
}

// Game implements ebiten.Game for a scripted set of panes.
type Game struct {
	engine  *panes.Engine
	runner  *panes.ScriptRunner
	input   *interaction
	showFPS bool

	now    time.Duration
	width  int
	height int
	white  *ebiten.Image
	verts  []ebiten.Vertex
	inds   []uint16
}

// NewGame creates the engine and the script's panes.
func NewGame(cfg RunConfig) (*Game, error) {
	e := panes.NewEngine()
	if cfg.Logger != nil {
		e.SetLogger(cfg.Logger)
	}
	s := cfg.Script
	if s == nil {
		s = &panes.Script{}
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		s.Viewport = panes.ViewportConfig{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}
	r, err := panes.NewScriptRunner(e, s)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	vp := e.Viewport()
	return &Game{
		engine:  e,
		runner:  r,
		input:   newInteraction(r.Panes()),
		showFPS: cfg.ShowFPS,
		width:   int(vp.Width),
		height:  int(vp.Height),
	}, nil
}

// Engine returns the game's engine.
func (g *Game) Engine() *panes.Engine { return g.engine }

// Update steps the script, applies pointer input and runs one engine frame.
func (g *Game) Update() error {
	if err := g.runner.Step(); err != nil {
		return err
	}

	mx, my := ebiten.CursorPosition()
	if err := g.input.handle(pointer{
		X:    float64(mx),
		Y:    float64(my),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetAll()
	}

	g.now += time.Second / time.Duration(ebiten.TPS())
	g.engine.Frame(g.now)
	return nil
}

// resetAll tweens every pane back to the state it had when first bound.
func (g *Game) resetAll() {
	for _, pn := range g.runner.Panes() {
		st := pn.Position().State()
		if _, _, err := st.Restore(panes.RestoreOptions{
			Name:      panes.DefaultStateName,
			AnimateTo: true,
			Duration:  0.3,
		}); err != nil {
			g.engine.Logger().Warn("reset failed", "pane", pn.Name, "err", err)
		}
	}
}

// Draw renders the panes in z-index order.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x1e, 0x1e, 0x28, 0xff})
	if g.white == nil {
		g.white = ebiten.NewImage(1, 1)
		g.white.Fill(color.White)
	}

	g.verts, g.inds = g.verts[:0], g.inds[:0]
	for i, pn := range drawOrder(g.runner.Panes(), false) {
		c := paneColor(i)
		g.verts, g.inds = appendQuad(g.verts, g.inds, pn.Box.Layout(), c)
		if panes.IsResizable(pn) {
			g.verts, g.inds = appendQuad(g.verts, g.inds, handleLayout(pn.Box.Layout()), color.RGBA{0xff, 0xff, 0xff, 0x80})
		}
	}
	if len(g.verts) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		screen.DrawTriangles(g.verts, g.inds, g.white, &op)
	}

	for _, pn := range g.runner.Panes() {
		r := pn.Bounds()
		ebitenutil.DebugPrintAt(screen, pn.Name, int(r.X)+4, int(r.Y)+2)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps the viewport in sync with the window and re-validates every
// pane when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		root := g.runner.Root()
		root.IntrinsicWidth, root.IntrinsicHeight = float64(outsideWidth), float64(outsideHeight)
		g.engine.SetViewport(panes.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)})
		for _, pn := range g.runner.Panes() {
			pn.Position().Set(nil)
		}
	}
	return g.width, g.height
}

// Run opens a window and runs the panes until it is closed.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	title := cfg.Title
	if title == "" {
		title = "panes"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
