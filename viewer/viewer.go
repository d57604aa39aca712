//go:build ebiten

package viewer

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/cluster-gol/model"
	"github.com/sheikhrachel/cluster-gol/render"
)

// Game adapts an engine and colorer to the ebiten.Game interface.
type Game struct {
	settings Settings
	engine   *model.Engine
	colorer  *model.Colorer
	colors   *model.ColorBuffer

	img *ebiten.Image

	gate stepGate
}

// New constructs a Game seeded from settings.
func New(s Settings) (*Game, error) {
	g := &Game{
		settings: s,
		colorer:  &model.Colorer{Connectivity: s.Connectivity},
		img:      ebiten.NewImage(s.Width, s.Height),
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds the engine from the configured seed.
func (g *Game) Reset() error {
	engine, err := model.NewEngine(g.settings.Height, g.settings.Width, g.settings.Population,
		rand.New(rand.NewPCG(uint64(g.settings.Seed), 0)), model.WithWorkers(g.settings.Workers))
	if err != nil {
		return err
	}
	g.engine = engine
	g.colors = g.colorer.Colors(engine.Grid())
	g.gate.reset()
	return nil
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.gate.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.gate.stepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	if g.gate.shouldStep() {
		g.engine.Update()
		g.colorer.ColorsInto(g.engine.Grid(), g.colors)
	}
	return nil
}

// Draw renders the current cluster colors.
func (g *Game) Draw(screen *ebiten.Image) {
	g.img.WritePixels(render.ToImage(g.colors, 1).Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.settings.Scale), float64(g.settings.Scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Width * g.settings.Scale, g.settings.Height * g.settings.Scale
}
