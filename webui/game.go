// Package webui is the ebiten frontend: it drives the same scene flow as the terminal host and
// draws it with vector shapes and a bitmap font, on the desktop or in a browser through wasm.
package webui

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/scene"
	"github.com/lixenwraith/space-engineer/vmath"
)

// Game adapts a scene flow to ebiten.Game
type Game struct {
	flow   *scene.Flow
	clock  engine.TimeProvider
	width  int
	height int
	stars  []vmath.Vec2

	keys  []ebiten.Key
	chars []rune
}

// New wraps the flow; width and height are the logical field size the flow was built with
func New(flow *scene.Flow, clock engine.TimeProvider, width, height int, seed int64) *Game {
	g := &Game{
		flow:   flow,
		clock:  clock,
		width:  width,
		height: height,
	}
	rng := rand.New(rand.NewSource(seed))
	n := width * height / (constant.StarDensity * 400)
	for i := 0; i < n; i++ {
		g.stars = append(g.stars, vmath.Vec2{X: rng.Float64() * float64(width), Y: rng.Float64() * float64(height)})
	}
	return g
}

// Update reads this frame's input, applies it, then advances the encounter
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.chars = ebiten.AppendInputChars(g.chars[:0])

	apply(g.flow, translate(g.flow.Mode(), g.flow.ConfirmPending(), g.keys, g.chars))
	g.flow.Tick()

	if g.flow.Quit() {
		log.Printf("[webui] quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.drawStars(screen)
	if enc := g.flow.Encounter(); enc != nil {
		g.drawField(screen, enc)
		g.drawHud(screen, enc)
	}
	if v := g.flow.View(); v != nil {
		g.drawView(screen, v)
	}
}

// Layout keeps the logical field size, ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
