// Command space-engineer-web runs the game in an ebiten window, or in a browser when built with
// GOOS=js GOARCH=wasm. The ranking lives in memory for the session.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/space-engineer/audio"
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/ranking"
	"github.com/lixenwraith/space-engineer/scene"
	"github.com/lixenwraith/space-engineer/webui"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	prog, err := level.Default()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	seed := time.Now().UnixNano()
	clock := engine.NewMonotonicTimeProvider()
	flow := scene.NewFlow(scene.Options{
		Context:     ctx,
		Progression: prog,
		Ranking:     ranking.New(ctx, ranking.NewMemoryStore()),
		Clock:       clock,
		Sound:       audio.NopPlayer{},
		Rand:        rand.New(rand.NewSource(seed)),
		Width:       constant.FieldWidth,
		Height:      constant.FieldHeight,
	})

	ebiten.SetWindowTitle("Space Engineer")
	ebiten.SetWindowSize(constant.FieldWidth*2/3, constant.FieldHeight*2/3)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := webui.New(flow, clock, constant.FieldWidth, constant.FieldHeight, seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
