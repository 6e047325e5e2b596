package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-engineer/audio"
	"github.com/lixenwraith/space-engineer/config"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/input"
	"github.com/lixenwraith/space-engineer/render"
	"github.com/lixenwraith/space-engineer/render/renderer"
	"github.com/lixenwraith/space-engineer/scene"
)

// host couples the scene flow to a tcell screen
// Only the loop goroutine touches it; the poller forwards raw events through a channel
type host struct {
	screen  tcell.Screen
	flow    *scene.Flow
	machine *input.Machine
	orch    *render.RenderOrchestrator
	sound   *audio.SoundManager
	clock   engine.TimeProvider
}

func newHost(screen tcell.Screen, flow *scene.Flow, sound *audio.SoundManager, clock engine.TimeProvider) *host {
	orch := render.NewRenderOrchestrator(screen)
	renderer.RegisterAll(orch)
	h := &host{
		screen:  screen,
		flow:    flow,
		machine: input.NewMachine(),
		orch:    orch,
		sound:   sound,
		clock:   clock,
	}
	h.syncMode()
	return h
}

// runGame opens the terminal and runs the loop until the player quits
func runGame(ctx context.Context, c *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	prog, err := openProgression(c)
	if err != nil {
		return err
	}
	keys, err := loadKeymap(c.KeymapFile)
	if err != nil {
		return err
	}

	rk := openRanking(ctx, c)
	defer rk.Close()

	sound := openSound(c)
	defer sound.Cleanup()

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := engine.NewMonotonicTimeProvider()
	flow := scene.NewFlow(scene.Options{
		Context:     ctx,
		Progression: prog,
		Ranking:     rk,
		Clock:       clock,
		Sound:       sound,
		Rand:        rand.New(rand.NewSource(seed)),
		Clipboard:   copyToClipboard,
		Width:       float64(c.Field.Width),
		Height:      float64(c.Field.Height),
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetTerminalReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	h := newHost(screen, flow, sound, clock)
	if keys != nil {
		h.machine.ApplyKeyConfig(keys)
	}
	log.Printf("[main] game started, seed %d", seed)
	h.loop(c.TickInterval())
	log.Printf("[main] game exited")
	return nil
}

func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this platform")
	}
	return clipboard.WriteAll(text)
}

// loop selects over terminal events and the frame ticker until the flow asks to quit
func (h *host) loop(tick time.Duration) {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	h.render()
	for !h.flow.Quit() {
		select {
		case ev := <-events:
			h.handle(ev)
		case <-ticker.C:
			h.flow.Tick()
			h.syncMode()
		}
		h.render()
	}
}

// handle translates one terminal event and applies it before the next tick
func (h *host) handle(ev tcell.Event) {
	intent := h.machine.Process(ev)
	if intent == nil {
		return
	}
	switch intent.Type {
	case input.IntentResize:
		h.orch.Resize()
	case input.IntentToggleMute:
		h.sound.ToggleMute()
	case input.IntentLetter:
		h.flow.Letter(intent.Char)
	case input.IntentTextChar:
		h.flow.TypeChar(intent.Char)
	default:
		if a, ok := intentActions[intent.Type]; ok {
			h.flow.Do(a)
		}
	}
	h.syncMode()
}

var intentActions = map[input.IntentType]scene.Action{
	input.IntentQuit:          scene.ActionQuit,
	input.IntentEscape:        scene.ActionEscape,
	input.IntentConfirm:       scene.ActionConfirm,
	input.IntentTextBackspace: scene.ActionBackspace,
	input.IntentMenuUp:        scene.ActionUp,
	input.IntentMenuDown:      scene.ActionDown,
	input.IntentMenuPlay:      scene.ActionPlay,
	input.IntentMenuRanking:   scene.ActionRanking,
	input.IntentMenuCredits:   scene.ActionCredits,
	input.IntentRankingClear:  scene.ActionClear,
	input.IntentRankingCopy:   scene.ActionCopy,
	input.IntentYes:           scene.ActionYes,
	input.IntentNo:            scene.ActionNo,
}

// syncMode points the key machine at the bindings of the current screen
func (h *host) syncMode() {
	h.machine.SetMode(inputMode(h.flow))
}

func inputMode(f *scene.Flow) input.InputMode {
	switch f.Mode() {
	case core.ModeMenu:
		return input.ModeMenu
	case core.ModePlaying:
		return input.ModePlay
	case core.ModeNameInput:
		return input.ModeText
	case core.ModeRanking:
		if f.ConfirmPending() {
			return input.ModeConfirm
		}
		return input.ModeRanking
	default:
		return input.ModeScreen
	}
}

func (h *host) render() {
	h.orch.RenderFrame(render.RenderContext{
		Now:       h.clock.Now(),
		Encounter: h.flow.Encounter(),
		Overlay:   h.flow.View(),
	})
}
