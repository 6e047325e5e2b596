package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// RenderPriority orders renderers within a frame, lower draws first
type RenderPriority int

const (
	PriorityBackground  RenderPriority = 100 // Starfield
	PriorityEntities    RenderPriority = 200 // Enemy and powerup words
	PriorityParticle    RenderPriority = 300 // Projectiles, explosions
	PriorityPlayer      RenderPriority = 350
	PriorityPostProcess RenderPriority = 390 // Miss flash tint
	PriorityUI          RenderPriority = 400 // HUD rows
	PriorityOverlay     RenderPriority = 500 // Screen boxes
)

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a renderer skip frames without being unregistered
type VisibilityToggle interface {
	IsVisible() bool
}

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator owns the frame buffer and runs the layers in priority order
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layer
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
	}
}

// Register adds a layer; equal priorities keep registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.layers = append(o.layers, layer{renderer: r, priority: priority})
	sort.SliceStable(o.layers, func(i, j int) bool {
		return o.layers[i].priority < o.layers[j].priority
	})
}

// Buffer exposes the frame buffer, used by tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Resize follows the terminal size and forces a full redraw
func (o *RenderOrchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// RenderFrame clears the buffer, runs every visible layer and flushes to the screen
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	ctx.ScreenWidth, ctx.ScreenHeight = o.buffer.Bounds()
	o.buffer.Clear()
	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
}
