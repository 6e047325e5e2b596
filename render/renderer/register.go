// Package renderer holds the terminal frame renderers.
package renderer

import "github.com/lixenwraith/space-engineer/render"

// RegisterAll wires every renderer into the orchestrator at its priority
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewStarfieldRenderer(), render.PriorityBackground)
	o.Register(NewWordRenderer(), render.PriorityEntities)
	o.Register(NewProjectileRenderer(), render.PriorityParticle)
	o.Register(NewExplosionRenderer(), render.PriorityParticle)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewFlashRenderer(), render.PriorityPostProcess)
	o.Register(NewHudRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
