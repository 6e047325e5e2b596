package renderer

import (
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/render"
)

// ExplosionRenderer draws fading blasts where entities were destroyed
type ExplosionRenderer struct{}

func NewExplosionRenderer() *ExplosionRenderer {
	return &ExplosionRenderer{}
}

func (r *ExplosionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Encounter == nil {
		return
	}
	for _, ex := range ctx.Encounter.World().Explosions {
		left := ex.Until.Sub(ctx.Now)
		if left <= 0 {
			continue
		}
		x, y, ok := ctx.FieldToScreen(ex.Pos)
		if !ok {
			continue
		}
		// Intensity fades linearly over the explosion lifetime
		alpha := float64(left) / float64(constant.ExplosionDuration)
		radius := 1
		if alpha < 0.5 {
			radius = 2
		}
		for dy := -radius / 2; dy <= radius/2; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				buf.Set(x+dx, y+dy, 0, render.RGB{}, render.RgbExplosion, render.BlendAlphaBg, alpha*0.6, 0)
			}
		}
		buf.SetFgOnly(x, y, constant.GlyphExplosion, render.Blend(render.RgbExplosion, render.RgbExplosionCore, alpha), 0)
	}
}
