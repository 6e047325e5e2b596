package renderer

import (
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/render"
)

// ProjectileRenderer draws letters in flight; the final letter of a word is brighter
type ProjectileRenderer struct{}

func NewProjectileRenderer() *ProjectileRenderer {
	return &ProjectileRenderer{}
}

func (r *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Encounter == nil {
		return
	}
	for _, p := range ctx.Encounter.World().Projectiles {
		if !p.Active {
			continue
		}
		x, y, ok := ctx.FieldToScreen(p.Pos)
		if !ok {
			continue
		}
		fg := render.RgbProjectile
		if p.Last {
			fg = render.RgbProjectileLast
		}
		buf.SetFgOnly(x, y, constant.GlyphProjectile, fg, 0)
	}
}
