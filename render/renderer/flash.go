package renderer

import (
	"github.com/lixenwraith/space-engineer/render"
)

// FlashRenderer tints the field red while the miss indicator is lit
type FlashRenderer struct{}

func NewFlashRenderer() *FlashRenderer {
	return &FlashRenderer{}
}

func (r *FlashRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Encounter == nil || !ctx.Encounter.MissFlash() {
		return
	}
	ax, ay, aw, ah := ctx.FieldArea()
	for y := ay; y < ay+ah; y++ {
		for x := ax; x < ax+aw; x++ {
			buf.Set(x, y, 0, render.RGB{}, render.RgbMissFlashBg, render.BlendMaxBg, 1, 0)
		}
	}
}
