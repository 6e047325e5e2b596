package renderer

import (
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/render"
)

// PlayerRenderer draws the defended ship; it turns red on its last life
type PlayerRenderer struct{}

func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Encounter == nil {
		return
	}
	player := ctx.Encounter.Player()
	x, y, ok := ctx.FieldToScreen(player.Pos)
	if !ok {
		return
	}
	fg := render.RgbPlayer
	if player.Lives <= 1 {
		fg = render.RgbPlayerHurt
	}
	buf.SetFgOnly(x-1, y, '/', fg, 0)
	buf.SetFgOnly(x, y, constant.GlyphPlayer, fg, 0)
	buf.SetFgOnly(x+1, y, '\\', fg, 0)
}
