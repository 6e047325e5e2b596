package renderer

import (
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/render"
)

// StarfieldRenderer draws a slowly drifting star background in the field area
type StarfieldRenderer struct{}

func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{}
}

// starHash scatters stars deterministically over the field grid
func starHash(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func (r *StarfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Encounter == nil {
		return
	}
	ax, ay, aw, ah := ctx.FieldArea()
	if ah == 0 {
		return
	}
	// One row of drift per second
	drift := int(ctx.Encounter.Elapsed().Seconds())
	for row := 0; row < ah; row++ {
		for col := 0; col < aw; col++ {
			h := starHash(col, row-drift)
			if h%constant.StarDensity != 0 {
				continue
			}
			fg := render.RgbStarDim
			if h&0x100 != 0 {
				fg = render.RgbStarBright
			}
			buf.SetFgOnly(ax+col, ay+row, constant.GlyphStar, fg, 0)
		}
	}
}
