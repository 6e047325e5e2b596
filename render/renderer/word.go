package renderer

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/render"
	"github.com/lixenwraith/space-engineer/vmath"
)

// WordRenderer draws enemy and powerup words centered on their positions
// Consumed letters are dimmed; the engaged target is bold
type WordRenderer struct{}

func NewWordRenderer() *WordRenderer {
	return &WordRenderer{}
}

func (r *WordRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Encounter == nil {
		return
	}
	world := ctx.Encounter.World()

	var engaged component.Typeable
	if res := ctx.Encounter.Resolver(); res != nil {
		engaged = res.Target()
	}

	for _, p := range world.Powerups {
		if !p.Active || p.Collected {
			continue
		}
		isTarget := engaged != nil && engaged.Entity() == p.ID
		fg := render.RgbPowerup
		if isTarget {
			fg = render.RgbPowerupTargeted
		}
		drawWord(&ctx, buf, p.Pos, &p.Word, fg, isTarget, true)
	}

	for _, e := range world.Enemies {
		if !e.Active {
			continue
		}
		fg := render.RgbEnemy
		switch {
		case e.Targeted:
			fg = render.RgbEnemyTargeted
		case e.Stunned:
			fg = render.RgbEnemyStunned
		}
		drawWord(&ctx, buf, e.Pos, &e.Word, fg, e.Targeted, false)
	}
}

func drawWord(ctx *render.RenderContext, buf *render.RenderBuffer, pos vmath.Vec2, w *component.Word, fg render.RGB, engaged, bracketed bool) {
	x, y, ok := ctx.FieldToScreen(pos)
	if !ok {
		return
	}
	original := w.OriginalWord()
	n := utf8.RuneCountInString(original)
	consumed := n - utf8.RuneCountInString(w.Remaining())

	var attrs tcell.AttrMask
	if engaged {
		attrs = tcell.AttrBold | tcell.AttrUnderline
	}

	col := x - n/2
	if bracketed {
		buf.SetFgOnly(col-1, y, '[', fg, 0)
	}
	i := 0
	for _, ch := range original {
		c := fg
		a := attrs
		if i < consumed {
			c = render.RgbTypedLetter
			a = 0
		}
		buf.SetFgOnly(col+i, y, ch, c, a)
		i++
	}
	if bracketed {
		buf.SetFgOnly(col+n, y, ']', fg, 0)
	}
}
