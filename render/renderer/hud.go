package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/render"
)

// HudRenderer draws the top status rows and the bottom response panel
type HudRenderer struct{}

func NewHudRenderer() *HudRenderer {
	return &HudRenderer{}
}

func (r *HudRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	enc := ctx.Encounter
	if enc == nil {
		return
	}
	w, h := ctx.ScreenWidth, ctx.ScreenHeight
	if w == 0 || h < constant.HudTopRows+constant.HudBottomRows {
		return
	}
	lvl := enc.Level()
	player := enc.Player()

	// Top: title, score and lives
	buf.FillBg(0, 0, w, constant.HudTopRows-1, render.RgbHudBg)
	right := fmt.Sprintf("Pontos: %d  ", enc.Session().Score())
	lives := strings.Repeat(string(constant.GlyphLife), player.Lives) +
		strings.Repeat(" ", max(player.MaxLives-player.Lives, 0))
	rightWidth := utf8.RuneCountInString(right) + utf8.RuneCountInString(lives) + 1
	buf.Text(1, 0, truncate(lvl.Title, w-rightWidth-2), render.RgbHudAccent, tcell.AttrBold)
	col := buf.Text(w-rightWidth, 0, right, render.RgbHudText, 0)
	buf.Text(col, 0, lives, render.RgbLife, 0)

	question := lvl.Question
	if question == "" {
		question = lvl.Intro
	}
	buf.Text(1, 1, truncate(question, w-2), render.RgbHudText, 0)
	for x := 0; x < w; x++ {
		buf.SetFgOnly(x, constant.HudTopRows-1, '─', render.RgbHudDim, 0)
	}

	// Bottom: response text and progress, or the rule counters on enemy-only levels
	top := h - constant.HudBottomRows
	buf.FillBg(0, top, w, constant.HudBottomRows, render.RgbHudBg)
	for x := 0; x < w; x++ {
		buf.SetFgOnly(x, top, '─', render.RgbHudDim, 0)
	}

	if a := enc.Assembler(); a != nil {
		lines := wrap(a.CurrentText(), w-2)
		for i := 0; i < 2 && i < len(lines); i++ {
			drawResponseLine(buf, 1, top+1+i, lines[i])
		}
		drawProgress(buf, 1, h-1, w-2, a.ProgressPercent())
		return
	}

	stats := enc.Stats()
	buf.Text(1, top+1, fmt.Sprintf("Inimigos destruídos: %d", stats.EnemiesDestroyed), render.RgbHudText, 0)
	buf.Text(1, top+2, fmt.Sprintf("Tempo: %ds  Erros: %d", int(enc.Elapsed().Seconds()), stats.Misses), render.RgbHudDim, 0)
	if rule := lvl.Rule(); rule != nil {
		buf.Text(1, h-1, truncate("Objetivo: "+rule.String(), w-2), render.RgbHudAccent, 0)
	}
}

// drawResponseLine colors blank markers apart from filled text
func drawResponseLine(buf *render.RenderBuffer, x, y int, line string) {
	for _, ch := range line {
		fg := render.RgbFilled
		if ch == '_' {
			fg = render.RgbBlank
		}
		buf.SetFgOnly(x, y, ch, fg, 0)
		x++
	}
}

// drawProgress draws "Resposta [████░░░░] 50%" across width columns
func drawProgress(buf *render.RenderBuffer, x, y, width, percent int) {
	label := "Resposta "
	suffix := fmt.Sprintf(" %3d%%", percent)
	barWidth := width - utf8.RuneCountInString(label) - utf8.RuneCountInString(suffix) - 2
	if barWidth < 1 {
		buf.Text(x, y, truncate(label+suffix, width), render.RgbHudText, 0)
		return
	}
	filled := barWidth * percent / 100

	col := buf.Text(x, y, label+"[", render.RgbHudText, 0)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			buf.SetFgOnly(col+i, y, constant.GlyphBarOn, render.RgbProgressOn, 0)
		} else {
			buf.SetFgOnly(col+i, y, constant.GlyphBarOff, render.RgbProgressOff, 0)
		}
	}
	buf.Text(col+barWidth, y, "]"+suffix, render.RgbHudText, 0)
}
