package renderer

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/render"
)

// OverlayRenderer draws the centered screen box: menus, intros, end screens, prompts
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	ov := ctx.Overlay
	if ov == nil {
		return
	}
	sw, sh := ctx.ScreenWidth, ctx.ScreenHeight
	boxW := min(sw-2, constant.OverlayMaxWidth)
	if boxW < 8 || sh < 5 {
		return
	}
	inner := boxW - 4

	var lines []string
	for _, l := range ov.Lines {
		if l == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrap(l, inner)...)
	}
	// Title, blank, body, blank before options, options, blank, footer
	boxH := 2 + 2 + len(lines)
	if len(ov.Options) > 0 {
		boxH += 1 + len(ov.Options)
	}
	if ov.Footer != "" {
		boxH += 2
	}
	boxH = min(boxH, sh)

	x0 := (sw - boxW) / 2
	y0 := (sh - boxH) / 2
	border := render.RgbOverlayBorder
	if ov.Alert {
		border = render.RgbPlayerHurt
	}
	drawBox(buf, x0, y0, boxW, boxH, border)

	y := y0 + 1
	limit := y0 + boxH - 1
	centered := func(s string, fg render.RGB, attrs tcell.AttrMask) {
		if y >= limit {
			return
		}
		s = truncate(s, inner)
		buf.Text(x0+(boxW-utf8.RuneCountInString(s))/2, y, s, fg, attrs)
		y++
	}

	centered(ov.Title, render.RgbOverlayTitle, tcell.AttrBold)
	y++
	for _, l := range lines {
		centered(l, render.RgbOverlayText, 0)
	}
	if len(ov.Options) > 0 {
		y++
		for i, opt := range ov.Options {
			if i == ov.Selected {
				centered("> "+opt+" <", render.RgbOverlaySelect, tcell.AttrBold)
			} else {
				centered(opt, render.RgbOverlayText, 0)
			}
		}
	}
	if ov.Footer != "" {
		y++
		centered(ov.Footer, render.RgbHudDim, 0)
	}
}

func drawBox(buf *render.RenderBuffer, x, y, w, h int, border render.RGB) {
	buf.FillBg(x, y, w, h, render.RgbOverlayBg)
	for col := x + 1; col < x+w-1; col++ {
		buf.SetFgOnly(col, y, '─', border, 0)
		buf.SetFgOnly(col, y+h-1, '─', border, 0)
	}
	for row := y + 1; row < y+h-1; row++ {
		buf.SetFgOnly(x, row, '│', border, 0)
		buf.SetFgOnly(x+w-1, row, '│', border, 0)
		for col := x + 1; col < x+w-1; col++ {
			buf.SetFgOnly(col, row, ' ', render.RgbOverlayText, 0)
		}
	}
	buf.SetFgOnly(x, y, '╭', border, 0)
	buf.SetFgOnly(x+w-1, y, '╮', border, 0)
	buf.SetFgOnly(x, y+h-1, '╰', border, 0)
	buf.SetFgOnly(x+w-1, y+h-1, '╯', border, 0)
}
