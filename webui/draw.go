package webui

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/space-engineer/scene"
	"github.com/lixenwraith/space-engineer/system"
	"github.com/lixenwraith/space-engineer/vmath"
)

var (
	colBackground = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	colStar       = color.RGBA{R: 120, G: 130, B: 170, A: 255}
	colEnemy      = color.RGBA{R: 235, G: 80, B: 80, A: 255}
	colTargeted   = color.RGBA{R: 255, G: 210, B: 60, A: 255}
	colStunned    = color.RGBA{R: 160, G: 160, B: 255, A: 255}
	colTyped      = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	colPowerup    = color.RGBA{R: 80, G: 220, B: 140, A: 255}
	colPowerupBg  = color.RGBA{R: 20, G: 70, B: 45, A: 200}
	colProjectile = color.RGBA{R: 255, G: 240, B: 160, A: 255}
	colExplosion  = color.RGBA{R: 255, G: 140, B: 40, A: 255}
	colPlayer     = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	colHudBg      = color.RGBA{R: 16, G: 20, B: 44, A: 230}
	colHudText    = color.RGBA{R: 220, G: 225, B: 240, A: 255}
	colHudDim     = color.RGBA{R: 130, G: 135, B: 160, A: 255}
	colLife       = color.RGBA{R: 255, G: 90, B: 120, A: 255}
	colBarOn      = color.RGBA{R: 80, G: 220, B: 140, A: 255}
	colBarOff     = color.RGBA{R: 40, G: 50, B: 70, A: 255}
	colMissFlash  = color.RGBA{R: 160, G: 0, B: 0, A: 70}
	colOverlayBg  = color.RGBA{R: 10, G: 14, B: 34, A: 240}
	colBorder     = color.RGBA{R: 90, G: 120, B: 220, A: 255}
	colAlert      = color.RGBA{R: 235, G: 80, B: 80, A: 255}
	colSelected   = color.RGBA{R: 255, G: 210, B: 60, A: 255}
)

// face is the bitmap font; Face7x13 covers Latin-1 so Portuguese accents render
var face = text.NewGoXFace(basicfont.Face7x13)

const (
	charW      = 7
	lineH      = 16
	hudTopH    = 3 * lineH
	hudBottomH = 4 * lineH
	boxPadding = 16
)

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	drawText(dst, s, cx-textWidth(s)/2, y, clr)
}

func textWidth(s string) float64 {
	return text.Advance(s, face)
}

func (g *Game) drawStars(dst *ebiten.Image) {
	for _, s := range g.stars {
		vector.FillRect(dst, float32(s.X), float32(s.Y), 1.5, 1.5, colStar, false)
	}
}

// drawField draws the encounter's entities in field pixels, the surface is the field size
func (g *Game) drawField(dst *ebiten.Image, enc *system.Encounter) {
	world := enc.World()

	for _, p := range world.Powerups {
		if !p.Active || p.Collected {
			continue
		}
		w := float32(textWidth(p.OriginalWord()))
		vector.FillRect(dst, float32(p.Pos.X)-w/2-6, float32(p.Pos.Y)-4, w+12, lineH+6, colPowerupBg, false)
		vector.StrokeRect(dst, float32(p.Pos.X)-w/2-6, float32(p.Pos.Y)-4, w+12, lineH+6, 1, colPowerup, false)
		drawWord(dst, p.Pos, p.OriginalWord(), p.Consumed(), colPowerup, false)
	}

	for _, e := range world.Enemies {
		if !e.Active {
			continue
		}
		clr := colEnemy
		switch {
		case e.Stunned:
			clr = colStunned
		case e.Targeted:
			clr = colTargeted
		}
		drawWord(dst, e.Pos, e.OriginalWord(), e.Consumed(), clr, e.Targeted)
	}

	for _, p := range world.Projectiles {
		if !p.Active {
			continue
		}
		r := float32(2.5)
		if p.Last {
			r = 4
		}
		vector.FillCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), r, colProjectile, true)
	}

	now := g.clock.Now()
	for _, x := range world.Explosions {
		left := x.Until.Sub(now).Seconds()
		if left <= 0 {
			continue
		}
		radius := float32(8 + (1-left)*24)
		vector.StrokeCircle(dst, float32(x.Pos.X), float32(x.Pos.Y), radius, 2, colExplosion, true)
	}

	pl := enc.Player()
	px, py := float32(pl.Pos.X), float32(pl.Pos.Y)
	vector.StrokeLine(dst, px, py-18, px-14, py+12, 2, colPlayer, true)
	vector.StrokeLine(dst, px-14, py+12, px+14, py+12, 2, colPlayer, true)
	vector.StrokeLine(dst, px+14, py+12, px, py-18, 2, colPlayer, true)

	if enc.MissFlash() {
		b := dst.Bounds()
		vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), colMissFlash, false)
	}
}

// drawWord centers the word on pos, consumed letters dimmed
func drawWord(dst *ebiten.Image, pos vmath.Vec2, word string, consumed int, clr color.Color, underline bool) {
	x := pos.X - textWidth(word)/2
	y := pos.Y
	typed := string([]rune(word)[:consumed])
	rest := string([]rune(word)[consumed:])
	drawText(dst, typed, x, y, colTyped)
	drawText(dst, rest, x+textWidth(typed), y, clr)
	if underline {
		vector.StrokeLine(dst, float32(x), float32(y+lineH), float32(x+textWidth(word)), float32(y+lineH), 1, clr, false)
	}
}

func (g *Game) drawHud(dst *ebiten.Image, enc *system.Encounter) {
	w := float32(g.width)
	vector.FillRect(dst, 0, 0, w, hudTopH, colHudBg, false)
	vector.FillRect(dst, 0, float32(g.height-hudBottomH), w, hudBottomH, colHudBg, false)

	lvl := enc.Level()
	drawText(dst, lvl.Title, 8, 4, colHudText)
	score := fmt.Sprintf("Pontos: %d", enc.Session().Score())
	drawText(dst, score, float64(g.width)-textWidth(score)-8, 4, colHudText)
	drawText(dst, "Vidas:", 8, 4+lineH, colHudDim)
	lx := float32(8 + textWidth("Vidas:") + 10)
	for i := 0; i < enc.Player().Lives; i++ {
		vector.FillCircle(dst, lx+float32(i)*14, 4+lineH+8, 5, colLife, true)
	}
	if lvl.Question != "" {
		drawText(dst, lvl.Question, 8, 4+2*lineH, colHudDim)
	}

	y := float64(g.height - hudBottomH + 4)
	asm := enc.Assembler()
	if asm == nil {
		st := enc.Stats()
		drawText(dst, fmt.Sprintf("Inimigos destruídos: %d", st.EnemiesDestroyed), 8, y, colHudText)
		drawText(dst, fmt.Sprintf("Tempo: %ds  Erros: %d", int(enc.Elapsed().Seconds()), st.Misses), 8, y+lineH, colHudDim)
		if r := lvl.Rule(); r != nil {
			drawText(dst, "Objetivo: "+r.String(), 8, y+2*lineH, colHudDim)
		}
		return
	}

	maxChars := (g.width - 16) / charW
	for i, line := range wrapText(asm.CurrentText(), maxChars) {
		if i == 2 {
			break
		}
		drawText(dst, line, 8, y+float64(i)*lineH, colHudText)
	}
	pct := asm.ProgressPercent()
	barY := float32(y + 2*lineH + 4)
	barW := w - 16 - 40
	vector.FillRect(dst, 8, barY, barW, 8, colBarOff, false)
	vector.FillRect(dst, 8, barY, barW*float32(pct)/100, 8, colBarOn, false)
	drawText(dst, fmt.Sprintf("%d%%", pct), float64(8+barW+6), float64(barY)-4, colHudText)
}

// drawView draws the centered screen box
func (g *Game) drawView(dst *ebiten.Image, v *scene.View) {
	boxW := min(g.width-40, 560)
	maxChars := (boxW - 2*boxPadding) / charW

	var lines []string
	for _, l := range v.Lines {
		if l == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapText(l, maxChars)...)
	}
	rows := 2 + len(lines)
	if len(v.Options) > 0 {
		rows += 1 + len(v.Options)
	}
	if v.Footer != "" {
		rows += 2
	}
	boxH := rows*lineH + 2*boxPadding

	x0 := float32(g.width-boxW) / 2
	y0 := float32(g.height-boxH) / 2
	border := colBorder
	if v.Alert {
		border = colAlert
	}
	vector.FillRect(dst, x0, y0, float32(boxW), float32(boxH), colOverlayBg, false)
	vector.StrokeRect(dst, x0, y0, float32(boxW), float32(boxH), 2, border, false)

	cx := float64(g.width) / 2
	y := float64(y0) + boxPadding
	drawCentered(dst, v.Title, cx, y, colSelected)
	y += 2 * lineH
	for _, l := range lines {
		drawCentered(dst, l, cx, y, colHudText)
		y += lineH
	}
	if len(v.Options) > 0 {
		y += lineH
		for i, opt := range v.Options {
			if i == v.Selected {
				drawCentered(dst, "> "+opt+" <", cx, y, colSelected)
			} else {
				drawCentered(dst, opt, cx, y, colHudText)
			}
			y += lineH
		}
	}
	if v.Footer != "" {
		y += lineH
		drawCentered(dst, v.Footer, cx, y, colHudDim)
	}
}

// wrapText splits s on spaces into lines of at most width runes, long words are hard-cut
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			r := []rune(word)
			lines = append(lines, string(r[:width]))
			word = string(r[width:])
		}
		switch {
		case cur == "":
			cur = word
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
