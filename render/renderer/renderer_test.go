package renderer

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/render"
	"github.com/lixenwraith/space-engineer/system"
	"github.com/lixenwraith/space-engineer/vmath"
)

type fixture struct {
	screen tcell.SimulationScreen
	orch   *render.RenderOrchestrator
	enc    *system.Encounter
	clock  *engine.MockTimeProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	prog, err := level.Default()
	if err != nil {
		t.Fatalf("default levels: %v", err)
	}
	clock := engine.NewMockTimeProvider(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	enc := system.NewEncounter(system.Options{
		Level: prog.First(),
		Clock: clock,
		Rand:  rand.New(rand.NewSource(1)),
	})
	enc.Scheduler().CancelAll()

	orch := render.NewRenderOrchestrator(screen)
	RegisterAll(orch)
	return &fixture{screen: screen, orch: orch, enc: enc, clock: clock}
}

func (f *fixture) frame(overlay *render.Overlay) {
	f.orch.RenderFrame(render.RenderContext{
		Now:       f.clock.Now(),
		Encounter: f.enc,
		Overlay:   overlay,
	})
}

func (f *fixture) row(y int) string {
	w, _ := f.screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := f.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func (f *fixture) contains(s string) bool {
	_, h := f.screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(f.row(y), s) {
			return true
		}
	}
	return false
}

func TestHudShowsTitleScoreAndProgress(t *testing.T) {
	f := newFixture(t)
	f.enc.Session().AddScore(120)
	f.frame(nil)

	top := f.row(0)
	if !strings.Contains(top, "Nível 1") {
		t.Errorf("Expected level title in top row, got %q", top)
	}
	if !strings.Contains(top, "Pontos: 120") {
		t.Errorf("Expected score in top row, got %q", top)
	}
	if strings.Count(top, "♥") != 3 {
		t.Errorf("Expected three lives, got %q", top)
	}
	if !f.contains("Resposta [") || !f.contains("0%") {
		t.Error("Expected response progress bar")
	}
	if !f.contains("______") {
		t.Error("Expected blank markers in response text")
	}
}

func TestWordRendererMarksConsumedLetters(t *testing.T) {
	f := newFixture(t)
	bounds := f.enc.Bounds()
	pos := vmath.Vec2{X: bounds.W / 2, Y: bounds.H / 2}
	f.enc.World().SpawnEnemy("nand", pos, pos, 0)

	f.enc.HandleKey('n')
	f.frame(nil)

	if !f.contains("nand") {
		t.Fatal("Expected enemy word on screen")
	}

	ctx := render.RenderContext{ScreenWidth: 80, ScreenHeight: 40, Encounter: f.enc}
	x, y, ok := ctx.FieldToScreen(pos)
	if !ok {
		t.Fatal("Expected enemy position to be visible")
	}
	_, _, first, _ := f.screen.GetContent(x-2, y)
	fg, _, _ := first.Decompose()
	if fg != render.RGBToTcell(render.RgbTypedLetter) {
		t.Errorf("Expected consumed letter dimmed, got %v", fg)
	}
	_, _, second, _ := f.screen.GetContent(x-1, y)
	fg, _, attrs := second.Decompose()
	if fg != render.RGBToTcell(render.RgbEnemyTargeted) {
		t.Errorf("Expected targeted color on remaining letters, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected engaged word to be bold")
	}
}

func TestPowerupDrawnBracketed(t *testing.T) {
	f := newFixture(t)
	pos := vmath.Vec2{X: 200, Y: 300}
	f.enc.World().SpawnPowerup("entrada", pos, pos, 0)
	f.frame(nil)

	if !f.contains("[entrada]") {
		t.Error("Expected bracketed powerup word")
	}
}

func TestMissFlashTintsField(t *testing.T) {
	f := newFixture(t)
	f.enc.HandleKey('q')
	f.frame(nil)

	_, _, style, _ := f.screen.GetContent(5, 10)
	_, bg, _ := style.Decompose()
	want := render.RGBToTcell(render.Max(render.RgbBackground, render.RgbMissFlashBg))
	if bg != want {
		t.Errorf("Expected miss flash background %v, got %v", want, bg)
	}

	f.clock.Advance(time.Second)
	f.frame(nil)
	_, _, style, _ = f.screen.GetContent(5, 10)
	_, bg, _ = style.Decompose()
	if bg == want {
		t.Error("Expected miss flash to expire")
	}
}

func TestOverlayRendersOptions(t *testing.T) {
	f := newFixture(t)
	f.frame(&render.Overlay{
		Title:    "SPACE ENGINEER",
		Lines:    []string{"Digite as palavras"},
		Options:  []string{"Jogar", "Ranking"},
		Selected: 1,
		Footer:   "ESC para sair",
	})

	for _, s := range []string{"SPACE ENGINEER", "Digite as palavras", "Jogar", "> Ranking <", "ESC para sair"} {
		if !f.contains(s) {
			t.Errorf("Expected overlay to contain %q", s)
		}
	}
}

func TestRenderWithoutEncounter(t *testing.T) {
	f := newFixture(t)
	f.orch.RenderFrame(render.RenderContext{Overlay: &render.Overlay{Title: "Créditos"}})
	if !f.contains("Créditos") {
		t.Error("Expected overlay without encounter")
	}
	if f.contains("Pontos:") {
		t.Error("Expected no HUD without encounter")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("o sistema deve permitir cadastro", 12)
	want := []string{"o sistema", "deve", "permitir", "cadastro"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	long := wrap("abcdefghij", 4)
	if len(long) != 3 || long[0] != "abcd" || long[2] != "ij" {
		t.Errorf("Expected hard split, got %v", long)
	}
	if truncate("requisitos", 5) != "requ…" {
		t.Errorf("Unexpected truncate: %q", truncate("requisitos", 5))
	}
}
