package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetBlendModes(t *testing.T) {
	buf := NewRenderBuffer(4, 2)

	buf.SetWithBg(0, 0, 'a', RgbHudText, RGB{100, 0, 0})
	buf.Set(0, 0, 0, RGB{}, RGB{0, 100, 0}, BlendMaxBg, 1, 0)
	got := buf.Get(0, 0)
	if got.Bg != (RGB{100, 100, 0}) {
		t.Errorf("Expected max-blended background, got %+v", got.Bg)
	}
	if got.Rune != 'a' {
		t.Errorf("Expected rune preserved when mainRune is 0, got %q", got.Rune)
	}

	buf.Set(1, 0, 'b', RGB{200, 200, 200}, RGB{200, 0, 0}, BlendAlpha, 0.5, 0)
	got = buf.Get(1, 0)
	if got.Rune != 'b' {
		t.Errorf("Expected rune 'b', got %q", got.Rune)
	}
	if got.Bg.R <= RgbBackground.R || got.Bg.R >= 200 {
		t.Errorf("Expected half-blended red background, got %+v", got.Bg)
	}
}

func TestBufferOutOfBoundsIgnored(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.SetWithBg(-1, 0, 'x', RgbHudText, RgbHudBg)
	buf.SetFgOnly(2, 1, 'x', RgbHudText, 0)
	buf.SetBgOnly(0, 5, RgbHudBg)
	if got := buf.Get(5, 5); got != (Cell{}) {
		t.Errorf("Expected zero cell out of bounds, got %+v", got)
	}
}

func TestBufferTextClipsAndReturnsColumn(t *testing.T) {
	buf := NewRenderBuffer(5, 1)
	end := buf.Text(2, 0, "ação", RgbHudText, 0)
	if end != 6 {
		t.Errorf("Expected end column 6, got %d", end)
	}
	if buf.Get(3, 0).Rune != 'ç' {
		t.Errorf("Expected multibyte rune at column 3, got %q", buf.Get(3, 0).Rune)
	}
}

func TestBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	buf.SetWithBg(1, 1, 'z', RgbHudText, RgbHudBg)
	buf.Resize(4, 2)
	w, h := buf.Bounds()
	if w != 4 || h != 2 {
		t.Fatalf("Expected 4x2, got %dx%d", w, h)
	}
	if buf.Get(1, 1).Rune != ' ' {
		t.Errorf("Expected cleared cell after resize, got %q", buf.Get(1, 1).Rune)
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	buf := NewRenderBuffer(10, 2)
	buf.Text(0, 1, "hi", RgbHudAccent, tcell.AttrBold)
	buf.FlushToScreen(screen)

	r, _, style, _ := screen.GetContent(1, 1)
	if r != 'i' {
		t.Errorf("Expected 'i' on screen, got %q", r)
	}
	fg, bg, attrs := style.Decompose()
	if fg != RGBToTcell(RgbHudAccent) {
		t.Errorf("Expected accent foreground, got %v", fg)
	}
	if bg != RGBToTcell(RgbBackground) {
		t.Errorf("Expected default background on untouched cell, got %v", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
}

type recorder struct {
	name  string
	order *[]string
}

func (r recorder) Render(RenderContext, *RenderBuffer) {
	*r.order = append(*r.order, r.name)
}

type hidden struct{ recorder }

func (hidden) IsVisible() bool { return false }

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	var order []string
	o := NewRenderOrchestrator(screen)
	o.Register(recorder{"ui", &order}, PriorityUI)
	o.Register(recorder{"bg", &order}, PriorityBackground)
	o.Register(recorder{"ui2", &order}, PriorityUI)
	o.Register(hidden{recorder{"hidden", &order}}, PriorityEntities)
	o.RenderFrame(RenderContext{})

	want := []string{"bg", "ui", "ui2"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}
