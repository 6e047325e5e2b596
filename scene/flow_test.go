package scene

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/ranking"
)

const testLevels = `
levels:
  - key: Warmup
    title: "Aquecimento"
    intro: "Teste"
    question: "Quanto tempo?"
    speed: 10
    enemy_limit: 1
    spawn_interval_ms: 10000
    word_list: [cat]
    completion: "elapsed_seconds >= 1.0"
  - key: Rush
    title: "Investida"
    speed: 5000
    enemy_limit: 5
    spawn_interval_ms: 100
    word_list: [zzzzzzzz]
    completion: "elapsed_seconds >= 600.0"
`

type fixture struct {
	flow  *Flow
	clock *engine.MockTimeProvider
	store *ranking.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prog, err := level.Parse([]byte(testLevels))
	if err != nil {
		t.Fatalf("parse levels: %v", err)
	}
	clock := engine.NewMockTimeProvider(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	store := ranking.NewMemoryStore()
	rk := ranking.New(context.Background(), store)
	rk.SetClock(clock.Now)
	f := NewFlow(Options{
		Progression: prog,
		Ranking:     rk,
		Clock:       clock,
		Rand:        rand.New(rand.NewSource(1)),
	})
	return &fixture{flow: f, clock: clock, store: store}
}

// tickFor advances the clock in 50ms frames
func (fx *fixture) tickFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += 50 * time.Millisecond {
		fx.clock.Advance(50 * time.Millisecond)
		fx.flow.Tick()
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow

	f.Do(ActionUp)
	if f.MenuIndex() != MenuQuit {
		t.Errorf("up from first: index %d, want %d", f.MenuIndex(), MenuQuit)
	}
	f.Do(ActionDown)
	if f.MenuIndex() != MenuPlay {
		t.Errorf("down from last: index %d, want %d", f.MenuIndex(), MenuPlay)
	}

	v := f.View()
	if v == nil || v.Title != "SPACE ENGINEER" || len(v.Options) != 4 {
		t.Fatalf("unexpected menu view %+v", v)
	}
}

func TestMenuShortcuts(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow

	f.Do(ActionCredits)
	if f.Mode() != core.ModeCredits {
		t.Fatalf("mode %s, want credits", f.Mode())
	}
	f.Do(ActionEscape)
	f.Do(ActionRanking)
	if f.Mode() != core.ModeRanking {
		t.Fatalf("mode %s, want ranking", f.Mode())
	}
	f.Do(ActionConfirm)
	if f.Mode() != core.ModeMenu {
		t.Fatalf("mode %s, want menu", f.Mode())
	}
	if f.MenuIndex() != MenuPlay {
		t.Errorf("menu cursor %d after returning, want %d", f.MenuIndex(), MenuPlay)
	}

	f.Do(ActionDown)
	f.Do(ActionDown)
	f.Do(ActionDown)
	f.Do(ActionConfirm)
	if !f.Quit() {
		t.Error("selecting Sair should quit")
	}
}

func TestRunCompletesLevelsAndRecordsScore(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow

	f.Do(ActionPlay)
	if f.Mode() != core.ModeIntro || f.Level().Key != "Warmup" {
		t.Fatalf("mode %s level %v, want intro of Warmup", f.Mode(), f.Level())
	}
	if v := f.View(); v.Title != "Nível 1/2" {
		t.Errorf("intro title %q", v.Title)
	}

	f.Do(ActionConfirm)
	if f.Mode() != core.ModePlaying || f.Encounter() == nil {
		t.Fatalf("mode %s, want playing with an encounter", f.Mode())
	}
	if f.View() != nil {
		t.Error("no box should be drawn while playing")
	}

	fx.tickFor(1100 * time.Millisecond)
	if f.Mode() != core.ModeLevelComplete {
		t.Fatalf("mode %s, want level complete", f.Mode())
	}
	score := f.Session().Score()
	if score <= 0 {
		t.Fatalf("score %d after completion, want the level bonus", score)
	}

	f.Do(ActionConfirm)
	if f.Mode() != core.ModeIntro || f.Level().Key != "Rush" {
		t.Fatalf("mode %s level %s, want intro of Rush", f.Mode(), f.Level().Key)
	}
	if !strings.Contains(strings.Join(f.View().Lines, "\n"), "Pontuação: ") {
		t.Error("intro should show the carried score")
	}

	// Enemies at 5000 px/s reach the player within a few frames
	f.Do(ActionConfirm)
	fx.tickFor(5 * time.Second)
	if f.Mode() != core.ModeGameOver {
		t.Fatalf("mode %s, want game over", f.Mode())
	}
	if f.Session().Score() != score {
		t.Errorf("score changed to %d on the lost level, want %d", f.Session().Score(), score)
	}

	f.Do(ActionEscape)
	if f.Mode() != core.ModeNameInput {
		t.Fatalf("mode %s, want name input for a qualifying score", f.Mode())
	}
	for _, r := range "Ana Júlia" {
		f.TypeChar(r)
	}
	f.Do(ActionBackspace)
	f.Do(ActionConfirm)
	if f.Mode() != core.ModeRanking {
		t.Fatalf("mode %s, want ranking", f.Mode())
	}

	entries, _ := fx.store.Load(context.Background())
	if len(entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Name != "Ana Júli" || got.Score != score || got.Level != "Rush" || got.Date != "01/05/2024" {
		t.Errorf("stored entry %+v", got)
	}
	if !strings.HasPrefix(f.View().Lines[0], "*") {
		t.Errorf("new entry should be marked, got %q", f.View().Lines[0])
	}
}

func TestGameOverRestartsLevel(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow
	f.StartRun()
	f.session.AddScore(70)
	rush, _ := f.Progression().Next("Warmup")
	f.current = rush

	f.Do(ActionConfirm)
	enc := f.Encounter()
	fx.tickFor(5 * time.Second)
	if f.Mode() != core.ModeGameOver {
		t.Fatalf("mode %s, want game over", f.Mode())
	}
	if !strings.Contains(f.View().Footer, "REINICIAR") {
		t.Errorf("game over footer %q should offer a restart", f.View().Footer)
	}

	f.Do(ActionConfirm)
	if f.Mode() != core.ModePlaying || f.Encounter() != enc {
		t.Fatalf("mode %s, want the same level playing again", f.Mode())
	}
	if f.Level().Key != "Rush" {
		t.Errorf("restarted level %s, want Rush", f.Level().Key)
	}
	if lives := enc.Player().Lives; lives != enc.Player().MaxLives {
		t.Errorf("lives %d after restart, want %d", lives, enc.Player().MaxLives)
	}
	if n := len(enc.World().Enemies); n != 0 {
		t.Errorf("%d enemies survived the restart", n)
	}
	// Only the fresh level's first spawn and spawn cadence remain
	if n := enc.Scheduler().Pending(); n != 2 {
		t.Errorf("%d timers pending after restart, want 2", n)
	}
	if f.Session().Score() != 70 {
		t.Errorf("score %d after restart, the run score must be kept", f.Session().Score())
	}

	fx.tickFor(5 * time.Second)
	if f.Mode() != core.ModeGameOver {
		t.Fatalf("mode %s, want the restarted level to be lost again", f.Mode())
	}
	f.Do(ActionEscape)
	if f.Mode() != core.ModeNameInput {
		t.Errorf("mode %s, escape should end the run", f.Mode())
	}
}

func TestNameInputDefaultsAndLimits(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow
	f.StartRun()
	f.session.AddScore(120)
	f.finishRun()
	if f.Mode() != core.ModeNameInput {
		t.Fatalf("mode %s, want name input", f.Mode())
	}

	for i := 0; i < 30; i++ {
		f.TypeChar('x')
	}
	if n := len([]rune(f.Name())); n != ranking.MaxNameLength {
		t.Errorf("name length %d, want %d", n, ranking.MaxNameLength)
	}
	f.TypeChar('\t')

	// Escape skips with the default name
	f.Do(ActionEscape)
	entries := f.Ranking().Board().Entries()
	if len(entries) != 1 || entries[0].Name != DefaultPlayerName {
		t.Fatalf("entries %+v, want one %q", entries, DefaultPlayerName)
	}
}

func TestZeroScoreSkipsNameInput(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow
	f.StartRun()
	f.finishRun()
	if f.Mode() != core.ModeRanking {
		t.Fatalf("mode %s, want ranking", f.Mode())
	}
	if v := f.View(); v.Lines[0] != "Nenhum recorde ainda..." {
		t.Errorf("empty board line %q", v.Lines[0])
	}
}

func TestRankingClearNeedsConfirmation(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow
	_, _ = f.Ranking().Add(context.Background(), "Bia", 300, "Warmup")

	f.Do(ActionRanking)
	f.Do(ActionClear)
	if !f.ConfirmPending() || !f.View().Alert {
		t.Fatal("clear should ask for confirmation")
	}
	f.Do(ActionNo)
	if f.ConfirmPending() || f.Ranking().Board().Len() != 1 {
		t.Fatal("declining should keep the board")
	}

	f.Do(ActionClear)
	f.Do(ActionYes)
	if f.Ranking().Board().Len() != 0 {
		t.Error("board not cleared")
	}
	entries, _ := fx.store.Load(context.Background())
	if len(entries) != 0 {
		t.Errorf("store still holds %d entries", len(entries))
	}
	if f.Mode() != core.ModeRanking {
		t.Errorf("mode %s, want ranking", f.Mode())
	}
}

func TestRankingCopy(t *testing.T) {
	fx := newFixture(t)
	var copied string
	fx.flow.clipboard = func(s string) error {
		copied = s
		return nil
	}
	_, _ = fx.flow.Ranking().Add(context.Background(), "Caio", 90, "Warmup")

	fx.flow.Do(ActionRanking)
	fx.flow.Do(ActionCopy)
	if !strings.HasPrefix(copied, "RANKING - Space Engineer") || !strings.Contains(copied, "Caio") {
		t.Errorf("copied %q", copied)
	}
	if lines := fx.flow.View().Lines; lines[len(lines)-1] != "Ranking copiado" {
		t.Errorf("notice %q", lines[len(lines)-1])
	}

	fx.flow.clipboard = func(string) error { return errors.New("no display") }
	fx.flow.Do(ActionCopy)
	if lines := fx.flow.View().Lines; lines[len(lines)-1] != "Área de transferência indisponível" {
		t.Errorf("notice %q", lines[len(lines)-1])
	}
}

func TestEscapeAbandonsRun(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow
	f.Do(ActionPlay)
	f.Do(ActionConfirm)
	fx.tickFor(200 * time.Millisecond)

	enc := f.Encounter()
	f.Do(ActionEscape)
	if f.Mode() != core.ModeMenu || f.Encounter() != nil {
		t.Fatalf("mode %s, want menu without encounter", f.Mode())
	}
	if n := enc.Scheduler().Pending(); n != 0 {
		t.Errorf("%d timers left after abandoning", n)
	}
}

func TestLettersOnlyReachLiveEncounter(t *testing.T) {
	fx := newFixture(t)
	f := fx.flow

	// No encounter yet, must not panic
	f.Letter('c')

	f.Do(ActionPlay)
	f.Do(ActionConfirm)
	fx.tickFor(600 * time.Millisecond)
	if f.Encounter().World().ActiveEnemies() != 1 {
		t.Fatalf("%d enemies, want 1", f.Encounter().World().ActiveEnemies())
	}
	f.Letter('c')
	if f.Encounter().Resolver().Target() == nil {
		t.Error("letter should engage the enemy")
	}
}
