// Package scene walks the screen graph of a run: menu, level intro, play, end screens, name input,
// ranking and credits. It has no terminal or window dependency so both hosts drive the same flow.
package scene

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/ranking"
	"github.com/lixenwraith/space-engineer/system"
)

// DefaultPlayerName is submitted when the name field is left blank
const DefaultPlayerName = constant.NameInputDefault

// Action is a host-independent user command
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionEscape
	ActionPlay
	ActionRanking
	ActionCredits
	ActionQuit
	ActionBackspace
	ActionClear
	ActionCopy
	ActionYes
	ActionNo
)

// Menu entries in display order
const (
	MenuPlay = iota
	MenuRanking
	MenuCredits
	MenuQuit
	menuCount
)

// Options configures a flow
type Options struct {
	Context     context.Context // Used for ranking persistence, Background when nil
	Progression *level.Progression
	Ranking     *ranking.Ranking
	Clock       engine.TimeProvider
	Sound       system.SoundPlayer    // Optional
	Rand        *rand.Rand            // Optional
	Clipboard   func(text string) error // Optional, the copy action reports unavailability when nil
	Width       float64
	Height      float64
}

// Flow is the game's screen state machine
// All methods must be called from the host's loop goroutine
type Flow struct {
	ctx         context.Context
	progression *level.Progression
	ranking     *ranking.Ranking
	clock       engine.TimeProvider
	sound       system.SoundPlayer
	rng         *rand.Rand
	clipboard   func(string) error
	width       float64
	height      float64

	mode      core.GameMode
	menuIndex int
	current   *level.Config
	encounter *system.Encounter
	session   *engine.Session

	nameBuf      []rune
	confirmClear bool
	notice       string // One-shot message on the ranking screen
	lastEntry    string // Id of the entry just submitted, highlighted on the board
	quit         bool
}

// NewFlow starts at the main menu
func NewFlow(opts Options) *Flow {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	rk := opts.Ranking
	if rk == nil {
		rk = ranking.New(ctx, ranking.NewMemoryStore())
	}
	return &Flow{
		ctx:         ctx,
		progression: opts.Progression,
		ranking:     rk,
		clock:       clock,
		sound:       opts.Sound,
		rng:         opts.Rand,
		clipboard:   opts.Clipboard,
		width:       opts.Width,
		height:      opts.Height,
		mode:        core.ModeMenu,
	}
}

func (f *Flow) Mode() core.GameMode            { return f.mode }
func (f *Flow) Encounter() *system.Encounter   { return f.encounter }
func (f *Flow) Session() *engine.Session       { return f.session }
func (f *Flow) Level() *level.Config           { return f.current }
func (f *Flow) Ranking() *ranking.Ranking      { return f.ranking }
func (f *Flow) MenuIndex() int                 { return f.menuIndex }
func (f *Flow) Name() string                   { return string(f.nameBuf) }
func (f *Flow) ConfirmPending() bool           { return f.confirmClear }
func (f *Flow) Quit() bool                     { return f.quit }
func (f *Flow) Progression() *level.Progression { return f.progression }

// Playing reports whether the field is live and letters go to the encounter
func (f *Flow) Playing() bool {
	return f.mode == core.ModePlaying
}

func (f *Flow) setMode(m core.GameMode) {
	if f.mode != m {
		log.Printf("[scene] %s -> %s", f.mode, m)
	}
	f.mode = m
}

// Do applies one command to the current screen
func (f *Flow) Do(a Action) {
	if a == ActionQuit {
		f.quit = true
		return
	}
	switch f.mode {
	case core.ModeMenu:
		f.menuAction(a)
	case core.ModeIntro:
		switch a {
		case ActionConfirm:
			f.startEncounter()
		case ActionEscape:
			f.toMenu()
		}
	case core.ModePlaying:
		if a == ActionEscape {
			f.abandon()
		}
	case core.ModeLevelComplete:
		if a == ActionConfirm || a == ActionEscape {
			f.advance()
		}
	case core.ModeGameOver:
		switch a {
		case ActionConfirm:
			f.restartLevel()
		case ActionEscape:
			f.finishRun()
		}
	case core.ModeNameInput:
		f.nameAction(a)
	case core.ModeRanking:
		f.rankingAction(a)
	case core.ModeCredits:
		if a == ActionConfirm || a == ActionEscape {
			f.toMenu()
		}
	}
}

func (f *Flow) menuAction(a Action) {
	switch a {
	case ActionUp:
		f.menuIndex = (f.menuIndex + menuCount - 1) % menuCount
	case ActionDown:
		f.menuIndex = (f.menuIndex + 1) % menuCount
	case ActionConfirm:
		f.selectMenu(f.menuIndex)
	case ActionPlay:
		f.selectMenu(MenuPlay)
	case ActionRanking:
		f.selectMenu(MenuRanking)
	case ActionCredits:
		f.selectMenu(MenuCredits)
	case ActionEscape:
		f.quit = true
	}
}

func (f *Flow) selectMenu(i int) {
	f.menuIndex = i
	switch i {
	case MenuPlay:
		f.StartRun()
	case MenuRanking:
		f.openRanking()
	case MenuCredits:
		f.setMode(core.ModeCredits)
	case MenuQuit:
		f.quit = true
	}
}

// StartRun begins a new run at the first level with a fresh session
func (f *Flow) StartRun() {
	f.session = engine.NewSession(f.clock.Now())
	f.encounter = nil
	f.current = f.progression.First()
	f.setMode(core.ModeIntro)
	log.Printf("[scene] run %s started", f.session.ID)
}

func (f *Flow) startEncounter() {
	f.encounter = system.NewEncounter(system.Options{
		Level:   f.current,
		Session: f.session,
		Clock:   f.clock,
		Sound:   f.sound,
		Rand:    f.rng,
		Width:   f.width,
		Height:  f.height,
	})
	f.setMode(core.ModePlaying)
}

// abandon leaves a level mid-play, the run is discarded
func (f *Flow) abandon() {
	if f.encounter != nil {
		f.encounter.Scheduler().CancelAll()
	}
	log.Printf("[scene] run abandoned on %s", f.current.Key)
	f.toMenu()
}

// restartLevel replays the failed level from scratch, the run's score is kept
func (f *Flow) restartLevel() {
	if f.encounter == nil {
		f.finishRun()
		return
	}
	f.encounter.Restart()
	f.setMode(core.ModePlaying)
}

func (f *Flow) toMenu() {
	f.encounter = nil
	f.menuIndex = MenuPlay
	f.confirmClear = false
	f.notice = ""
	f.setMode(core.ModeMenu)
}

// advance moves past a completed level: the next intro, or the end of the run after the last one
func (f *Flow) advance() {
	next, ok := f.progression.Next(f.current.Key)
	if !ok {
		f.finishRun()
		return
	}
	f.current = next
	f.encounter = nil
	f.setMode(core.ModeIntro)
}

// finishRun sends qualifying scores to the name input, others straight to the board
func (f *Flow) finishRun() {
	f.encounter = nil
	score := f.score()
	if score > 0 && f.ranking.IsHighScore(score) {
		f.nameBuf = f.nameBuf[:0]
		f.setMode(core.ModeNameInput)
		return
	}
	f.openRanking()
}

func (f *Flow) openRanking() {
	f.confirmClear = false
	f.setMode(core.ModeRanking)
}

func (f *Flow) score() int {
	if f.session == nil {
		return 0
	}
	return f.session.Score()
}

// Letter routes a keystroke to the live encounter
func (f *Flow) Letter(r rune) {
	if f.mode != core.ModePlaying || f.encounter == nil {
		return
	}
	f.encounter.HandleKey(r)
	f.syncStatus()
}

// TypeChar appends to the name field, printable runes only, capped at the ranking name length
func (f *Flow) TypeChar(r rune) {
	if f.mode != core.ModeNameInput || !unicode.IsPrint(r) {
		return
	}
	if len(f.nameBuf) >= ranking.MaxNameLength {
		return
	}
	f.nameBuf = append(f.nameBuf, r)
}

func (f *Flow) nameAction(a Action) {
	switch a {
	case ActionBackspace:
		if n := len(f.nameBuf); n > 0 {
			f.nameBuf = f.nameBuf[:n-1]
		}
	case ActionConfirm:
		f.submitName(strings.TrimSpace(string(f.nameBuf)))
	case ActionEscape:
		f.submitName("")
	}
}

func (f *Flow) submitName(name string) {
	if name == "" {
		name = DefaultPlayerName
	}
	levelKey := ""
	if f.current != nil {
		levelKey = f.current.Key
	}
	entry, err := f.ranking.Add(f.ctx, name, f.score(), levelKey)
	f.lastEntry = entry.ID
	f.notice = ""
	if err != nil {
		f.notice = "Falha ao salvar o ranking"
	}
	f.openRanking()
}

func (f *Flow) rankingAction(a Action) {
	if f.confirmClear {
		switch a {
		case ActionYes:
			f.confirmClear = false
			f.notice = "Ranking limpo"
			if err := f.ranking.Clear(f.ctx); err != nil {
				f.notice = "Falha ao limpar o ranking"
			}
		case ActionNo, ActionEscape:
			f.confirmClear = false
		}
		return
	}
	switch a {
	case ActionClear:
		f.confirmClear = true
		f.notice = ""
	case ActionCopy:
		f.copyBoard()
	case ActionConfirm, ActionEscape:
		f.toMenu()
	}
}

func (f *Flow) copyBoard() {
	if f.clipboard == nil {
		f.notice = "Área de transferência indisponível"
		return
	}
	if err := f.clipboard(ranking.FormatPlain(f.ranking.Board())); err != nil {
		log.Printf("[scene] clipboard: %v", err)
		f.notice = "Área de transferência indisponível"
		return
	}
	f.notice = "Ranking copiado"
}

// Tick advances the encounter and follows its terminal status
func (f *Flow) Tick() {
	if f.encounter == nil {
		return
	}
	f.encounter.Update()
	f.syncStatus()
}

func (f *Flow) syncStatus() {
	if f.mode != core.ModePlaying {
		return
	}
	switch f.encounter.Status() {
	case system.StatusComplete:
		f.setMode(core.ModeLevelComplete)
	case system.StatusGameOver:
		f.setMode(core.ModeGameOver)
	}
}

// levelLabel is "Nível n/total" for the current level
func (f *Flow) levelLabel() string {
	return fmt.Sprintf("Nível %d/%d", f.progression.Number(f.current.Key), f.progression.Total())
}

// nameWithCursor renders the name field padded to its maximum width
func (f *Flow) nameWithCursor() string {
	s := string(f.nameBuf)
	if utf8.RuneCountInString(s) < ranking.MaxNameLength {
		s += "_"
	}
	return s
}
