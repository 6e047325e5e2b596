package webui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/scene"
)

// command is one translated user input, at most one of its fields is set
type command struct {
	action scene.Action
	letter rune // Folded a-z for the encounter
	char   rune // Name field character
}

// screenKeys apply on every screen except name input, where typed runes take over
var screenKeys = map[ebiten.Key]scene.Action{
	ebiten.KeyEscape:      scene.ActionEscape,
	ebiten.KeyEnter:       scene.ActionConfirm,
	ebiten.KeyNumpadEnter: scene.ActionConfirm,
	ebiten.KeyArrowUp:     scene.ActionUp,
	ebiten.KeyArrowDown:   scene.ActionDown,
}

// screenRunes are the single-key shortcuts per screen, matched after folding
var screenRunes = map[core.GameMode]map[rune]scene.Action{
	core.ModeMenu: {
		'1': scene.ActionPlay, 'j': scene.ActionPlay,
		'2': scene.ActionRanking, 'r': scene.ActionRanking,
		'3': scene.ActionCredits, 'c': scene.ActionCredits,
		'4': scene.ActionQuit, ' ': scene.ActionConfirm,
	},
	core.ModeIntro:         {' ': scene.ActionConfirm},
	core.ModeLevelComplete: {' ': scene.ActionConfirm},
	core.ModeGameOver:      {' ': scene.ActionConfirm},
	core.ModeCredits:       {' ': scene.ActionConfirm},
	core.ModeRanking:       {' ': scene.ActionConfirm, 'c': scene.ActionClear, 'y': scene.ActionCopy},
}

var confirmRunes = map[rune]scene.Action{
	's': scene.ActionYes, 'y': scene.ActionYes, 'n': scene.ActionNo,
}

// translate maps the frame's newly pressed keys and typed runes onto flow commands
func translate(mode core.GameMode, confirmPending bool, pressed []ebiten.Key, chars []rune) []command {
	var out []command

	switch mode {
	case core.ModePlaying:
		for _, k := range pressed {
			if k == ebiten.KeyEscape {
				out = append(out, command{action: scene.ActionEscape})
			}
		}
		for _, r := range chars {
			if f := core.FoldRune(r); f >= 'a' && f <= 'z' {
				out = append(out, command{letter: f})
			}
		}
		return out

	case core.ModeNameInput:
		for _, k := range pressed {
			switch k {
			case ebiten.KeyBackspace:
				out = append(out, command{action: scene.ActionBackspace})
			case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
				out = append(out, command{action: scene.ActionConfirm})
			case ebiten.KeyEscape:
				out = append(out, command{action: scene.ActionEscape})
			}
		}
		for _, r := range chars {
			out = append(out, command{char: r})
		}
		return out
	}

	for _, k := range pressed {
		if a, ok := screenKeys[k]; ok {
			out = append(out, command{action: a})
		}
	}
	runes := screenRunes[mode]
	if mode == core.ModeRanking && confirmPending {
		runes = confirmRunes
	}
	for _, r := range chars {
		if a, ok := runes[core.FoldRune(r)]; ok {
			out = append(out, command{action: a})
		}
	}
	return out
}

// apply runs the commands against the flow in order
func apply(f *scene.Flow, cmds []command) {
	for _, c := range cmds {
		switch {
		case c.letter != 0:
			f.Letter(c.letter)
		case c.char != 0:
			f.TypeChar(c.char)
		default:
			f.Do(c.action)
		}
	}
}
