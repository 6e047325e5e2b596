package scene

import (
	"fmt"

	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/ranking"
)

// View is the screen box a host draws over the field
type View struct {
	Title    string
	Lines    []string
	Options  []string // Menu entries, empty for plain screens
	Selected int
	Footer   string
	Alert    bool // Confirmation prompts
}

// MenuOptions are the main menu entries
var MenuOptions = [menuCount]string{"Novo Jogo", "Ranking", "Créditos", "Sair"}

// Credits lists the team, in display order
var Credits = []string{
	"EQUIPE DE DESENVOLVIMENTO",
	"",
	"Aristóteles - Programador",
	"Eduardo Melo - Redator",
	"Francisco Gabriel - Tester",
	"Paulo Matheus - Level Designer",
	"Victor Timbó - Tech Lead",
	"",
	"EXCELENTÍSSIMO PROFESSOR ISMAYLE",
	"",
	"© 2024 Space Engineer Team",
}

// View returns the box for the current screen, nil while playing
func (f *Flow) View() *View {
	switch f.mode {
	case core.ModeMenu:
		return &View{
			Title:    "SPACE ENGINEER",
			Lines:    []string{"INTERESTELAR"},
			Options:  MenuOptions[:],
			Selected: f.menuIndex,
			Footer:   "↑↓ Navegar | ENTER Selecionar",
		}

	case core.ModeIntro:
		lines := []string{f.current.Title}
		if f.current.Intro != "" {
			lines = append(lines, "", f.current.Intro)
		}
		if f.current.Question != "" {
			lines = append(lines, "", f.current.Question)
		}
		lines = append(lines, "", fmt.Sprintf("Pontuação: %d", f.score()))
		return &View{
			Title:  f.levelLabel(),
			Lines:  lines,
			Footer: "Pressione ESPAÇO para iniciar | ESC: Menu",
		}

	case core.ModeLevelComplete:
		var lines []string
		if f.encounter != nil && f.encounter.Assembler() != nil {
			lines = append(lines, f.encounter.Assembler().CurrentText(), "")
		}
		lines = append(lines, fmt.Sprintf("SCORE FINAL: %d", f.score()))
		footer := "PRESSIONE ESPAÇO PARA CONTINUAR"
		if f.progression.IsLast(f.current.Key) {
			footer = "PRESSIONE ESPAÇO PARA FINALIZAR"
		}
		return &View{
			Title:  "NÍVEL COMPLETO!",
			Lines:  lines,
			Footer: footer,
		}

	case core.ModeGameOver:
		return &View{
			Title:  "GAME OVER",
			Lines:  []string{f.current.Title, "", fmt.Sprintf("SCORE FINAL: %d", f.score())},
			Footer: "PRESSIONE ESPAÇO PARA REINICIAR | ESC: Finalizar",
			Alert:  true,
		}

	case core.ModeNameInput:
		score := f.score()
		return &View{
			Title: "NOVO RECORDE!",
			Lines: []string{
				fmt.Sprintf("Você fez %d pontos!", score),
				fmt.Sprintf("%dº lugar no ranking!", f.ranking.Position(score)),
				"",
				"Digite seu nome:",
				"[ " + f.nameWithCursor() + " ]",
			},
			Footer: "ENTER: Confirmar | BACKSPACE: Apagar | ESC: Pular",
		}

	case core.ModeRanking:
		if f.confirmClear {
			return &View{
				Title:  "Limpar todo o ranking?",
				Lines:  []string{"Esta ação não pode ser desfeita."},
				Footer: "Pressione Y para confirmar | N para cancelar",
				Alert:  true,
			}
		}
		return &View{
			Title:  "RANKING - TOP 10 JOGADORES",
			Lines:  f.rankingLines(),
			Footer: "ESPAÇO: Menu Principal | C: Limpar | Y: Copiar",
		}

	case core.ModeCredits:
		return &View{
			Title:  "CRÉDITOS",
			Lines:  Credits,
			Footer: "ESPAÇO: Menu Principal | ESC: Voltar",
		}
	}
	return nil
}

func (f *Flow) rankingLines() []string {
	board := f.ranking.Board()
	var lines []string
	if board.Len() == 0 {
		lines = append(lines, "Nenhum recorde ainda...", "Seja o primeiro!")
	} else {
		for i, e := range board.Entries() {
			mark := " "
			if e.ID != "" && e.ID == f.lastEntry {
				mark = "*"
			}
			lines = append(lines, fmt.Sprintf("%s%2dº %-*s %6d  %s", mark, i+1, ranking.MaxNameLength, e.Name, e.Score, e.Date))
		}
		st := board.Stats()
		lines = append(lines, "", fmt.Sprintf("Jogadores: %d | Recorde: %d | Média: %d",
			st.TotalPlayers, st.HighestScore, st.AverageScore))
	}
	if f.notice != "" {
		lines = append(lines, "", f.notice)
	}
	return lines
}
