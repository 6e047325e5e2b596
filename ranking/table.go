package ranking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	podiumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// column widths: position, name, score, level, date
var columnWidths = [5]int{4, MaxNameLength + 1, 8, 10, 10}

func cells(values [5]string, style lipgloss.Style) string {
	parts := make([]string, len(values))
	for i, v := range values {
		s := style.Width(columnWidths[i])
		if i == 2 {
			s = s.Align(lipgloss.Right)
		}
		parts[i] = s.Render(v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderTable formats the board for terminal output
func RenderTable(b *Board) string {
	lines := []string{titleStyle.Render("RANKING")}
	if b.Len() == 0 {
		lines = append(lines, dimStyle.Render("Nenhuma pontuação registrada"))
		return tableBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	lines = append(lines, cells([5]string{"#", "Nome", "Pontos", "Nível", "Data"}, headerStyle))
	for i, e := range b.Entries() {
		style := rowStyle
		if i < 3 {
			style = podiumStyle
		}
		lines = append(lines, cells([5]string{
			strconv.Itoa(i + 1),
			e.Name,
			strconv.Itoa(e.Score),
			e.Level,
			e.Date,
		}, style))
	}

	st := b.Stats()
	lines = append(lines, "", dimStyle.Render(fmt.Sprintf("Jogadores: %d  Recorde: %d  Média: %d",
		st.TotalPlayers, st.HighestScore, st.AverageScore)))
	return tableBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// FormatPlain is the unstyled board used for clipboard export
func FormatPlain(b *Board) string {
	var sb strings.Builder
	sb.WriteString("RANKING - Space Engineer\n")
	for i, e := range b.Entries() {
		fmt.Fprintf(&sb, "%2d. %-15s %6d  %s  %s\n", i+1, e.Name, e.Score, e.Level, e.Date)
	}
	return sb.String()
}
