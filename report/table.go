// Package report renders projections for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/warp/goal-engine/api"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	reachedStyle = cellStyle.
			Foreground(ColorGreen)

	pendingStyle = cellStyle.
			Foreground(ColorTextMuted)

	summaryStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)
)

var headers = []string{"Month", "Value", "With extra", "Total", "Goal", "Reached"}

const reachedCol = 5

// Printer returns a number printer for a BCP 47 tag, falling back to English.
func Printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FormatAmount prints a two-decimal figure with the locale's separators.
func FormatAmount(p *message.Printer, v float64) string {
	return p.Sprintf("%.2f", v)
}

// Render draws the projection as a bordered table under an optional title,
// followed by a one-line summary.
func Render(title string, data api.SeriesDTO, p *message.Printer) string {
	rows := make([][]string, len(data))
	for i, m := range data {
		s := m.Snapshot
		rows[i] = []string{
			m.Key,
			FormatAmount(p, s.CurrentValue),
			FormatAmount(p, s.CurrentExtraValue),
			FormatAmount(p, s.CurrentValue+s.CurrentExtraValue),
			FormatAmount(p, s.AdjustedGoal),
			s.GoalAchieved,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(rows):
				return cellStyle
			case col == reachedCol && rows[row][col] == api.Achieved:
				return reachedStyle
			case col == reachedCol:
				return pendingStyle
			case col > 0:
				return cellStyle.Align(lipgloss.Right)
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(Summary(data)))
	b.WriteString("\n")
	return b.String()
}

// Summary says when the goal is first reached.
func Summary(data api.SeriesDTO) string {
	if len(data) == 0 {
		return "Nothing to project."
	}
	for i, m := range data {
		if m.Snapshot.GoalAchieved == api.Achieved {
			return fmt.Sprintf("Goal reached in %s (month %d of %d).", m.Key, i+1, len(data))
		}
	}
	return fmt.Sprintf("Goal not reached within %d months.", len(data))
}
