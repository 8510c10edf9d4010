// Package formatter renders course listings for terminals.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rhyrak/go-advisor/pkg/model"
)

var (
	ColorHeader = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorRed    = lipgloss.Color("#fb4934")
)

var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
)

// MaxNameWidth bounds the NAME column; longer names are cut with an ellipsis.
const MaxNameWidth = 40

// Formatter renders listings with or without colour.
type Formatter struct {
	Plain bool
}

func (f Formatter) render(style lipgloss.Style, s string) string {
	if f.Plain {
		return s
	}
	return style.Render(s)
}

// CourseTable renders courses with their units, name, sessions and
// prerequisites, in the given order.
func (f Formatter) CourseTable(courses []*model.Course) string {
	headers := []string{"ID", "UNITS", "NAME", "SESSIONS", "PREREQUISITES"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			strconv.Itoa(int(c.ID)),
			strconv.Itoa(c.Units),
			runewidth.Truncate(c.Name, MaxNameWidth, "…"),
			joinSessions(c.Sessions),
			joinIDs(c.Prerequisites),
		})
	}
	return f.table(headers, rows)
}

// TermHeader renders the heading line of a simulated term.
func (f Formatter) TermHeader(term model.Term, units int) string {
	return f.render(StyleHeader, fmt.Sprintf("TERM %d", term.Number)) +
		f.render(StyleDim, fmt.Sprintf("  gpa %.2f  units %d", term.GPA, units))
}

// Report colours the [  OK] and [FAIL] markers of a validation report.
func (f Formatter) Report(report string) string {
	if f.Plain {
		return report
	}
	report = strings.ReplaceAll(report, "[  OK]", StyleGreen.Render("[  OK]"))
	return strings.ReplaceAll(report, "[FAIL]", StyleRed.Render("[FAIL]"))
}

func (f Formatter) table(headers []string, rows [][]string) string {
	const colGap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(f.render(StyleHeader, h))
		if i < len(headers)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")
	for i, w := range widths {
		b.WriteString(f.render(StyleDim, strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func joinSessions(sessions []model.Session) string {
	parts := make([]string, 0, len(sessions))
	for _, s := range sessions {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

func joinIDs(ids []model.CourseID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(int(id)))
	}
	return strings.Join(parts, " ")
}
