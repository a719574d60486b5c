package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todolist/internal/model"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a bordered box using the theme.
func (t Theme) Panel(lines []string) string {
	return t.Frame(strings.Join(lines, "\n"))
}

// Frame draws the theme border around an already rendered block.
func (t Theme) Frame(inner string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Header renders "<title>  ✔ d  • p  Total n".
func (t Theme) Header(title string, done, pending int) string {
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
}

// maxItemWidth is the widest item text, in terminal cells.
const maxItemWidth = 80

// ItemLine renders one item as "☐ text" (or "☑ text" when done).
func (t Theme) ItemLine(it model.Item) string {
	text := ansi.Truncate(it.Text, maxItemWidth, "...")
	if it.Done {
		return t.Success.Render(t.BoxChecked) + " " + t.DoneText.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}

// GroupLines renders both views under their titles, "(none)" for an empty view.
func (t Theme) GroupLines(pendingTitle string, pending []model.Item, doneTitle string, done []model.Item) []string {
	var lines []string
	section := func(title string, items []model.Item) {
		lines = append(lines, t.Accent.Render(title))
		if len(items) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			return
		}
		for _, it := range items {
			lines = append(lines, fmt.Sprintf("%s %s",
				t.Muted.Render(fmt.Sprintf("%2d.", it.ID)), t.ItemLine(it)))
		}
	}
	section(pendingTitle, pending)
	lines = append(lines, "")
	section(doneTitle, done)
	return lines
}
