package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.opts.Theme

	d, p := m.store.Stats()
	header := t.Header("Todos", d, p) + "  " +
		t.Muted.Render(ui.ProgressBar(d, d+p, m.opts.ProgressWidth))

	title := "New item"
	if m.inputErr != "" {
		title += ": " + t.Error.Render(m.inputErr)
	}
	entry := t.Frame(title + "\n" + m.input.View())

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(pendingList),
		"  ",
		m.pane(doneList),
	)

	helpView := m.help.View(helpKeys{keys: m.keys, focus: m.focus})

	return t.Frame(lipgloss.JoinVertical(lipgloss.Left, header, "", entry, lists, helpView))
}

// pane frames a list, using the accent border color when it has focus.
func (m Model) pane(i int) string {
	t := m.opts.Theme
	style := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	if m.focus != focusInput && m.listIndex() == i {
		style = style.BorderForeground(t.Accent.GetForeground())
	}
	return style.Render(m.lists[i].View())
}
