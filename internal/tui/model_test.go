package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

func testOptions() Options {
	return Options{
		Theme:         ui.ThemeByName(ui.ThemeMono),
		PendingTitle:  "To do",
		DoneTitle:     "Done",
		Placeholder:   "What needs to be done?",
		CharLimit:     200,
		ProgressWidth: 10,
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlCKey    = tea.KeyMsg{Type: tea.KeyCtrlC}
	downKey     = tea.KeyMsg{Type: tea.KeyDown}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func addItem(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, runes(text), enterKey)
}

func titles(m Model, i int) []string {
	var out []string
	for _, it := range m.lists[i].Items() {
		out = append(out, it.(listItem).Text)
	}
	return out
}

func TestModel_StartsOnInput(t *testing.T) {
	m := New(store.New(), testOptions())
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())
	assert.Empty(t, m.lists[pendingList].Items())
	assert.Empty(t, m.lists[doneList].Items())
}

func TestModel_SubmitCreatesItemAndClearsInput(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())

	m = addItem(t, m, "buy milk")

	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, []string{"buy milk"}, titles(m, pendingList))
	assert.Empty(t, titles(m, doneList))
	require.Equal(t, 1, s.Len())
	it, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "buy milk", it.Text)
}

func TestModel_SubmitTrimsText(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())

	addItem(t, m, "  call mom  ")

	it, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "call mom", it.Text)
}

func TestModel_EmptySubmitIsRejected(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())

	m = send(t, m, enterKey)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, errEmptyText, m.inputErr)
	assert.Contains(t, m.View(), "New item: "+errEmptyText)

	m = send(t, m, runes("   "), enterKey)
	assert.Equal(t, 0, s.Len())

	// typing clears the hint
	m = send(t, m, runes("x"))
	assert.Empty(t, m.inputErr)
}

func TestModel_ToggleMovesBetweenLists(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())
	m = addItem(t, m, "A")
	m = addItem(t, m, "B")

	// focus "To do", toggle first item (A)
	m = send(t, m, tabKey)
	require.Equal(t, focusPending, m.focus)
	m = send(t, m, spaceKey)

	assert.Equal(t, []string{"B"}, titles(m, pendingList))
	assert.Equal(t, []string{"A"}, titles(m, doneList))

	// focus "Done", toggle A back
	m = send(t, m, tabKey)
	require.Equal(t, focusDone, m.focus)
	m = send(t, m, enterKey)

	assert.Equal(t, []string{"A", "B"}, titles(m, pendingList))
	assert.Empty(t, titles(m, doneList))
}

func TestModel_ToggleSelectedRow(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = addItem(t, m, "A")
	m = addItem(t, m, "B")
	m = addItem(t, m, "C")

	m = send(t, m, tabKey, downKey, runes("x"))

	assert.Equal(t, []string{"A", "C"}, titles(m, pendingList))
	assert.Equal(t, []string{"B"}, titles(m, doneList))
	got, _ := s.Get(2)
	assert.True(t, got.Done)
}

func TestModel_ToggleOnEmptyListIsNoop(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())

	m = send(t, m, tabKey, tabKey, spaceKey)
	assert.Equal(t, focusDone, m.focus)
	assert.Equal(t, 0, s.Len())
}

func TestModel_CursorStaysInRangeAfterToggle(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = addItem(t, m, "A")
	m = addItem(t, m, "B")

	// select last pending row and complete it
	m = send(t, m, tabKey, downKey, spaceKey)
	assert.Equal(t, []string{"A"}, titles(m, pendingList))
	assert.Equal(t, 0, m.lists[pendingList].Index())

	sel, ok := m.lists[pendingList].SelectedItem().(listItem)
	require.True(t, ok)
	assert.Equal(t, "A", sel.Text)
}

func TestModel_FocusCycle(t *testing.T) {
	m := New(store.New(), testOptions())

	m = send(t, m, tabKey)
	assert.Equal(t, focusPending, m.focus)
	assert.False(t, m.input.Focused())

	m = send(t, m, tabKey)
	assert.Equal(t, focusDone, m.focus)

	m = send(t, m, tabKey)
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())

	m = send(t, m, shiftTabKey)
	assert.Equal(t, focusDone, m.focus)

	m = send(t, m, runes("a"))
	assert.Equal(t, focusInput, m.focus)

	m = send(t, m, escKey)
	assert.Equal(t, focusPending, m.focus)
}

func TestModel_QuitKeys(t *testing.T) {
	m := New(store.New(), testOptions())

	// q types into the input
	m = send(t, m, runes("q"))
	assert.Equal(t, "q", m.input.Value())
	assert.False(t, m.quitting)

	next, cmd := m.Update(ctrlCKey)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(Model).quitting)

	m = send(t, New(store.New(), testOptions()), tabKey)
	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewShowsBothLists(t *testing.T) {
	s := store.New()
	m := New(s, testOptions())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = addItem(t, m, "A")
	m = addItem(t, m, "B")
	s.SetDone(1, true)
	m.refresh()

	view := m.View()
	assert.Contains(t, view, "To do")
	assert.Contains(t, view, "Done")
	assert.Contains(t, view, "[ ] B")
	assert.Contains(t, view, "[x] A")
	assert.Contains(t, view, "Total 2")
}
