// Package tui is the interactive two-list view over a store.Store.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusPending
	focusDone
	focusCount
)

const (
	pendingList = 0
	doneList    = 1
)

const errEmptyText = "Text cannot be empty"

// Options configure the program.
type Options struct {
	Theme         ui.Theme
	PendingTitle  string
	DoneTitle     string
	Placeholder   string
	CharLimit     int
	ProgressWidth int
}

// Model is the Bubble Tea model. It re-reads both views from the store
// after every mutation.
type Model struct {
	store *store.Store
	opts  Options
	keys  keyMap
	help  help.Model

	input    textinput.Model
	inputErr string

	lists [2]list.Model
	focus focus

	width, height int
	quitting      bool
}

// New builds a model over s with the entry field focused.
func New(s *store.Store, opts Options) Model {
	m := Model{
		store: s,
		opts:  opts,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.help.Styles.ShortKey = opts.Theme.Accent
	m.help.Styles.ShortDesc = opts.Theme.Help
	m.help.Styles.ShortSeparator = opts.Theme.Help

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = opts.Placeholder
	m.input.CharLimit = opts.CharLimit
	m.input.Focus()

	m.lists[pendingList] = m.newList(opts.PendingTitle)
	m.lists[doneList] = m.newList(opts.DoneTitle)
	m.refresh()
	m.resize(80, 24)
	return m
}

func (m Model) newList(title string) list.Model {
	l := list.New(nil, itemDelegate{theme: m.opts.Theme}, 0, 0)
	l.Title = title
	l.Styles.Title = m.opts.Theme.Title
	l.Styles.NoItems = m.opts.Theme.Muted
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	return l
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextFocus):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.PrevFocus):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.inputErr = errEmptyText
			return m, nil
		}
		it := m.store.Create(text)
		log.Debug().Int("id", it.ID).Str("text", it.Text).Msg("item created")
		m.input.Reset()
		m.inputErr = ""
		cmd := m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.Leave):
		cmd := m.setFocus(focusPending)
		return m, cmd
	}

	m.inputErr = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := &m.lists[m.listIndex()]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Input), key.Matches(msg, m.keys.Leave):
		cmd := m.setFocus(focusInput)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		l.CursorUp()
	case key.Matches(msg, m.keys.Down):
		l.CursorDown()
	case key.Matches(msg, m.keys.Toggle):
		sel, ok := l.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		m.store.SetDone(sel.ID, !sel.Done)
		log.Debug().Int("id", sel.ID).Bool("done", !sel.Done).Msg("item updated")
		cmd := m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m Model) listIndex() int {
	if m.focus == focusDone {
		return doneList
	}
	return pendingList
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	for i := range m.lists {
		active := f != focusInput && m.listIndex() == i
		m.lists[i].SetDelegate(itemDelegate{theme: m.opts.Theme, active: active})
	}
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// refresh reloads both lists from the store and keeps each cursor in range.
func (m *Model) refresh() tea.Cmd {
	views := [2][]list.Item{
		pendingList: toListItems(m.store.Pending()),
		doneList:    toListItems(m.store.Done()),
	}

	var cmds []tea.Cmd
	for i, items := range views {
		l := &m.lists[i]
		cmds = append(cmds, l.SetItems(items))
		switch n := len(items); {
		case n == 0:
			l.Select(0)
		case l.Index() >= n:
			l.Select(n - 1)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w

	listW := (w - 8) / 2
	listH := h - 12
	if listW < 10 {
		listW = 10
	}
	if listH < 3 {
		listH = 3
	}
	for i := range m.lists {
		m.lists[i].SetSize(listW, listH)
	}
	m.input.Width = w - 10
}
