package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/store"
)

// Run starts the interactive program over s and blocks until the user
// quits or ctx is done. s holds the final state afterwards.
func Run(ctx context.Context, s *store.Store, opts Options) error {
	p := tea.NewProgram(New(s, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
