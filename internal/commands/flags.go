package commands

import (
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/script"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Theme      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

func (f *Flags) theme() ui.Theme {
	return ui.ThemeByName(f.Config.Theme)
}

func (f *Flags) tuiOptions() tui.Options {
	c := f.Config
	return tui.Options{
		Theme:         f.theme(),
		PendingTitle:  c.Titles.Pending,
		DoneTitle:     c.Titles.Done,
		Placeholder:   c.Input.Placeholder,
		CharLimit:     c.Input.CharLimit,
		ProgressWidth: c.ProgressWidth,
	}
}

func (f *Flags) textOptions() script.TextOptions {
	c := f.Config
	return script.TextOptions{
		Theme:         f.theme(),
		PendingTitle:  c.Titles.Pending,
		DoneTitle:     c.Titles.Done,
		ProgressWidth: c.ProgressWidth,
	}
}
