package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todolist/internal/script"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/tui"
)

type TuiCmd struct {
	flags   *Flags
	summary bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "summary",
			Usage:       "print both lists after quitting",
			Sources:     cli.EnvVars("TODO_SUMMARY"),
			Destination: &cmd.summary,
		},
	}
}

func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive lists (default)",
		Action: cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	s := store.New()
	log.Info().Msg("tui started")

	if err := tui.Run(ctx, s, cmd.flags.tuiOptions()); err != nil {
		return err
	}

	d, p := s.Stats()
	log.Info().Int("done", d).Int("pending", p).Msg("tui exited")

	if !cmd.summary {
		return nil
	}
	rep := script.NewReport(s, script.Result{})
	if err := script.WriteReport(c.Root().Writer, rep, script.FormatText, cmd.flags.textOptions()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
