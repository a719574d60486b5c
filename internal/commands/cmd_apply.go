package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todolist/internal/script"
	"github.com/idilsaglam/todolist/internal/store"
)

type ApplyCmd struct {
	flags  *Flags
	file   string
	format string
}

func NewApplyCmd(flags *Flags) *ApplyCmd {
	return &ApplyCmd{flags: flags}
}

func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "apply",
		Usage: "Run a command script against fresh lists and print them",
		UsageText: `todo apply [options]

Read from stdin:
  printf 'add buy milk\nadd call mom\ndone 1\n' | todo apply

Read from file:
  todo apply -f today.todo --format json`,
		Description: `Each line of the script is one command:

  add <text...>    create a pending item (empty text is skipped)
  done <id>        mark item done
  undone <id>      mark item pending
  toggle <id>      flip item state

Blank lines and lines starting with # are ignored. IDs start at 1 in
creation order. Unknown IDs are ignored. A malformed line stops the run
with exit code 2.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "script file (defaults to stdin)",
				Destination: &cmd.file,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       script.FormatText,
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ApplyCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.format != script.FormatText && cmd.format != script.FormatJSON {
		return usagef(fmt.Sprintf("unknown format %q (want text or json)", cmd.format))
	}

	var r io.Reader = c.Root().Reader
	if cmd.file != "" {
		f, err := os.Open(cmd.file)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	s := store.New()
	res, err := script.Run(ctx, r, s)
	if err != nil {
		return err
	}
	log.Info().
		Int("applied", res.Applied).
		Int("rejected", res.Rejected).
		Int("missed", res.Missed).
		Msg("script applied")

	if err := script.WriteReport(c.Root().Writer, script.NewReport(s, res), cmd.format, cmd.flags.textOptions()); err != nil {
		return err
	}
	cmd.flags.theme().OK(c.Root().ErrWriter,
		fmt.Sprintf("applied %d, rejected %d, ignored %d", res.Applied, res.Rejected, res.Missed))
	return nil
}
