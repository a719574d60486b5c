package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logutils"
	"github.com/idilsaglam/todolist/internal/ui"
)

// New builds the root command. Running it without a subcommand opens the TUI.
func New(version string) *cli.Command {
	flags := &Flags{}
	var logCloser func()

	tuiCmd := NewTuiCmd(flags)

	app := &cli.Command{
		Name:      "todo",
		Usage:     "A two-list to-do manager for the terminal",
		UsageText: "todo [global options] [command [command options]]",
		Description: `Type an item and press enter to add it to "To do".
Select an item in either list and press space to move it to the other list.

Items live in memory for the lifetime of the process.
Use 'todo apply' to drive the same lists from a script.`,
		Version: version,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty disables logging)",
				Sources:     cli.EnvVars("TODO_LOG_FILE"),
				Value:       logutils.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODO_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       fmt.Sprintf("color theme %v (overrides config)", ui.Themes),
				Sources:     cli.EnvVars("TODO_THEME"),
				Destination: &flags.Theme,
			},
		}, tuiCmd.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Theme != "" {
				if !ui.IsTheme(flags.Theme) {
					return ctx, usagef(fmt.Sprintf("unknown theme %q (want one of %v)", flags.Theme, ui.Themes))
				}
				cfg.Theme = flags.Theme
			}
			flags.Config = cfg

			log.Debug().Str("config", flags.ConfigPath).Str("theme", cfg.Theme).Msg("config loaded")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: tuiCmd.Run,
	}

	app = tuiCmd.Register(app)
	app = NewApplyCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)

	return app
}
