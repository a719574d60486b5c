package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ConfigCmd struct {
	flags *Flags
}

func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect configuration",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the effective configuration as YAML",
				Action: cmd.show,
			},
		},
	})
	return app
}

func (cmd *ConfigCmd) show(ctx context.Context, c *cli.Command) error {
	b, err := cmd.flags.Config.YAML()
	if err != nil {
		return err
	}
	_, err = c.Root().Writer.Write(b)
	return err
}
