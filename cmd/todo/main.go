package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/idilsaglam/todolist/internal/commands"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Populated at build-time via -ldflags.
var version = "dev"

func build() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}
	return version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := commands.New(build()).Run(ctx, os.Args)
	if err != nil {
		ui.ThemeByName(ui.ThemeClassic).Fail(os.Stderr, err.Error())
	}
	code := commands.ExitCode(err)
	stop()
	os.Exit(code)
}
