package commands

import (
	"errors"

	"github.com/idilsaglam/todolist/internal/script"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks bad invocation or malformed input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(msg string) error { return &UsageError{Msg: msg} }

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *UsageError
	var pe *script.ParseError
	if errors.As(err, &ue) || errors.As(err, &pe) {
		return ExitUsage
	}
	return ExitError
}
