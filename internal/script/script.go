// Package script drives a Store from a line-oriented command script.
//
// Each line is one discrete event, applied in order:
//
//	# comment
//	add buy milk
//	done 1
//	undone 1
//	toggle 2
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todolist/internal/store"
)

// ErrEmptyText marks an add line without text.
var ErrEmptyText = errors.New("empty text")

// Verb is a script command.
type Verb string

const (
	VerbAdd    Verb = "add"
	VerbDone   Verb = "done"
	VerbUndone Verb = "undone"
	VerbToggle Verb = "toggle"
)

// Command is one parsed script line.
type Command struct {
	Line int
	Verb Verb
	Text string // add only
	ID   int    // done, undone, toggle
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Result summarizes a run.
type Result struct {
	Applied  int // commands that reached the store
	Rejected int // add lines with empty text
	Missed   int // id commands that matched no item
}

// ParseLine parses a single line. ok is false for blank lines and comments.
func ParseLine(n int, line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}

	head, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		head, rest = line[:i], strings.TrimSpace(line[i:])
	}
	cmd = Command{Line: n, Verb: Verb(strings.ToLower(head))}

	switch cmd.Verb {
	case VerbAdd:
		cmd.Text = rest
		return cmd, true, nil
	case VerbDone, VerbUndone, VerbToggle:
		if rest == "" {
			return Command{}, false, &ParseError{Line: n, Msg: fmt.Sprintf("usage: %s <id>", cmd.Verb)}
		}
		id, err := strconv.Atoi(rest)
		if err != nil {
			return Command{}, false, &ParseError{Line: n, Msg: fmt.Sprintf("%s: not a number: %s", cmd.Verb, rest)}
		}
		cmd.ID = id
		return cmd, true, nil
	}

	return Command{}, false, &ParseError{Line: n, Msg: "unknown command: " + head}
}

// Apply executes one command against s.
func Apply(s *store.Store, cmd Command) error {
	switch cmd.Verb {
	case VerbAdd:
		if cmd.Text == "" {
			return ErrEmptyText
		}
		it := s.Create(cmd.Text)
		log.Debug().Int("id", it.ID).Str("text", it.Text).Msg("item created")
		return nil
	case VerbDone:
		return matched(s.SetDone(cmd.ID, true), cmd)
	case VerbUndone:
		return matched(s.SetDone(cmd.ID, false), cmd)
	case VerbToggle:
		return matched(s.Toggle(cmd.ID), cmd)
	}
	return fmt.Errorf("unsupported command %q", cmd.Verb)
}

var errNoItem = errors.New("no such item")

func matched(ok bool, cmd Command) error {
	if !ok {
		return errNoItem
	}
	log.Debug().Int("id", cmd.ID).Str("verb", string(cmd.Verb)).Msg("item updated")
	return nil
}

// Run reads r line by line and applies each command to s. Empty add
// text and unknown ids are counted, not failed. Parsing stops at the
// first malformed line or when ctx is done.
func Run(ctx context.Context, r io.Reader, s *store.Store) (Result, error) {
	var res Result

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		n++

		cmd, ok, err := ParseLine(n, sc.Text())
		if err != nil {
			return res, err
		}
		if !ok {
			continue
		}

		switch err := Apply(s, cmd); {
		case errors.Is(err, ErrEmptyText):
			res.Rejected++
			log.Warn().Int("line", n).Msg("add: empty text, skipped")
		case errors.Is(err, errNoItem):
			res.Missed++
			log.Debug().Int("line", n).Int("id", cmd.ID).Msg("no item with id, ignored")
		case err != nil:
			return res, err
		default:
			res.Applied++
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read script: %w", err)
	}
	return res, nil
}
