// Package script runs line-oriented layout scenarios against an in-memory
// host. A scenario is a list of commands, one per line:
//
//	screen 0 0 1920 1080
//	add term
//	add editor
//	shuffle_right
//	expect columns 2
//	expect focus editor
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"errors"
	"fmt"
	"strings"
)

// CommandType names a scenario command.
type CommandType string

const (
	// Window lifecycle
	CommandAdd    CommandType = "add"
	CommandRemove CommandType = "remove"
	CommandFocus  CommandType = "focus"

	// Navigation
	CommandLeft        CommandType = "left"
	CommandRight       CommandType = "right"
	CommandUp          CommandType = "up"
	CommandDown        CommandType = "down"
	CommandNext        CommandType = "next"
	CommandPrevious    CommandType = "previous"
	CommandToggleSplit CommandType = "toggle_split"

	// Structural moves
	CommandShuffleLeft  CommandType = "shuffle_left"
	CommandShuffleRight CommandType = "shuffle_right"
	CommandShuffleUp    CommandType = "shuffle_up"
	CommandShuffleDown  CommandType = "shuffle_down"
	CommandAddColumn    CommandType = "add_column"

	// Host
	CommandScreen CommandType = "screen"

	// Assertions
	CommandExpect CommandType = "expect"
)

// Expectation kinds accepted by expect.
const (
	ExpectFocus     = "focus"
	ExpectColumns   = "columns"
	ExpectRows      = "rows"
	ExpectWidth     = "width"
	ExpectMode      = "mode"
	ExpectClients   = "clients"
	ExpectPlacement = "placement"
	ExpectHidden    = "hidden"
	ExpectVisible   = "visible"
)

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingArgument   = errors.New("missing argument")
	ErrTooManyArguments  = errors.New("too many arguments")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrExpectationFailed = errors.New("expectation failed")
)

// arity is the accepted argument count; max < 0 means unbounded.
type arity struct {
	min, max int
}

var commandArity = map[CommandType]arity{
	CommandAdd:          {1, -1},
	CommandRemove:       {1, -1},
	CommandFocus:        {1, 1},
	CommandLeft:         {0, 0},
	CommandRight:        {0, 0},
	CommandUp:           {0, 0},
	CommandDown:         {0, 0},
	CommandNext:         {0, 0},
	CommandPrevious:     {0, 0},
	CommandToggleSplit:  {0, 0},
	CommandShuffleLeft:  {0, 0},
	CommandShuffleRight: {0, 0},
	CommandShuffleUp:    {0, 0},
	CommandShuffleDown:  {0, 0},
	CommandAddColumn:    {2, 2},
	CommandScreen:       {4, 4},
	CommandExpect:       {1, -1},
}

var expectArity = map[string]arity{
	ExpectFocus:     {1, 1},
	ExpectColumns:   {1, 1},
	ExpectRows:      {1, -1},
	ExpectWidth:     {2, 2},
	ExpectMode:      {2, 2},
	ExpectClients:   {0, -1},
	ExpectPlacement: {5, 5},
	ExpectHidden:    {1, 1},
	ExpectVisible:   {1, 1},
}

// Command is a parsed scenario line.
type Command struct {
	Type CommandType
	Args []string
	Line int // 1-based source line
}

// String returns the command as it would be written in a script.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Type)
	}
	return string(c.Type) + " " + strings.Join(c.Args, " ")
}

// IsMutation reports whether the command can change the layout.
func (c Command) IsMutation() bool {
	switch c.Type {
	case CommandExpect, CommandScreen:
		return false
	default:
		return true
	}
}

func (a arity) check(n int) error {
	if n < a.min {
		return ErrMissingArgument
	}
	if a.max >= 0 && n > a.max {
		return ErrTooManyArguments
	}
	return nil
}

func validate(c Command) error {
	a, ok := commandArity[c.Type]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, c.Type)
	}
	if err := a.check(len(c.Args)); err != nil {
		return fmt.Errorf("%s: %w", c.Type, err)
	}

	switch c.Type {
	case CommandExpect:
		kind := c.Args[0]
		ea, ok := expectArity[kind]
		if !ok {
			return fmt.Errorf("%w: unknown expectation %q", ErrInvalidArgument, kind)
		}
		if err := ea.check(len(c.Args) - 1); err != nil {
			return fmt.Errorf("expect %s: %w", kind, err)
		}
	case CommandAddColumn:
		if c.Args[0] != "prepend" && c.Args[0] != "append" {
			return fmt.Errorf("%w: add_column wants prepend or append, got %q", ErrInvalidArgument, c.Args[0])
		}
	}
	return nil
}
