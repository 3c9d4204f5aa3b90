// Package repl supplies the generic building blocks of a read-eval-print
// loop: a Commander that decodes raw input lines into executable commands, a
// Looper that drives the read-decode-execute cycle, and the help and quit
// built-ins. The embedding application contributes the command semantics by
// registering NamedCommandParser implementations; everything else is
// configuration.
package repl

import (
	"fmt"

	"github.com/sandevgo/replkit/pkg/terminal"
)

// Outcome is the result of executing a Command and tells the Looper whether
// to keep iterating.
type Outcome int

const (
	// Continue keeps the loop running.
	Continue Outcome = iota

	// Stop terminates the loop cleanly after the current iteration. The
	// host process is not touched; what happens after the loop returns is
	// the embedding application's decision.
	Stop
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Env gives a Command access to its collaborators for the duration of one
// Execute call: the session terminal, the shared application state, and a
// read-only view of the command registry (used by the help built-in).
// Commands must not retain the Env or anything reached through it beyond the
// call.
type Env[C any] struct {
	Terminal terminal.Terminal
	Registry Registry[C]
	State    *C
}

// Command is one unit of executable behaviour, constructed fresh per input
// line by a NamedCommandParser and discarded after a single Execute call.
//
// A non-nil error is rendered to the terminal by the Looper and the loop
// continues, unless the error is a *terminal.AccessError, which aborts the
// loop. The returned Outcome is honoured independently of the error, so a
// command may report a failure and request a stop in the same breath.
type Command[C any] interface {
	Execute(env *Env[C]) (Outcome, error)
}

// CommandFunc adapts a plain function to the Command interface.
type CommandFunc[C any] func(env *Env[C]) (Outcome, error)

func (f CommandFunc[C]) Execute(env *Env[C]) (Outcome, error) {
	return f(env)
}

// NamedCommandParser constructs a Command from the argument text that
// followed its name on the input line. Parsers are stateless across loop
// iterations; any configuration is fixed at construction.
type NamedCommandParser[C any] interface {
	// Parse builds a Command from the raw argument text (everything after
	// the separating whitespace, untrimmed). A returned error is reported
	// to the user as an invalid-arguments decode failure.
	Parse(args string) (Command[C], error)

	// Name is the full command name the user types. At least 2 characters.
	Name() string

	// Shorthand is an optional single-token alias; empty means none.
	Shorthand() string

	// Description documents the command for the help listing.
	Description() Description
}

// Description documents a command. Purpose is mandatory for a useful help
// listing; Usage and Examples matter only for commands that take arguments.
type Description struct {
	// Purpose states why the command exists. Fully punctuated sentences.
	Purpose string

	// Usage is the argument syntax, without the command name. Blank when
	// the command takes no arguments.
	Usage string

	// Examples demonstrate argument usage. Empty when the command takes no
	// arguments, in which case the example is implied.
	Examples []Example
}

// Example is one worked usage of a command.
type Example struct {
	// Scenario says what the example achieves. Part-sentence: lowercase
	// start, no trailing period.
	Scenario string

	// Command holds the sample arguments, without the command name.
	Command string
}

// NoArgs is a parser helper for commands that accept no arguments: it
// invokes ctor on empty argument text and fails otherwise.
func NoArgs[C any](name, args string, ctor func() Command[C]) (Command[C], error) {
	if args != "" {
		return nil, fmt.Errorf("%q takes no arguments, got %q", name, args)
	}
	return ctor(), nil
}
