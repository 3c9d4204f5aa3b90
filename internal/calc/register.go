// Package calc implements the demo calculator REPL: a single floating-point
// register mutated by add/subtract commands and displayed by print.
package calc

import (
	"strconv"

	"github.com/sandevgo/replkit/pkg/repl"
	"github.com/sandevgo/replkit/pkg/terminal"
)

// Register is the calculator's shared session state.
type Register struct {
	Value float64
}

func (r *Register) show(t terminal.Terminal) error {
	return t.PrintLine(strconv.FormatFloat(r.Value, 'g', -1, 64))
}

// Parsers returns the calculator's command set, built-ins included, in the
// order the help listing should show them.
func Parsers() []repl.NamedCommandParser[Register] {
	return []repl.NamedCommandParser[Register]{
		AddParser{},
		SubtractParser{},
		PrintParser{},
		repl.HelpParser[Register]{},
		repl.QuitParser[Register]{},
	}
}

// Names lists the command names and shorthands for terminal tab completion.
func Names() []string {
	var names []string
	for _, p := range Parsers() {
		names = append(names, p.Name())
		if sh := p.Shorthand(); sh != "" {
			names = append(names, sh)
		}
	}
	return names
}
