package calc

import (
	"strconv"
	"strings"

	"github.com/sandevgo/replkit/pkg/repl"
)

type subtractCommand struct {
	value float64
}

func (c subtractCommand) Execute(env *repl.Env[Register]) (repl.Outcome, error) {
	env.State.Value -= c.value
	return repl.Continue, env.State.show(env.Terminal)
}

// SubtractParser builds the subtract command, which subtracts a value from
// the register and prints the result.
type SubtractParser struct{}

func (SubtractParser) Parse(args string) (repl.Command[Register], error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(args), 64)
	if err != nil {
		return nil, err
	}
	return subtractCommand{value: value}, nil
}

func (SubtractParser) Name() string {
	return "subtract"
}

func (SubtractParser) Shorthand() string {
	return "s"
}

func (SubtractParser) Description() repl.Description {
	return repl.Description{
		Purpose: "Subtracts a value from the register.",
		Usage:   "<value>",
		Examples: []repl.Example{
			{Scenario: "subtracts 1.5 from the register", Command: "1.5"},
		},
	}
}
