package calc

import (
	"strconv"
	"strings"

	"github.com/sandevgo/replkit/pkg/repl"
)

type addCommand struct {
	value float64
}

func (c addCommand) Execute(env *repl.Env[Register]) (repl.Outcome, error) {
	env.State.Value += c.value
	return repl.Continue, env.State.show(env.Terminal)
}

// AddParser builds the add command, which adds a value to the register and
// prints the result.
type AddParser struct{}

func (AddParser) Parse(args string) (repl.Command[Register], error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(args), 64)
	if err != nil {
		return nil, err
	}
	return addCommand{value: value}, nil
}

func (AddParser) Name() string {
	return "add"
}

func (AddParser) Shorthand() string {
	return "a"
}

func (AddParser) Description() repl.Description {
	return repl.Description{
		Purpose: "Adds a value to the register.",
		Usage:   "<value>",
		Examples: []repl.Example{
			{Scenario: "adds 1.5 to the register", Command: "1.5"},
		},
	}
}
