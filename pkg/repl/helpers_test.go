package repl

import (
	"fmt"
	"strconv"
	"strings"
)

// scratch is the shared application state used by the tests in this package.
type scratch struct {
	executed []string
}

// stubParser is a configurable NamedCommandParser for tests.
type stubParser struct {
	name      string
	shorthand string
	desc      Description
	parse     func(args string) (Command[scratch], error)
}

func (p stubParser) Parse(args string) (Command[scratch], error) {
	return p.parse(args)
}

func (p stubParser) Name() string {
	return p.name
}

func (p stubParser) Shorthand() string {
	return p.shorthand
}

func (p stubParser) Description() Description {
	return p.desc
}

// echoParser accepts any argument text and prints it back on execution.
func echoParser(name, shorthand string) stubParser {
	return stubParser{
		name:      name,
		shorthand: shorthand,
		desc:      Description{Purpose: "Echoes its arguments."},
		parse: func(args string) (Command[scratch], error) {
			return CommandFunc[scratch](func(env *Env[scratch]) (Outcome, error) {
				env.State.executed = append(env.State.executed, name)
				return Continue, env.Terminal.PrintLine(args)
			}), nil
		},
	}
}

// sumParser parses exactly two integers and prints their sum on execution.
func sumParser() stubParser {
	return stubParser{
		name: "add",
		desc: Description{
			Purpose:  "Adds two integers and prints the sum.",
			Usage:    "<a> <b>",
			Examples: []Example{{Scenario: "adds 2 and 3", Command: "2 3"}},
		},
		parse: func(args string) (Command[scratch], error) {
			fields := strings.Fields(args)
			if len(fields) != 2 {
				return nil, fmt.Errorf("expected two integers, got %d tokens", len(fields))
			}
			a, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, err
			}
			b, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, err
			}
			return CommandFunc[scratch](func(env *Env[scratch]) (Outcome, error) {
				env.State.executed = append(env.State.executed, "add")
				return Continue, env.Terminal.PrintLine(strconv.Itoa(a + b))
			}), nil
		},
	}
}

// fixedParser ignores its argument text and returns the given command.
func fixedParser(name string, cmd Command[scratch]) stubParser {
	return stubParser{
		name:  name,
		desc:  Description{Purpose: "Runs a canned command."},
		parse: func(string) (Command[scratch], error) { return cmd, nil },
	}
}
