package repl

import "fmt"

// HelpParser registers the help built-in, which lists every registered
// command in registration order. Argument text is accepted and ignored.
type HelpParser[C any] struct{}

func (HelpParser[C]) Parse(string) (Command[C], error) {
	return helpCommand[C]{}, nil
}

func (HelpParser[C]) Name() string {
	return "help"
}

func (HelpParser[C]) Shorthand() string {
	return "h"
}

func (HelpParser[C]) Description() Description {
	return Description{
		Purpose: "Displays the available commands and what they do.",
	}
}

type helpCommand[C any] struct{}

// Execute writes one line per registered parser: the name (with shorthand,
// if set), padded, followed by the description purpose. Nothing else is
// written and no state is mutated.
func (helpCommand[C]) Execute(env *Env[C]) (Outcome, error) {
	for _, p := range env.Registry.Parsers() {
		label := p.Name()
		if sh := p.Shorthand(); sh != "" {
			label += ", " + sh
		}
		line := label
		if purpose := p.Description().Purpose; purpose != "" {
			line = fmt.Sprintf("%-16s %s", label, purpose)
		}
		if err := env.Terminal.PrintLine(line); err != nil {
			return Continue, err
		}
	}
	return Continue, nil
}
