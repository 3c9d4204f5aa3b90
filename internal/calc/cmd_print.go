package calc

import "github.com/sandevgo/replkit/pkg/repl"

type printCommand struct{}

func (printCommand) Execute(env *repl.Env[Register]) (repl.Outcome, error) {
	return repl.Continue, env.State.show(env.Terminal)
}

// PrintParser builds the print command, which displays the register without
// changing it. Unlike the built-ins it takes no arguments, strictly.
type PrintParser struct{}

func (PrintParser) Parse(args string) (repl.Command[Register], error) {
	return repl.NoArgs("print", args, func() repl.Command[Register] {
		return printCommand{}
	})
}

func (PrintParser) Name() string {
	return "print"
}

func (PrintParser) Shorthand() string {
	return "p"
}

func (PrintParser) Description() repl.Description {
	return repl.Description{
		Purpose: "Prints the contents of the register.",
	}
}
