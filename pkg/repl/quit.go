package repl

// QuitParser registers the quit built-in, which terminates the loop.
// Argument text is accepted and ignored as a convenience; mistyping
// arguments after "quit" should never keep a user trapped in the session.
type QuitParser[C any] struct{}

func (QuitParser[C]) Parse(string) (Command[C], error) {
	return quitCommand[C]{}, nil
}

func (QuitParser[C]) Name() string {
	return "quit"
}

func (QuitParser[C]) Shorthand() string {
	return "q"
}

func (QuitParser[C]) Description() Description {
	return Description{
		Purpose: "Ends the session.",
	}
}

type quitCommand[C any] struct{}

// Execute requests a stop and nothing more: no output, no state mutation, no
// teardown. The loop exits; the host process is untouched.
func (quitCommand[C]) Execute(*Env[C]) (Outcome, error) {
	return Stop, nil
}
