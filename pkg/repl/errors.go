package repl

import "fmt"

// UnknownCommandError reports that the leading token of an input line named
// no registered parser.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// InvalidArgumentsError reports that a registered parser rejected its
// argument text. It wraps the parser's own error.
type InvalidArgumentsError struct {
	Name string
	Err  error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments to %q: %v", e.Name, e.Err)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return e.Err
}
