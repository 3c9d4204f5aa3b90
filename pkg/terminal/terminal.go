// Package terminal abstracts the text device a REPL session reads from and
// writes to. Separating the device contract from its implementations allows
// the loop and the commands to be exercised against a scripted mock, while
// production binaries plug in the stdio or readline adapters.
package terminal

import (
	"fmt"
	"strings"
)

// Terminal is a line-oriented text I/O device. ReadLine blocks until a full
// line is available and reports end-of-input with io.EOF. Any other failure
// surfaces as a *AccessError.
type Terminal interface {
	ReadLine() (string, error)
	Print(s string) error
	PrintLine(s string) error
}

// AccessError reports that the underlying device could not be accessed for
// reading or writing. The loop treats it as fatal: a session whose I/O
// channel is broken cannot safely continue.
type AccessError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access terminal: %s: %v", e.Op, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// ReadValue prompts for input and parses it with the supplied function,
// re-prompting until the parse succeeds. Parse failures are reported to the
// terminal and never returned; only device errors (or io.EOF) propagate.
func ReadValue[V any](t Terminal, prompt string, parse func(string) (V, error)) (V, error) {
	var zero V
	for {
		if err := t.Print(prompt); err != nil {
			return zero, err
		}
		line, err := t.ReadLine()
		if err != nil {
			return zero, err
		}
		v, parseErr := parse(strings.TrimSpace(line))
		if parseErr == nil {
			return v, nil
		}
		if err := t.PrintLine(fmt.Sprintf("invalid input: %v", parseErr)); err != nil {
			return zero, err
		}
	}
}

// ReadValueDefault behaves like ReadValue but yields def when the user
// submits a blank line.
func ReadValueDefault[V any](t Terminal, prompt string, def V, parse func(string) (V, error)) (V, error) {
	return ReadValue(t, prompt, func(s string) (V, error) {
		if s == "" {
			return def, nil
		}
		return parse(s)
	})
}
