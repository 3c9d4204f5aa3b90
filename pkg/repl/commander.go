package repl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Registry is the read-only view of a Commander exposed to commands through
// the Env. The help built-in uses it to enumerate what is registered.
type Registry[C any] interface {
	// Parsers returns the registered parsers in registration order.
	Parsers() []NamedCommandParser[C]
}

// Commander owns the name-to-parser mapping and decodes raw input lines into
// executable commands. The mapping is fixed at construction; Decode is a pure
// function of the mapping and the input line, so a Commander may be shared
// freely once built.
type Commander[C any] struct {
	parsers     []NamedCommandParser[C]
	byName      map[string]int
	byShorthand map[string]int
}

// NewCommander builds a Commander from the given parsers. Registration order
// is preserved and is the order the help built-in lists commands in.
//
// Construction fails on a duplicate name or shorthand (including a shorthand
// colliding with another parser's name), on a name shorter than 2
// characters, and on a description example that the owning parser cannot
// parse back.
func NewCommander[C any](parsers ...NamedCommandParser[C]) (*Commander[C], error) {
	c := &Commander[C]{
		parsers:     make([]NamedCommandParser[C], 0, len(parsers)),
		byName:      make(map[string]int, len(parsers)),
		byShorthand: make(map[string]int),
	}

	for i, p := range parsers {
		name := p.Name()
		if len(name) < 2 {
			return nil, fmt.Errorf("invalid command name %q: must contain at least 2 characters", name)
		}

		for _, ex := range p.Description().Examples {
			if _, err := p.Parse(ex.Command); err != nil {
				return nil, fmt.Errorf("unparsable example command %q for %q: %w", ex.Command, name, err)
			}
		}

		if sh := p.Shorthand(); sh != "" {
			if c.taken(sh) {
				return nil, fmt.Errorf("duplicate command parser for %q", sh)
			}
			c.byShorthand[sh] = i
		}
		if c.taken(name) {
			return nil, fmt.Errorf("duplicate command parser for %q", name)
		}
		c.byName[name] = i
		c.parsers = append(c.parsers, p)
	}

	return c, nil
}

// MustCommander is NewCommander that panics on an invalid parser set. Meant
// for static registrations where a failure is a programming error.
func MustCommander[C any](parsers ...NamedCommandParser[C]) *Commander[C] {
	c, err := NewCommander(parsers...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Commander[C]) taken(key string) bool {
	if _, ok := c.byName[key]; ok {
		return true
	}
	_, ok := c.byShorthand[key]
	return ok
}

// Decode turns one raw input line into an executable Command.
//
// A blank or whitespace-only line yields (nil, nil): nothing to execute and
// nothing to report, so the loop silently re-prompts. Otherwise the leading
// whitespace-delimited token is resolved as a shorthand first, then as a
// name; the remainder of the line is handed to the matched parser untouched.
// A lookup miss yields *UnknownCommandError, a parser rejection yields
// *InvalidArgumentsError.
func (c *Commander[C]) Decode(line string) (Command[C], error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, nil
	}

	name, args := splitCommand(trimmed)
	idx, ok := c.byShorthand[name]
	if !ok {
		idx, ok = c.byName[name]
	}
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}

	cmd, err := c.parsers[idx].Parse(args)
	if err != nil {
		return nil, &InvalidArgumentsError{Name: name, Err: err}
	}
	return cmd, nil
}

// Parsers returns the registered parsers in registration order.
func (c *Commander[C]) Parsers() []NamedCommandParser[C] {
	return c.parsers
}

// splitCommand cuts line at the first whitespace rune. Exactly one separator
// is consumed; any further whitespace stays part of the argument text.
func splitCommand(line string) (name, args string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	_, width := utf8.DecodeRuneInString(line[idx:])
	return line[:idx], line[idx+width:]
}
