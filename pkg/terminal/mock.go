package terminal

import (
	"io"
	"strings"
)

// InvocationOp identifies which Terminal method a recorded invocation hit.
type InvocationOp string

const (
	OpReadLine InvocationOp = "read_line"
	OpPrint    InvocationOp = "print"
)

// Invocation is one recorded call against the Mock.
type Invocation struct {
	Op   InvocationOp
	Text string // line returned by ReadLine, or text given to Print
	Err  error
}

// Mock is a scripted Terminal for tests. ReadLine pops from a pre-supplied
// queue of lines and reports io.EOF once the queue is exhausted; Print
// captures all output. Both behaviours can be overridden per-call with the
// OnReadLine/OnPrint delegates. Every call is recorded in the invocation log.
type Mock struct {
	// OnReadLine, when set, replaces the queue-backed read behaviour.
	OnReadLine func() (string, error)

	// OnPrint, when set, replaces the default always-succeed print behaviour.
	// Output is captured regardless of the delegate's result.
	OnPrint func(s string) error

	lines       []string
	writes      []string
	invocations []Invocation
}

// NewMock creates a Mock that serves the given lines in order.
func NewMock(lines ...string) *Mock {
	return &Mock{lines: lines}
}

func (m *Mock) ReadLine() (string, error) {
	line, err := m.readLine()
	m.invocations = append(m.invocations, Invocation{Op: OpReadLine, Text: line, Err: err})
	return line, err
}

func (m *Mock) readLine() (string, error) {
	if m.OnReadLine != nil {
		return m.OnReadLine()
	}
	if len(m.lines) == 0 {
		return "", io.EOF
	}
	line := m.lines[0]
	m.lines = m.lines[1:]
	return line, nil
}

func (m *Mock) Print(s string) error {
	var err error
	if m.OnPrint != nil {
		err = m.OnPrint(s)
	}
	m.writes = append(m.writes, s)
	m.invocations = append(m.invocations, Invocation{Op: OpPrint, Text: s, Err: err})
	return err
}

func (m *Mock) PrintLine(s string) error {
	return m.Print(s + "\n")
}

// Writes lists the payload of every Print call, in order.
func (m *Mock) Writes() []string {
	return m.writes
}

// Output is the concatenation of everything printed.
func (m *Mock) Output() string {
	return strings.Join(m.writes, "")
}

// OutputLines splits the captured output into lines, dropping the trailing
// empty fragment left by a final newline.
func (m *Mock) OutputLines() []string {
	out := m.Output()
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

// Invocations lists every recorded call.
func (m *Mock) Invocations() []Invocation {
	return m.invocations
}

// Reads counts the ReadLine invocations recorded so far.
func (m *Mock) Reads() int {
	n := 0
	for _, inv := range m.invocations {
		if inv.Op == OpReadLine {
			n++
		}
	}
	return n
}
