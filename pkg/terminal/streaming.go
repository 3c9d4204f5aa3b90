package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Streaming adapts a reader/writer pair to the Terminal contract. Reads are
// buffered; a final line without a trailing newline is still delivered before
// io.EOF is reported.
type Streaming struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStreaming creates a Streaming terminal over the given streams.
func NewStreaming(in io.Reader, out io.Writer) *Streaming {
	return &Streaming{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdio creates a Streaming terminal bound to the process's standard
// input and output.
func NewStdio() *Streaming {
	return NewStreaming(os.Stdin, os.Stdout)
}

func (s *Streaming) ReadLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return trimLineEnding(line), nil
			}
			return "", io.EOF
		}
		return "", &AccessError{Op: "read", Err: err}
	}
	return trimLineEnding(line), nil
}

func (s *Streaming) Print(str string) error {
	if _, err := io.WriteString(s.out, str); err != nil {
		return &AccessError{Op: "write", Err: err}
	}
	return nil
}

func (s *Streaming) PrintLine(str string) error {
	return s.Print(str + "\n")
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}
