package terminal

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreaming_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lf_terminated",
			input: "one\ntwo\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "crlf_terminated",
			input: "one\r\ntwo\r\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "final_line_unterminated",
			input: "one\ntwo",
			want:  []string{"one", "two"},
		},
		{
			name:  "empty_lines_preserved",
			input: "\n\n",
			want:  []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStreaming(strings.NewReader(tt.input), io.Discard)
			var got []string
			for {
				line, err := s.ReadLine()
				if errors.Is(err, io.EOF) {
					break
				}
				require.NoError(t, err)
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreaming_ReadLineAfterEOF(t *testing.T) {
	s := NewStreaming(strings.NewReader(""), io.Discard)
	_, err := s.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	_, err = s.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreaming_Print(t *testing.T) {
	var out strings.Builder
	s := NewStreaming(strings.NewReader(""), &out)

	require.NoError(t, s.Print("a"))
	require.NoError(t, s.PrintLine("b"))
	assert.Equal(t, "ab\n", out.String())
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestStreaming_WriteFailure(t *testing.T) {
	broken := errors.New("pipe closed")
	s := NewStreaming(strings.NewReader(""), failingWriter{err: broken})

	err := s.PrintLine("x")
	var access *AccessError
	require.ErrorAs(t, err, &access)
	assert.Equal(t, "write", access.Op)
	assert.ErrorIs(t, err, broken)
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestStreaming_ReadFailure(t *testing.T) {
	broken := errors.New("device gone")
	s := NewStreaming(failingReader{err: broken}, io.Discard)

	_, err := s.ReadLine()
	var access *AccessError
	require.ErrorAs(t, err, &access)
	assert.Equal(t, "read", access.Op)
	assert.ErrorIs(t, err, broken)
}
