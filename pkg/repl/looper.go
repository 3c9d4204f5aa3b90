package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sandevgo/replkit/pkg/log"
	"github.com/sandevgo/replkit/pkg/terminal"
)

// Looper drives one REPL session to completion: read a line, decode it,
// execute the resulting command, repeat. It runs entirely on the calling
// goroutine; the only suspension point is the blocking terminal read.
type Looper[C any] struct {
	term      terminal.Terminal
	commander *Commander[C]
	state     *C
	prompt    string
	sessionID string
	running   bool
}

// Option customises a Looper at construction.
type Option[C any] func(*Looper[C])

// WithPrompt makes the Looper write prompt before every read. The default is
// no prompt, for terminals (such as the readline adapter) that render their
// own.
func WithPrompt[C any](prompt string) Option[C] {
	return func(l *Looper[C]) {
		l.prompt = prompt
	}
}

// WithSessionID overrides the generated session identifier used to correlate
// log events.
func WithSessionID[C any](id string) Option[C] {
	return func(l *Looper[C]) {
		l.sessionID = id
	}
}

// NewLooper creates a Looper over the given terminal, commander and shared
// application state. The state pointer is lent to each executed command for
// the duration of its Execute call.
func NewLooper[C any](term terminal.Terminal, commander *Commander[C], state *C, opts ...Option[C]) *Looper[C] {
	l := &Looper[C]{
		term:      term,
		commander: commander,
		state:     state,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SessionID returns the identifier attached to this session's log events.
func (l *Looper[C]) SessionID() string {
	return l.sessionID
}

// Run blocks until the session ends. The loop terminates cleanly (nil error)
// when a command returns Stop or the terminal reports end-of-input.
//
// Decode failures and command errors are rendered to the terminal and the
// loop carries on; the session is resilient to arbitrarily many malformed
// inputs. Terminal access errors are fatal and propagate, as does ctx
// cancellation, which is checked between iterations. Panics raised inside a
// command are not recovered.
//
// Run may be called again after it returns; it starts a fresh loop over the
// same state.
func (l *Looper[C]) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx).With().Str("session_id", l.sessionID).Logger()
	logger.Debug().Msg("session started")

	l.running = true
	for l.running {
		if err := ctx.Err(); err != nil {
			l.running = false
			return err
		}

		if l.prompt != "" {
			if err := l.term.Print(l.prompt); err != nil {
				return err
			}
		}

		line, err := l.term.ReadLine()
		if errors.Is(err, io.EOF) {
			logger.Debug().Msg("end of input")
			l.running = false
			break
		}
		if err != nil {
			return err
		}

		cmd, decodeErr := l.commander.Decode(line)
		if decodeErr != nil {
			logger.Debug().Err(decodeErr).Msg("decode failed")
			if err := l.term.PrintLine(decodeErr.Error()); err != nil {
				return err
			}
			continue
		}
		if cmd == nil {
			// Blank line: nothing to execute, nothing to report.
			continue
		}

		env := &Env[C]{Terminal: l.term, Registry: l.commander, State: l.state}
		outcome, execErr := cmd.Execute(env)
		if execErr != nil {
			var access *terminal.AccessError
			if errors.As(execErr, &access) {
				return execErr
			}
			logger.Debug().Err(execErr).Msg("command failed")
			if err := l.term.PrintLine(fmt.Sprintf("command error: %v", execErr)); err != nil {
				return err
			}
		}
		if outcome == Stop {
			logger.Debug().Msg("stop requested")
			l.running = false
		}
	}

	logger.Debug().Msg("session ended")
	return nil
}
