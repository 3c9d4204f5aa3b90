package terminal

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineConfig configures the interactive readline adapter.
type ReadlineConfig struct {
	Prompt      string
	HistoryFile string
	// Completions are offered on tab; typically the registered command names.
	Completions []string
}

// Readline is an interactive Terminal backed by chzyer/readline, with line
// editing, history and tab completion. Ctrl-D, and Ctrl-C on an empty line,
// are reported as io.EOF so the loop shuts down cleanly.
type Readline struct {
	rl *readline.Instance
}

// NewReadline creates a readline-backed terminal. The caller owns the
// instance and must Close it when the session ends.
func NewReadline(cfg ReadlineConfig) (*Readline, error) {
	var completer readline.AutoCompleter
	if len(cfg.Completions) > 0 {
		items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Completions))
		for _, name := range cfg.Completions {
			items = append(items, readline.PcItem(name))
		}
		completer = readline.NewPrefixCompleter(items...)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &Readline{rl: rl}, nil
}

func (r *Readline) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		if len(line) == 0 {
			return "", io.EOF
		}
		// Interrupt with pending text discards the line and re-prompts.
		return "", nil
	case err == io.EOF:
		return "", io.EOF
	case err != nil:
		return "", &AccessError{Op: "read", Err: err}
	}
	return line, nil
}

func (r *Readline) Print(s string) error {
	if _, err := fmt.Fprint(r.rl.Stdout(), s); err != nil {
		return &AccessError{Op: "write", Err: err}
	}
	return nil
}

func (r *Readline) PrintLine(s string) error {
	return r.Print(s + "\n")
}

func (r *Readline) Close() error {
	return r.rl.Close()
}
