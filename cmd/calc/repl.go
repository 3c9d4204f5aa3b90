package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/replkit/internal/calc"
	"github.com/sandevgo/replkit/internal/config"
	"github.com/sandevgo/replkit/pkg/log"
	"github.com/sandevgo/replkit/pkg/repl"
	"github.com/sandevgo/replkit/pkg/terminal"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Long:  `Opens a readline-backed session over stdin/stdout. Type "help" for the command list and "quit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg := config.NewAppConfig(ctx)

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, cfg.Debug)
		defer flushLog()

		logger := log.FromCtx(ctx)

		term, err := terminal.NewReadline(terminal.ReadlineConfig{
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.HistoryFile,
			Completions: calc.Names(),
		})
		if err != nil {
			return err
		}
		defer term.Close()

		commander, err := repl.NewCommander(calc.Parsers()...)
		if err != nil {
			return err
		}

		register := &calc.Register{}
		looper := repl.NewLooper(term, commander, register)
		logger.Info().Str("session_id", looper.SessionID()).Msg("calculator session starting")

		if err := looper.Run(ctx); err != nil {
			return err
		}
		logger.Info().Msg("calculator session ended")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
