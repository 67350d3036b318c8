package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Jeff-Rowell/Expression-Tree/history"
	"github.com/Jeff-Rowell/Expression-Tree/logging"
	"github.com/Jeff-Rowell/Expression-Tree/notation"
)

type config struct {
	legacy bool
	repl   bool

	historyPath string
	logLevel    string
	logFormat   string
}

func (c *config) mode() notation.Mode {
	if c.legacy {
		return notation.Legacy
	}

	return notation.Standard
}

func (c *config) store() *history.Store {
	if c.historyPath == "" {
		return nil
	}

	return history.Open(c.historyPath)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "exprtree",
		Short: "Convert a single-digit infix expression to prefix notation and evaluate it",
		Long: `exprtree reads an infix expression such as (1+2)*3 from standard input,
prints its prefix form and the value of the expression tree built from it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Configure(cmd.ErrOrStderr(), cfg.logLevel, cfg.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return calculate(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.legacy, "legacy", false, "reproduce the historical output layout and operator associativity")
	cmd.Flags().BoolVar(&cfg.repl, "repl", false, "evaluate lines until end of input")
	cmd.PersistentFlags().StringVar(&cfg.historyPath, "history", envOr("EXPRTREE_HISTORY", ""), "append evaluations to this JSON-lines file")
	cmd.PersistentFlags().StringVar(&cfg.logLevel, "log-level", envOr("EXPRTREE_LOG_LEVEL", "warn"), "verbosity of logging (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&cfg.logFormat, "log-format", "auto", `format of logs ("auto", "console", "json")`)

	cmd.AddCommand(newHistoryCmd(cfg))

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

func calculate(in io.Reader, out io.Writer, cfg *config) error {
	s := &session{
		mode:    cfg.mode(),
		history: cfg.store(),
	}

	interactive := isTerminal(in)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	if !cfg.repl {
		// the historical program prompts even when input is piped
		if interactive || cfg.legacy {
			fmt.Fprint(out, promptMessage)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return errors.New("no expression given")
		}

		return s.run(out, scanner.Text())
	}

	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		if err := s.run(out, scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func newHistoryCmd(cfg *config) *cobra.Command {
	var (
		limit int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recorded evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := cfg.store()
			if s == nil {
				return errors.New("no history file configured, use --history or EXPRTREE_HISTORY")
			}

			if clearAll {
				logging.Info().Str("path", cfg.historyPath).Msg("clearing history")
				return s.Clear()
			}

			entries, err := s.Tail(limit)
			if err != nil {
				return err
			}

			return printHistory(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent entries (0 shows all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "remove every recorded entry")

	return cmd
}

func printHistory(w io.Writer, entries []*history.Entry) error {
	for _, e := range entries {
		outcome := e.Result
		if e.Err != "" {
			outcome = "error: " + e.Err
		}

		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Time.Format(time.RFC3339), e.Mode, e.Input, e.Prefix, outcome)
		if err != nil {
			return err
		}
	}

	return nil
}
