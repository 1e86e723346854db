package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	eval "github.com/havrydotdev/myclass/evaluator"
	"github.com/havrydotdev/myclass/expr"
	"github.com/havrydotdev/myclass/internal/logger"
	"github.com/havrydotdev/myclass/parser"
	"github.com/havrydotdev/myclass/scanner"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			logger.L().Info("run.file", "path", args[0], "bytes", len(text))
			return a.evaluate(cmd.OutOrStdout(), string(text), false)
		},
	}
}

func evalCmd(a *app) *cobra.Command {
	var quiet bool

	c := &cobra.Command{
		Use:   "eval SOURCE",
		Short: "Evaluate source text and print each expression result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.evaluate(cmd.OutOrStdout(), args[0], !quiet)
		},
	}

	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not echo expression results")
	return c
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse SOURCE",
		Short: "Print the parenthesized form of each declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := scanner.New(args[0]).Scan()
			if err != nil {
				return err
			}

			stmts, errs := parser.New(tokens, expr.NewPrinter()).Parse()
			if len(errs) > 0 {
				return errors.Join(errs...)
			}

			for _, stmt := range stmts {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), stmt.Print()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// evaluate scans, parses and runs source with a fresh evaluator.
// Every parse error is reported; evaluation stops at the first runtime error.
func (a *app) evaluate(w io.Writer, source string, echo bool) error {
	tokens, err := scanner.New(source).Scan()
	if err != nil {
		return fmt.Errorf("scanning failed: %w", err)
	}

	e := eval.New(w, eval.WithEcho(echo), eval.WithLogger(logger.L()))

	stmts, errs := e.Parse(tokens)
	if len(errs) > 0 {
		logger.L().Warn("parse.failed", "errors", len(errs))
		return errors.Join(errs...)
	}

	if err := e.Run(stmts); err != nil {
		logger.L().Warn("eval.failed", "err", err)
		return err
	}

	return nil
}
