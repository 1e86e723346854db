package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	eval "github.com/havrydotdev/myclass/evaluator"
	"github.com/havrydotdev/myclass/internal/buildinfo"
	"github.com/havrydotdev/myclass/internal/logger"
	"github.com/havrydotdev/myclass/scanner"
)

const replHelp = `:names  list globals and variables
:help   show this help
:quit   leave (also Ctrl-D)`

// repl keeps one evaluator for the whole session so variables persist.
// Errors are printed and the loop goes on.
func (a *app) repl(in io.Reader, out io.Writer) error {
	th := newTheme(a.cfg.Color)
	e := eval.New(out, eval.WithEcho(true), eval.WithLogger(logger.L()))

	fmt.Fprintln(out, th.Banner.Render(fmt.Sprintf("Welcome to myclass (version %s)!", buildinfo.Version)))
	fmt.Fprintln(out, th.Help.Render("Type :help for commands."))

	lines := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, th.Prompt.Render(a.cfg.Prompt))
		if !lines.Scan() {
			fmt.Fprintln(out)
			return lines.Err()
		}

		line := strings.TrimSpace(lines.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q", "exit":
			return nil
		case ":help":
			fmt.Fprintln(out, th.Help.Render(replHelp))
			continue
		case ":names":
			fmt.Fprintln(out, strings.Join(e.Names(), " "))
			continue
		}

		if err := evalLine(e, line); err != nil {
			fmt.Fprintln(out, th.Error.Render("error: "+err.Error()))
		}
	}
}

func evalLine(e *eval.Evaluator, line string) error {
	tokens, err := scanner.New(line).Scan()
	if err != nil {
		return fmt.Errorf("scanning failed: %w", err)
	}

	stmts, errs := e.Parse(tokens)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return e.Run(stmts)
}
