// Command minimatic is an interactive front end for the evaluation core:
// it reads Head(arg, ...) trees, reduces them against a persistent Context
// with the standard builtins installed, and prints the canonical rendering.
// Stuck terms are printed like any other result, marked when verbose.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	minimatic "github.com/gabrielebaez/minimatic"
)

const (
	appName     = "minimatic"
	historyFile = ".minimatic_history"
	prompt      = "==> "

	// maxLineBytes caps a single batch input line. Generated trees can run
	// far past bufio.Scanner's default 64 KiB token limit.
	maxLineBytes = 16 * 1024 * 1024
)

const usage = `minimatic - evaluator for symbolic expression trees.

Usage:
  minimatic [--policy=<mode>] [--eval=<expr>] [<file>]
  minimatic -h | --help
  minimatic --version

Options:
  -e --eval=<expr>  Evaluate a single expression and exit.
  --policy=<mode>   Unbound-symbol policy: error or keep [default: error].
  -h --help         Show this screen.
  --version         Show the version.
`

type session struct {
	ev  *minimatic.Evaluator
	ctx *minimatic.Context
}

func newSession(policy string) (*session, error) {
	ev := minimatic.NewEvaluator()
	switch policy {
	case "", "error":
		ev.Policy = minimatic.SymbolError
	case "keep":
		ev.Policy = minimatic.SymbolKeep
	default:
		return nil, fmt.Errorf("unknown policy %q (want error or keep)", policy)
	}
	ctx := minimatic.NewContext()
	minimatic.RegisterStandard(ctx)
	return &session{ev: ev, ctx: ctx}, nil
}

// evalLine reads and reduces one input line; comments and blanks yield "".
func (s *session) evalLine(line string) (string, error) {
	code := strings.TrimSpace(line)
	if code == "" || strings.HasPrefix(code, "#") {
		return "", nil
	}
	el, err := readElement(code)
	if err != nil {
		return "", err
	}
	r, err := s.ev.Reduce(el, s.ctx)
	if err != nil {
		return "", err
	}
	return minimatic.FormatElement(r.Elem), nil
}

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], minimatic.Version)
	if err != nil {
		os.Exit(2)
	}

	policy, _ := opts.String("--policy")
	s, err := newSession(policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(2)
	}

	if expr, ok := evalFlag(opts); ok {
		out, err := s.evalLine(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	if file, _ := opts.String("<file>"); file != "" {
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			os.Exit(1)
		}
		defer f.Close()
		os.Exit(runBatch(s, f))
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		os.Exit(runRepl(s))
	}
	os.Exit(runBatch(s, os.Stdin))
}

// evalFlag reports whether --eval was supplied, distinguishing an absent
// flag (nil in the option map) from an explicit empty string.
func evalFlag(opts docopt.Opts) (string, bool) {
	v, ok := opts["--eval"]
	if !ok || v == nil {
		return "", false
	}
	expr, _ := v.(string)
	return expr, true
}

func runBatch(s *session, in io.Reader) int {
	code := 0
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		out, err := s.evalLine(sc.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			code = 1
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return code
}

func runRepl(s *session) int {
	fmt.Printf("minimatic %s\nCtrl+D exits. Type :quit to exit.\n", minimatic.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}

		if strings.TrimSpace(line) == ":quit" {
			return 0
		}

		out, err := s.evalLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		if out != "" {
			fmt.Println(out)
			ln.AppendHistory(line)
		}
	}
}
