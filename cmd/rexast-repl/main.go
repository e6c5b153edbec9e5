// rexast-repl is an interactive loop for exploring pattern syntax
// trees: it reads one pattern per line and prints the parsed tree.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/rexlab/rexast/internal/ast"
	"github.com/rexlab/rexast/internal/cli"
	"github.com/rexlab/rexast/internal/parser"
)

const (
	historyName = ".rexast_history"
	prompt      = "rex> "
)

var helpText = `REPL commands:
  :help, :h    Show this help
  :quit, :q    Exit the REPL
Any other line is parsed as a pattern and its tree is printed.`

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		maxDepth    = flag.Int("max-depth", parser.DefaultMaxDepth, "recursion depth limit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rexast-repl [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Interactive pattern syntax tree explorer.\n")
		fmt.Fprintf(os.Stderr, "Ctrl+C cancels the current line, Ctrl+D exits.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		cli.PrintVersion("rexast-repl", *jsonOutput)
		return
	}

	fmt.Printf("rexast %s — type :help for commands, Ctrl+D to exit\n", cli.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyName)

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

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return
			case ":help", ":h":
				fmt.Println(helpText)
			default:
				fmt.Println("unknown command, type :help")
			}
			continue
		}

		ln.AppendHistory(line)
		eval(line, *maxDepth)
	}
}

// eval parses one pattern and prints the outcome.
func eval(pattern string, maxDepth int) {
	p := parser.New(pattern)
	p.SetMaxDepth(maxDepth)
	res, err := p.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if res.Root == nil {
		fmt.Println("(no expression)")
		return
	}
	fmt.Print(ast.Render(res.Root))
	if res.Rest != "" {
		fmt.Printf("(trailing input not parsed: %q)\n", res.Rest)
	}
}
