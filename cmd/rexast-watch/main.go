// rexast-watch watches a pattern file and reprints its syntax tree on
// every change.
//
// Usage:
//
//	rexast-watch [OPTIONS] <file>
//
// The first line of the file is the pattern. The tool parses and
// dumps it immediately, then re-parses on every write until
// interrupted.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rexlab/rexast/internal/ast"
	"github.com/rexlab/rexast/internal/cli"
	"github.com/rexlab/rexast/internal/parser"
	"github.com/rexlab/rexast/internal/watch"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		verbose     = flag.Bool("verbose", false, "log watch events")
		maxDepth    = flag.Int("max-depth", parser.DefaultMaxDepth, "recursion depth limit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rexast-watch [OPTIONS] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Watch a pattern file and reprint its syntax tree on every change.\n")
		fmt.Fprintf(os.Stderr, "The first line of the file is the pattern.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		cli.PrintVersion("rexast-watch", *jsonOutput)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := cli.NewLogger(*verbose, false)

	w, err := watch.New()
	if err != nil {
		cli.ExitWithError("cannot start watcher: %v", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		cli.ExitWithError("cannot watch %s: %v", path, err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	dumpFile(path, *maxDepth, logger)

	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return
			}
			logger.Debug("event on %s", ev.Path)
			if ev.Op.Gone() {
				logger.Warn("%s disappeared, waiting for it to return", path)
				// Editors often replace files on save; re-adding
				// picks the new inode up.
				_ = w.Add(path)
				continue
			}
			if ev.Op.Changed() {
				logger.Info("%s changed", path)
				dumpFile(path, *maxDepth, logger)
			}
		case err := <-w.Errors():
			logger.Error("watch error: %v", err)
		case <-sigc:
			fmt.Println()
			return
		}
	}
}

// dumpFile reads the pattern from the first line of path, parses it,
// and prints the tree or the failure.
func dumpFile(path string, maxDepth int, logger *cli.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("cannot read %s: %v", path, err)
		return
	}
	pattern, _, _ := strings.Cut(string(data), "\n")

	p := parser.New(pattern)
	p.SetMaxDepth(maxDepth)
	res, err := p.Parse()
	if err != nil {
		logger.Error("%v", err)
		return
	}

	fmt.Printf("-- %q --\n", pattern)
	if res.Root == nil {
		fmt.Println("(no expression)")
		return
	}
	fmt.Print(ast.Render(res.Root))
	if res.Rest != "" {
		fmt.Printf("(trailing input not parsed: %q)\n", res.Rest)
	}
}
