// rexast parses a pattern into its syntax tree and prints the tree.
//
// Usage:
//
//	rexast [OPTIONS] [pattern]
//
// When no pattern argument is given, the built-in default pattern
// c|d(f?|g) is parsed. Exit status is 0 for a complete parse and 1
// when no tree is produced or trailing input is left unconsumed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rexlab/rexast/internal/ast"
	"github.com/rexlab/rexast/internal/cli"
	"github.com/rexlab/rexast/internal/parser"
)

// defaultPattern is parsed when no argument is supplied.
const defaultPattern = "c|d(f?|g)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rexast", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		showVersion = fs.Bool("version", false, "show version information")
		jsonOutput  = fs.Bool("json", false, "output version in JSON format")
		quiet       = fs.Bool("q", false, "suppress the tree dump, report via exit status only")
		maxDepth    = fs.Int("max-depth", parser.DefaultMaxDepth, "recursion depth limit")
		require     = fs.String("require", "", "exit non-zero unless the tool version satisfies this semver constraint")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rexast [OPTIONS] [pattern]\n\n")
		fmt.Fprintf(stderr, "Parse a pattern into its syntax tree and print the tree.\n")
		fmt.Fprintf(stderr, "Without a pattern argument, %q is parsed.\n\n", defaultPattern)
		fmt.Fprintf(stderr, "OPTIONS:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		cli.PrintVersion("rexast", *jsonOutput)
		return 0
	}

	if *require != "" {
		if err := cli.CheckVersionConstraint(*require); err != nil {
			fmt.Fprintf(stderr, "rexast: %v\n", err)
			return 1
		}
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	pattern := defaultPattern
	if fs.NArg() == 1 {
		pattern = fs.Arg(0)
	}

	p := parser.New(pattern)
	p.SetMaxDepth(*maxDepth)
	res, err := p.Parse()
	if err != nil {
		fmt.Fprintf(stderr, "rexast: %v\n", err)
		return 1
	}
	if res.Root == nil {
		fmt.Fprintf(stderr, "rexast: no expression in %q\n", pattern)
		return 1
	}

	if !*quiet {
		if err := ast.Fprint(stdout, res.Root); err != nil {
			fmt.Fprintf(stderr, "rexast: %v\n", err)
			return 1
		}
	}

	if res.Rest != "" {
		fmt.Fprintf(stderr, "rexast: trailing input not parsed: %q\n", res.Rest)
		return 1
	}
	return 0
}
