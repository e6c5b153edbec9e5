package main

import (
	"strings"
	"testing"
)

func TestRunDefaultPattern(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code wrong. expected=0, got=%d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "OR\n") {
		t.Fatalf("dump does not start with OR:\n%s", out)
	}
	if !strings.Contains(out, "OPT") || !strings.Contains(out, "CHAR c d") {
		t.Fatalf("dump missing expected nodes:\n%s", out)
	}
}

func TestRunExplicitPattern(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"a+"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code wrong. expected=0, got=%d", code)
	}
	expected := "NONZERO\n CHAR a b\n"
	if stdout.String() != expected {
		t.Fatalf("dump wrong.\nexpected=%q\ngot=%q", expected, stdout.String())
	}
}

func TestRunNoParse(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"("}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code wrong. expected=1, got=%d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "no expression") {
		t.Fatalf("stderr missing diagnosis: %q", stderr.String())
	}
}

func TestRunTrailingInput(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"a**"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code wrong. expected=1, got=%d", code)
	}
	if !strings.Contains(stdout.String(), "MANY") {
		t.Fatalf("dump missing parsed prefix:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), `"*"`) {
		t.Fatalf("stderr missing trailing input: %q", stderr.String())
	}
}

func TestRunQuiet(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-q", "abc"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code wrong. expected=0, got=%d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("quiet mode wrote to stdout: %q", stdout.String())
	}
}

func TestRunMaxDepth(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-max-depth", "8", "((((((((a))))))))"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code wrong. expected=1, got=%d", code)
	}
	if !strings.Contains(stderr.String(), "recursion") {
		t.Fatalf("stderr missing depth diagnosis: %q", stderr.String())
	}
}

func TestRunRequire(t *testing.T) {
	var stdout, stderr strings.Builder
	if code := run([]string{"-require", ">= 99.0.0", "-q", "a"}, &stdout, &stderr); code != 1 {
		t.Fatalf("unsatisfied constraint exit code wrong. expected=1, got=%d", code)
	}
	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"-require", ">= 0.1.0", "-q", "a"}, &stdout, &stderr); code != 0 {
		t.Fatalf("satisfied constraint exit code wrong. expected=0, got=%d (stderr: %s)",
			code, stderr.String())
	}
}

func TestRunTooManyArgs(t *testing.T) {
	var stdout, stderr strings.Builder
	if code := run([]string{"a", "b"}, &stdout, &stderr); code != 2 {
		t.Fatalf("usage error exit code wrong. expected=2, got=%d", code)
	}
}
