package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun - Subcommand dispatch
// ---------------------------------------------------------------------------

func TestRun_Specs(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	if err := run(context.Background(), []string{"specs"}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	for _, name := range []string{"generic", "academic-cn"} {
		if !strings.Contains(out, name) {
			t.Errorf("specs output %q missing %q", out, name)
		}
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"version", "--version"} {
		deps, stdout, _ := testDeps()
		if err := run(context.Background(), []string{arg}, deps); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "docfmt "+Version) {
			t.Errorf("version output = %q", stdout.String())
		}
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "general help", args: []string{"help"}, want: "Usage"},
		{name: "compile help", args: []string{"help", "compile"}, want: "compile"},
		{name: "check help", args: []string{"help", "check"}, want: "check"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps, stdout, _ := testDeps()
			if err := run(context.Background(), tt.args, deps); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("help output = %q, want containing %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps()
	err := run(context.Background(), []string{"frobnicate"}, deps)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
	if stderr.Len() == 0 {
		t.Error("usage not printed for unknown command")
	}
}

func TestRun_NoArguments(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps()
	if err := run(context.Background(), nil, deps); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
	if stderr.Len() == 0 {
		t.Error("usage not printed")
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Pre-parse peeking
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"compile", "-v", "a.md"}, true},
		{[]string{"compile", "--verbose"}, true},
		{[]string{"compile", "-qv"}, true},
		{[]string{"compile", "a.md"}, false},
		{[]string{"--version"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags - pflag wiring
// ---------------------------------------------------------------------------

func TestParseCompileFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseCompileFlags([]string{
		"-o", "out.docx", "-s", "academic-cn", "--no-toc", "--max-fix-iterations", "5", "paper.md",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags.output != "out.docx" || flags.spec.name != "academic-cn" {
		t.Errorf("flags = %+v", flags)
	}
	if !flags.layout.noTOC || flags.fix.maxIterations != 5 {
		t.Errorf("flags = %+v", flags)
	}
	if len(positional) != 1 || positional[0] != "paper.md" {
		t.Errorf("positional = %v", positional)
	}
}

func TestParseCheckFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseCheckFlags([]string{"--strict", "-v", "paper.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flags.strict || !flags.common.verbose {
		t.Errorf("flags = %+v", flags)
	}
	if len(positional) != 1 || positional[0] != "paper.md" {
		t.Errorf("positional = %v", positional)
	}
}
