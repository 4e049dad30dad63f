package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
	"k8s.io/klog/v2"

	docfmt "github.com/alnah/go-docfmt"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnsupportedCommand variants for the dispatcher.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	verbose := hasVerboseFlag(os.Args[1:])
	initLogging(verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	err := run(context.Background(), os.Args[1:], DefaultDeps())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}

// run dispatches the subcommand.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ErrUnknownCommand
	}

	switch args[0] {
	case "compile":
		flags, positional, err := parseCompileFlags(args[1:])
		if err != nil {
			return err
		}
		return runCompile(ctx, positional, flags, deps)

	case "check":
		flags, positional, err := parseCheckFlags(args[1:])
		if err != nil {
			return err
		}
		return runCheck(positional, flags, deps)

	case "specs":
		for _, name := range docfmt.BuiltinSpecNames() {
			fmt.Fprintln(deps.Stdout, name)
		}
		return nil

	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "docfmt %s\n", Version)
		return nil

	case "help", "--help", "-h":
		runHelp(args[1:], deps)
		return nil

	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

// runHelp prints help for a specific command, or general usage.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}
	switch args[0] {
	case "compile":
		printCompileUsage(deps.Stdout)
	case "check":
		printCheckUsage(deps.Stdout)
	default:
		printUsage(deps.Stdout)
	}
}

// hasVerboseFlag peeks at the raw args before full flag parsing so logging
// can be configured first.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
		// grouped short flags like -qv
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && strings.Contains(arg, "v") {
			return true
		}
	}
	return false
}

// initLogging wires klog to stderr; verbose mode enables the library's
// phase-level log lines.
func initLogging(verbose bool) {
	fs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "true")
	if verbose {
		_ = fs.Set("v", "4")
	}
}
