package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 1 && isCommand(args[1]) {
		switch args[1] {
		case "help":
			runHelp(args[2:], env)
		case "version":
			fmt.Fprintf(env.Stdout, "makedoc %s\n", Version)
		}
		return ExitSuccess
	}

	flags, positional, err := parseGenerateFlags(args[1:], env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	defer undo()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, positional, flags, env, logger); err != nil {
		// Failures past argument checks were already logged with their path
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(env.Stderr, usageMessage(err))
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a subcommand rather than an input file.
func isCommand(arg string) bool {
	switch arg {
	case "help", "version":
		return true
	}
	return false
}
