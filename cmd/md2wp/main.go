package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	os.Exit(run(context.Background(), os.Args[1:], env))
}

// run dispatches subcommands and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "publish":
		flags, positional, err := parsePublishFlags(args[1:])
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitUsage
		}
		if err := runPublish(ctx, positional, flags, defaultPublisherFactory, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version":
		fmt.Fprintf(env.Stdout, "md2wp %s\n", Version)
		return ExitSuccess

	case "help":
		if len(args) > 1 && args[1] == "publish" {
			printPublishUsage(env.Stdout)
		} else {
			printUsage(env.Stdout)
		}
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "unknown command: %q\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
