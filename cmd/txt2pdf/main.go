package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags  = errors.New("invalid flags")
	ErrTooManyInputs = errors.New("only one input file may be given")
)

// commands lists the subcommands; anything else runs convert.
var commands = map[string]bool{
	"convert":         true,
	"doctor":          true,
	"install-browser": true,
	"config":          true,
	"version":         true,
	"help":            true,
}

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(verboseLogger(os.Args, env)))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// verboseLogger prints through env.Stderr when -v/--verbose is present,
// and discards otherwise.
func verboseLogger(args []string, env *Environment) func(string, ...interface{}) {
	if !hasVerboseFlag(args) {
		return func(string, ...interface{}) {}
	}
	return func(format string, a ...interface{}) {
		fmt.Fprintf(env.Stderr, format+"\n", a...)
	}
}

func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches args[1:] and returns the process exit code.
// Without a subcommand, the arguments go to convert.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]
	if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	cmd := "convert"
	if len(rest) > 0 && isCommand(rest[0]) {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "txt2pdf %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "install-browser":
		return reportError(env, runInstallBrowser(ctx, rest, env))
	case "config":
		return reportError(env, runConfigCmd(rest, env))
	default:
		return runConvertCmd(ctx, rest, env)
	}
}

// reportError prints err with its hints and maps it to an exit code.
func reportError(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}
