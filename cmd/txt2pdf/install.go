package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// runInstallBrowser downloads the managed Chromium build. It is the only
// command that fetches anything; convert never does.
func runInstallBrowser(ctx context.Context, args []string, env *Environment) error {
	fs := flag.NewFlagSet("install-browser", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	quiet := fs.BoolP("quiet", "q", false, "hide download progress")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printInstallUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, fs.Arg(0))
	}

	progress := env.Stderr
	if *quiet {
		progress = io.Discard
	}

	path, err := env.Install(ctx, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Browser installed: %s\n", path)
	fmt.Fprintln(env.Stdout, "Run txt2pdf again to convert with Chrome.")
	return nil
}
