package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-txt2pdf/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML. It accepts the
// convert flags, so the output shows exactly what convert would use.
func runConfigCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConfigUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyInputs, len(positional))
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}
	cfg.Input.Path = resolveInputPath(positional, cfg)
	cfg.Output.Path = resolveOutputPath(cfg.Input.Path, cfg)

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
