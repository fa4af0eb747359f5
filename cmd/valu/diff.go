package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/libdiff"
	"github.com/signadot/valu/patch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readOne(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readOne(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d, changed := libdiff.Diff(a, b)
	if !changed {
		return nil
	}
	if cfg.Quiet {
		theLog.Info("inputs differ", "a", args[0], "b", args[1])
		return cli.ExitCodeErr(1)
	}
	switch {
	case cfg.Merge:
		from, to := a, b
		if cfg.Reverse {
			from, to = b, a
		}
		d, err = patch.CreateMerge(from, to)
		if err != nil {
			return err
		}
	case cfg.Reverse:
		d, err = libdiff.Reverse(d)
		if err != nil {
			return fmt.Errorf("error reversing: %w", err)
		}
	}
	if err := cfg.encode(cc.Out, d, args[0]); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
