package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/libdiff"
	"github.com/signadot/valu/patch"
	"github.com/signadot/valu/value"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	if cfg.Merge && cfg.Diff {
		return fmt.Errorf("%w: at most one of -merge and -diff", cli.ErrUsage)
	}
	p, err := readOne(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	apply := patch.Apply
	switch {
	case cfg.Merge:
		apply = patch.Merge
	case cfg.Diff:
		apply = libdiff.Patch
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc value.Value, file string) error {
		res, err := apply(doc, p)
		if err != nil {
			return err
		}
		return cfg.encode(cc.Out, res, file)
	})
}
