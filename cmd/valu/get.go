package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/value"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	keys := value.ParsePath(args[0])
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc value.Value, file string) error {
		res := doc.GetPath(keys...)
		if res.IsUndefined() {
			return fmt.Errorf("nothing at %q", args[0])
		}
		return cfg.encode(cc.Out, res, file)
	})
}
