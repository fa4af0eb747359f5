package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/value"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc value.Value, file string) error {
		return cfg.encode(cc.Out, doc, file)
	})
}
