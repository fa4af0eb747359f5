package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

func numberCmd(cfg *NumberConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Number.Parse(cc, args)
	if err != nil {
		cfg.Number.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: number requires at least one argument", cli.ErrUsage)
	}
	var as number.Type
	if cfg.As != "" {
		if err := as.UnmarshalText([]byte(cfg.As)); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		var n number.Number
		if as == number.UnknownType {
			n, err = number.Parse(arg)
		} else {
			n, err = number.ParseAs(as, arg)
		}
		if err != nil {
			return err
		}
		if err := cfg.encode(cc.Out, numberReport(arg, n), ""); err != nil {
			return err
		}
	}
	return nil
}

// numberReport describes n: its kind, sign predicates and the canonical
// forms it converts to.
func numberReport(text string, n number.Number) value.Value {
	obj := value.NewObject()
	obj.Insert("text", value.FromString(text))
	obj.Insert("kind", value.FromString(n.Type().String()))
	obj.Insert("value", value.FromNumber(n))
	obj.Insert("zero", value.FromBool(n.IsZero()))
	obj.Insert("positive", value.FromBool(n.IsPositive()))
	obj.Insert("negative", value.FromBool(n.IsNegative()))
	canon := value.NewObject()
	if i, ok := n.ToI64(); ok {
		canon.Insert("i64", value.FromNumber(number.FromI64(i)))
	}
	if u, ok := n.ToU64(); ok {
		canon.Insert("u64", value.FromNumber(number.FromU64(u)))
	}
	if f, ok := n.ToF64(); ok {
		canon.Insert("f64", value.FromNumber(number.FromF64(f)))
	}
	if b, ok := n.ToBig(); ok {
		canon.Insert("big", value.FromString(b.String()))
	}
	obj.Insert("canonical", value.FromObject(canon))
	return value.FromObject(obj)
}
