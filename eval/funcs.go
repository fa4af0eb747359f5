package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/valu/gomap"
	"github.com/signadot/valu/number"
	"github.com/signadot/valu/parse"
	"github.com/signadot/valu/value"
)

func builtins(ref *envRef) []expr.Option {
	return []expr.Option{
		expr.Function("kind", func(params ...any) (any, error) {
			v, err := gomap.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return v.Type().String(), nil
		},
			new(func(any) string)),
		expr.Function("number", func(params ...any) (any, error) {
			n, err := number.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(value.FromNumber(n)), nil
		},
			new(func(string) any)),
		expr.Function("isnull", func(params ...any) (any, error) {
			return params[0] == nil, nil
		},
			new(func(any) bool)),
		expr.Function("get", func(params ...any) (any, error) {
			v := ref.v.GetPath(value.ParsePath(params[0].(string))...)
			if v.IsUndefined() {
				return nil, fmt.Errorf("no value at %q", params[0])
			}
			return gomap.ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("parse", func(params ...any) (any, error) {
			v, err := parse.Parse([]byte(params[0].(string)), parse.ParseYAML())
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
