package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/gomap"
	"github.com/signadot/valu/value"
)

var ErrEnv = errors.New("environment must be an object or null")

// Option configures compilation.
type Option func(*config)

type config struct {
	exprOpts []expr.Option
}

// AsBool requires the expression to produce a boolean.
func AsBool() Option {
	return func(c *config) { c.exprOpts = append(c.exprOpts, expr.AsBool()) }
}

// AllowUndefined lets the expression reference variables missing from
// the environment; they evaluate to nil.
func AllowUndefined() Option {
	return func(c *config) { c.exprOpts = append(c.exprOpts, expr.AllowUndefinedVariables()) }
}

// WithFunction adds a function callable from expressions. types are
// optional signatures as accepted by expr.Function.
func WithFunction(name string, fn func(params ...any) (any, error), types ...any) Option {
	return func(c *config) { c.exprOpts = append(c.exprOpts, expr.Function(name, fn, types...)) }
}

// Program is a compiled expression.
type Program struct {
	src string
	prg *vm.Program
	env *envRef
}

// envRef carries the environment of the current run to functions bound
// at compile time.
type envRef struct {
	v value.Value
}

// Compile compiles src.
func Compile(src string, opts ...Option) (*Program, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	ref := &envRef{}
	eopts := append(builtins(ref), cfg.exprOpts...)
	prg, err := expr.Compile(src, eopts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Program{src: src, prg: prg, env: ref}, nil
}

// Run evaluates p with the members of env as variables. A Program must
// not be run concurrently.
func (p *Program) Run(env value.Value) (value.Value, error) {
	vars := map[string]any{}
	switch {
	case env.IsObject():
		vars = gomap.ToAny(env).(map[string]any)
	case env.IsNull() || env.IsUndefined():
	default:
		return value.Value{}, fmt.Errorf("%w, got %s", ErrEnv, env.Type())
	}
	p.env.v = env
	defer func() { p.env.v = value.Value{} }()
	res, err := vm.Run(p.prg, vars)
	if err != nil {
		return value.Value{}, fmt.Errorf("eval %q: %w", p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", p.src, res)
	}
	return fromResult(res)
}

// Eval compiles and runs src in one step.
func Eval(src string, env value.Value, opts ...Option) (value.Value, error) {
	p, err := Compile(src, opts...)
	if err != nil {
		return value.Value{}, err
	}
	return p.Run(env)
}

func fromResult(res any) (value.Value, error) {
	if v, ok := res.(value.Value); ok {
		return v, nil
	}
	return gomap.FromAny(res)
}
