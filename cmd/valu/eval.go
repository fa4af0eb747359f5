package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/eval"
	"github.com/signadot/valu/gomap"
	"github.com/signadot/valu/value"
)

// envSetting is one -e path=val argument.
type envSetting struct {
	path []string
	val  value.Value
}

func envFunc(a string) (envSetting, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return envSetting{}, fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return envSetting{}, err
	}
	vv, err := gomap.FromAny(v)
	if err != nil {
		return envSetting{}, err
	}
	return envSetting{path: strings.Split(key, "."), val: vv}, nil
}

// apply sets s in env, creating intermediate objects.
func (s envSetting) apply(env value.Value) (value.Value, error) {
	if len(s.path) == 0 {
		return s.val, nil
	}
	if env.IsNull() || env.IsUndefined() {
		env = value.FromObject(value.NewObject())
	}
	if !env.IsObject() {
		return value.Value{}, fmt.Errorf("cannot set %s in %s", strings.Join(s.path, "."), env.Type())
	}
	head := value.Key(s.path[0])
	sub, err := envSetting{path: s.path[1:], val: s.val}.apply(env.Get(head))
	if err != nil {
		return value.Value{}, fmt.Errorf("%s.%w", s.path[0], err)
	}
	if err := env.Set(head, sub); err != nil {
		return value.Value{}, err
	}
	return env, nil
}

func (cfg *EvalConfig) env(doc value.Value) (value.Value, error) {
	env := doc.Clone()
	var err error
	for _, s := range cfg.Env {
		env, err = s.apply(env)
		if err != nil {
			return value.Value{}, err
		}
	}
	return env, nil
}

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	base, err := loadEnv(os.Getenv(EnvEnv))
	if err != nil {
		return err
	}
	cfg.Env = append(base, cfg.Env...)
	if cfg.Expand {
		return eachDoc(cfg.MainConfig, cc, args, func(doc value.Value, file string) error {
			env, err := cfg.env(doc)
			if err != nil {
				return err
			}
			res, err := eval.Expand(doc, env)
			if err != nil {
				return err
			}
			return cfg.encode(cc.Out, res, file)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return err
	}
	run := func(doc value.Value, file string) error {
		env, err := cfg.env(doc)
		if err != nil {
			return err
		}
		res, err := prg.Run(env)
		if err != nil {
			return err
		}
		return cfg.encode(cc.Out, res, file)
	}
	if len(args) == 1 {
		return run(value.Null(), "")
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], run)
}
