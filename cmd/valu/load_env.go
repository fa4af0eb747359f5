package main

import (
	"fmt"

	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/parse"
)

// EnvEnv names the environment variable holding a YAML object used as
// the base eval environment. -e settings apply on top of it.
const EnvEnv = "VALU_ENV"

func loadEnv(text string) ([]envSetting, error) {
	if text == "" {
		return nil, nil
	}
	v, err := parse.Parse([]byte(text), parse.ParseYAML())
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %s", EnvEnv, v.Type())
	}
	res := make([]envSetting, 0, obj.Len())
	for k, e := range obj.All() {
		res = append(res, envSetting{path: []string{k}, val: e})
	}
	if debug.LoadEnv() {
		debug.Logf("loaded env from $%s: %s\n", EnvEnv, v)
	}
	return res, nil
}
