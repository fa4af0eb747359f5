// Package parse reads JSON and YAML text into values.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/format"
	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

// Parse reads a single document from d, JSON by default. Numbers are
// classified by number.Parse and object key order is kept.
func Parse(d []byte, opts ...ParseOption) (value.Value, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res value.Value
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	default:
		return value.Value{}, fmt.Errorf("%w: unsupported format %s", ErrParse, pOpts.format)
	}
	if err != nil {
		return value.Value{}, err
	}
	if pOpts.dateTimes {
		res = res.Walk(toDateTime)
	}
	if debug.Parse() {
		debug.Logf("parsed %s %s\n", pOpts.format, res)
	}
	return res, nil
}

func parseJSON(d []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := value.ReadJSON(dec)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return value.Value{}, ErrTrailer
	}
	return res, nil
}

func parseYAML(d []byte) (value.Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(d, &x, yaml.UseOrderedMap()); err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(x)
}

func fromYAML(x any) (value.Value, error) {
	switch y := x.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(y), nil
	case string:
		return value.FromString(y), nil
	case int:
		return parseNumber(strconv.FormatInt(int64(y), 10))
	case int64:
		return parseNumber(strconv.FormatInt(y, 10))
	case uint64:
		return parseNumber(strconv.FormatUint(y, 10))
	case float64:
		return value.FromNumber(number.FromF64(y)), nil
	case time.Time:
		return value.FromTime(y), nil
	case []any:
		arr := make(value.Array, len(y))
		for i, e := range y {
			v, err := fromYAML(e)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = v
		}
		return value.FromArray(arr), nil
	case yaml.MapSlice:
		obj := value.NewObject()
		for _, item := range y {
			v, err := fromYAML(item.Value)
			if err != nil {
				return value.Value{}, err
			}
			obj.Insert(yamlKey(item.Key), v)
		}
		return value.FromObject(obj), nil
	case map[string]any:
		return value.Value{}, fmt.Errorf("%w: unordered mapping", ErrParse)
	}
	return value.Value{}, fmt.Errorf("%w: unsupported YAML value %T", ErrParse, x)
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	}
	return fmt.Sprint(k)
}

func parseNumber(s string) (value.Value, error) {
	n, err := number.Parse(s)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return value.FromNumber(n), nil
}

func toDateTime(v value.Value) value.Value {
	s, ok := v.AsString()
	if !ok {
		return v
	}
	d, err := datetime.Parse(s)
	if err != nil {
		return v
	}
	return value.FromDateTime(d)
}
