package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/signadot/valu/value"
)

// yamlNumber is written as-is so that every numeric kind keeps its text.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

var _ yaml.BytesMarshaler = yamlNumber("")

func encodeYAML(v value.Value, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(toYAML(v),
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
		yaml.Flow(es.wire),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.wire && len(d) > 0 && d[len(d)-1] == '\n' {
		d = d[:len(d)-1]
	}
	return writeString(w, string(d))
}

// toYAML converts v into values goccy/go-yaml encodes in order.
func toYAML(v value.Value) any {
	switch v.Type() {
	case value.NullType, value.UndefinedType:
		return nil
	case value.BooleanType:
		b, _ := v.AsBool()
		return b
	case value.NumberType:
		n, _ := v.AsNumber()
		f, _ := n.ToF64()
		switch {
		case math.IsNaN(f):
			return yamlNumber(".nan")
		case math.IsInf(f, 1):
			return yamlNumber(".inf")
		case math.IsInf(f, -1):
			return yamlNumber("-.inf")
		}
		return yamlNumber(value.NumberJSON(n))
	case value.StringType:
		s, _ := v.AsString()
		return s
	case value.DateTimeType:
		d, _ := v.AsDateTime()
		return d.String()
	case value.ArrayType:
		arr, _ := v.AsArray()
		res := make([]any, len(arr))
		for i, e := range arr {
			res[i] = toYAML(e)
		}
		return res
	case value.ObjectType:
		obj, _ := v.AsObject()
		res := yaml.MapSlice{}
		for k, e := range obj.All() {
			if e.IsUndefined() {
				continue
			}
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(e)})
		}
		return res
	}
	return nil
}
