package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/format"
	"github.com/signadot/valu/value"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(value.Type, ColorAttr, string) string
}

// Encode writes v to w in the selected format, JSON by default. Output
// ends with a newline unless it is wire encoded.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %s wire=%t %s\n", es.format, es.wire, v.Type())
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t value.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeSep(w io.Writer, es *EncState, t value.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func encodeJSON(v value.Value, w io.Writer, es *EncState) error {
	switch v.Type() {
	case value.ObjectType:
		return encodeObject(v, w, es)
	case value.ArrayType:
		return encodeArray(v, w, es)
	case value.StringType:
		s, _ := v.AsString()
		return writeString(w, applyColor(es, value.StringType, ValueColor, string(value.AppendQuoted(nil, s))))
	case value.DateTimeType:
		d, _ := v.AsDateTime()
		return writeString(w, applyColor(es, value.DateTimeType, ValueColor, string(value.AppendQuoted(nil, d.String()))))
	case value.NumberType:
		n, _ := v.AsNumber()
		return writeString(w, applyColor(es, value.NumberType, ValueColor, value.NumberJSON(n)))
	case value.BooleanType, value.NullType:
		return writeString(w, applyColor(es, v.Type(), ValueColor, v.String()))
	case value.UndefinedType:
		return writeString(w, applyColor(es, value.UndefinedType, ValueColor, "null"))
	}
	return fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type())
}

func encodeObject(v value.Value, w io.Writer, es *EncState) error {
	obj, _ := v.AsObject()
	if err := writeSep(w, es, value.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	n := 0
	for k, e := range obj.All() {
		if e.IsUndefined() {
			continue
		}
		if n > 0 {
			if err := writeSep(w, es, value.ObjectType, ","); err != nil {
				return err
			}
		}
		n++
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := applyColor(es, value.ObjectType, FieldColor, string(value.AppendQuoted(nil, k)))
		if err := writeString(w, field); err != nil {
			return err
		}
		sep := ":"
		if !es.wire {
			sep = ": "
		}
		if err := writeSep(w, es, value.ObjectType, sep); err != nil {
			return err
		}
		if err := encodeJSON(e, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, value.ObjectType, "}")
}

func encodeArray(v value.Value, w io.Writer, es *EncState) error {
	arr, _ := v.AsArray()
	if err := writeSep(w, es, value.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, e := range arr {
		if i > 0 {
			if err := writeSep(w, es, value.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(e, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(arr) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, value.ArrayType, "]")
}
