package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/valu/number"
)

// MarshalJSON writes v as compact JSON. Undefined object members are
// omitted and undefined array elements are written as null. Date-times
// are written as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, v, "", 0), nil
}

// UnmarshalJSON reads a single JSON document, keeping object key order.
// Numbers are classified with number.Parse.
func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := ReadJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("trailing data after JSON value")
	}
	*v = res
	return nil
}

// ReadJSON reads the next JSON value from dec.
func ReadJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return readJSONToken(dec, tok)
}

func readJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch x := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		n, err := number.Parse(string(x))
		if err != nil {
			return Value{}, err
		}
		return FromNumber(n), nil
	case float64:
		return FromNumber(number.FromF64(x)), nil
	case json.Delim:
		switch x {
		case '[':
			arr := Array{}
			for dec.More() {
				e, err := ReadJSON(dec)
				if err != nil {
					return Value{}, err
				}
				arr = append(arr, e)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromArray(arr), nil
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				k, ok := kt.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", kt)
				}
				e, err := ReadJSON(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Insert(k, e)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromObject(obj), nil
		}
	}
	return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

func appendJSON(buf []byte, v Value, indent string, depth int) []byte {
	switch v.typ {
	case NullType, UndefinedType:
		return append(buf, "null"...)
	case BooleanType:
		if v.b {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case NumberType:
		return append(buf, NumberJSON(v.num)...)
	case StringType:
		return AppendQuoted(buf, v.str)
	case DateTimeType:
		return AppendQuoted(buf, v.dt.String())
	case ArrayType:
		if len(v.arr) == 0 {
			return append(buf, "[]"...)
		}
		buf = append(buf, '[')
		for i, e := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendNewline(buf, indent, depth+1)
			buf = appendJSON(buf, e, indent, depth+1)
		}
		buf = appendNewline(buf, indent, depth)
		return append(buf, ']')
	case ObjectType:
		n := 0
		buf = append(buf, '{')
		for k, e := range v.obj.All() {
			if e.typ == UndefinedType {
				continue
			}
			if n > 0 {
				buf = append(buf, ',')
			}
			n++
			buf = appendNewline(buf, indent, depth+1)
			buf = AppendQuoted(buf, k)
			buf = append(buf, ':')
			if indent != "" {
				buf = append(buf, ' ')
			}
			buf = appendJSON(buf, e, indent, depth+1)
		}
		if n > 0 {
			buf = appendNewline(buf, indent, depth)
		}
		return append(buf, '}')
	}
	return buf
}

func appendNewline(buf []byte, indent string, depth int) []byte {
	if indent == "" {
		return buf
	}
	buf = append(buf, '\n')
	for range depth {
		buf = append(buf, indent...)
	}
	return buf
}

// NumberJSON renders n as a JSON number. Floats always carry a
// fractional part and non-finite floats render as null.
func NumberJSON(n number.Number) string {
	s := n.String()
	if !n.IsFloat() {
		return s
	}
	switch s {
	case "NaN", "inf", "-inf":
		return "null"
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

const hex = "0123456789abcdef"

// AppendQuoted appends s as a JSON string literal.
func AppendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				buf = append(buf, '\\', c)
			case c == '\n':
				buf = append(buf, '\\', 'n')
			case c == '\r':
				buf = append(buf, '\\', 'r')
			case c == '\t':
				buf = append(buf, '\\', 't')
			case c < 0x20:
				buf = append(buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			default:
				buf = append(buf, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf = append(buf, `�`...)
		} else {
			buf = append(buf, s[i:i+size]...)
		}
		i += size
	}
	return append(buf, '"')
}
