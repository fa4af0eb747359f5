package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/valu/value"
)

// ExpandString replaces each $[expr] in s by the result of evaluating expr
// against env. Strings are inserted as is, other results as compact
// JSON. Within an expression, a backslash escapes the next character so
// `\]` does not end it.
func ExpandString(s string, env value.Value, opts ...Option) (string, error) {
	if !strings.Contains(s, "$[") {
		return s, nil
	}
	var out, key strings.Builder
	inExpr := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case !inExpr && c == '$' && i+1 < len(s) && s[i+1] == '[':
			inExpr = true
			key.Reset()
			i++
		case !inExpr:
			out.WriteByte(c)
		case c == '\\' && i+1 < len(s):
			key.WriteByte(s[i+1])
			i++
		case c == ']':
			src := strings.TrimSpace(key.String())
			res, err := Eval(src, env, opts...)
			if err != nil {
				return "", err
			}
			if str, ok := res.AsString(); ok {
				out.WriteString(str)
			} else {
				d, err := res.MarshalJSON()
				if err != nil {
					return "", err
				}
				out.Write(d)
			}
			inExpr = false
		default:
			key.WriteByte(c)
		}
	}
	if inExpr {
		return "", fmt.Errorf("unterminated $[ in %q", s)
	}
	return out.String(), nil
}

// Expand applies ExpandString to every string in v, including object
// keys.
func Expand(v value.Value, env value.Value, opts ...Option) (value.Value, error) {
	var err error
	res := v.Walk(func(e value.Value) value.Value {
		if err != nil {
			return e
		}
		switch {
		case e.IsString():
			s, _ := e.AsString()
			var x string
			x, err = ExpandString(s, env, opts...)
			return value.FromString(x)
		case e.IsObject():
			o, _ := e.AsObject()
			res := value.NewObject()
			for k, m := range o.All() {
				var xk string
				xk, err = ExpandString(k, env, opts...)
				if err != nil {
					return e
				}
				res.Insert(xk, m)
			}
			return value.FromObject(res)
		}
		return e
	})
	if err != nil {
		return value.Value{}, err
	}
	return res, nil
}
