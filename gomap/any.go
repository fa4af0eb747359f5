package gomap

import (
	"github.com/signadot/valu/value"
)

// ToAny converts v to the plain Go form encoding/json would produce,
// keeping integers exact where possible.
//
// Integers become int when they fit, then uint64, then float64. Floats
// become float64. Date-times become time.Time; dates and times alone
// become their ISO 8601 strings. Objects become map[string]any and lose
// their key order.
func ToAny(v value.Value) any {
	switch v.Type() {
	case value.NullType, value.UndefinedType:
		return nil
	case value.BooleanType:
		b, _ := v.AsBool()
		return b
	case value.StringType:
		s, _ := v.AsString()
		return s
	case value.NumberType:
		n, _ := v.AsNumber()
		if n.IsFloat() {
			f, _ := n.ToF64()
			return f
		}
		if i, ok := n.ToI64(); ok && int64(int(i)) == i {
			return int(i)
		}
		if u, ok := n.ToU64(); ok {
			return u
		}
		f, _ := n.ToF64()
		return f
	case value.DateTimeType:
		d, _ := v.AsDateTime()
		if t, ok := d.AsDateTime(); ok {
			return t
		}
		return d.ISO8601()
	case value.ArrayType:
		arr, _ := v.AsArray()
		res := make([]any, len(arr))
		for i, e := range arr {
			res[i] = ToAny(e)
		}
		return res
	case value.ObjectType:
		obj, _ := v.AsObject()
		res := make(map[string]any, obj.Len())
		for k, e := range obj.All() {
			if e.IsUndefined() {
				continue
			}
			res[k] = ToAny(e)
		}
		return res
	}
	return nil
}

// FromAny converts the output of ToAny, or of encoding/json, back to a
// Value. Map keys are sorted since Go maps carry no order.
func FromAny(x any) (value.Value, error) {
	return ToValue(x)
}
