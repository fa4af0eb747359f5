package value

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/number"
)

// ToValueBehavior is implemented by types with a canonical Value encoding.
// Conversion to a Value never fails.
type ToValueBehavior interface {
	ToValue() Value
}

func (v Value) ToValue() Value { return v }
func (a Array) ToValue() Value { return FromArray(a) }

// FromTime wraps t as a date-time value in UTC.
func FromTime(t time.Time) Value {
	return FromDateTime(datetime.FromTimeValue(t))
}

// FromSlice encodes each element of xs with f.
func FromSlice[T any](xs []T, f func(T) Value) Value {
	arr := make(Array, len(xs))
	for i, x := range xs {
		arr[i] = f(x)
	}
	return FromArray(arr)
}

// FromStringMap encodes m as an object with keys in sorted order.
func FromStringMap[T any](m map[string]T, f func(T) Value) Value {
	obj := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		obj.Insert(k, f(m[k]))
	}
	return FromObject(obj)
}

func FromPairs(pairs ...KeyVal) Value {
	return FromObject(ObjectOf(pairs...))
}

// FromOptional encodes a nil p as Null.
func FromOptional[T any](p *T, f func(T) Value) Value {
	if p == nil {
		return Null()
	}
	return f(*p)
}

// FromValueFunc converts a Value to T, reporting false when the value's
// variant or numeric kind does not match.
type FromValueFunc[T any] func(Value) (T, bool)

func AsI8(v Value) (int8, bool)    { return v.num.I8() }
func AsI16(v Value) (int16, bool)  { return v.num.I16() }
func AsI32(v Value) (int32, bool)  { return v.num.I32() }
func AsI64(v Value) (int64, bool)  { return v.num.I64() }
func AsU8(v Value) (uint8, bool)   { return v.num.U8() }
func AsU16(v Value) (uint16, bool) { return v.num.U16() }
func AsU32(v Value) (uint32, bool) { return v.num.U32() }
func AsU64(v Value) (uint64, bool) { return v.num.U64() }

func AsF32(v Value) (float32, bool) { return v.num.F32() }
func AsF64(v Value) (float64, bool) { return v.num.F64() }

func AsInt128(v Value) (number.Int128, bool)   { return v.num.I128() }
func AsUint128(v Value) (number.Uint128, bool) { return v.num.U128() }

func AsStringValue(v Value) (string, bool) { return v.AsString() }
func AsBoolValue(v Value) (bool, bool)     { return v.AsBool() }

func AsDateTimeValue(v Value) (datetime.DateTime, bool) { return v.AsDateTime() }

// AsInt reads the i64 slot Go ints are stored in, failing when the value
// does not fit an int.
func AsInt(v Value) (int, bool) {
	i, ok := AsI64(v)
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

// AsUint is AsInt for the u64 slot and uint.
func AsUint(v Value) (uint, bool) {
	u, ok := AsU64(v)
	if !ok || u > math.MaxUint {
		return 0, false
	}
	return uint(u), true
}

// AsValue always succeeds with v itself.
func AsValue(v Value) (Value, bool) { return v, true }

// FromValue converts v to T for the scalar types with an As function.
// Other types report false.
func FromValue[T any](v Value) (T, bool) {
	var zero T
	var res any
	var ok bool
	switch any(zero).(type) {
	case int:
		res, ok = AsInt(v)
	case uint:
		res, ok = AsUint(v)
	case int8:
		res, ok = AsI8(v)
	case int16:
		res, ok = AsI16(v)
	case int32:
		res, ok = AsI32(v)
	case int64:
		res, ok = AsI64(v)
	case number.Int128:
		res, ok = AsInt128(v)
	case uint8:
		res, ok = AsU8(v)
	case uint16:
		res, ok = AsU16(v)
	case uint32:
		res, ok = AsU32(v)
	case uint64:
		res, ok = AsU64(v)
	case number.Uint128:
		res, ok = AsUint128(v)
	case float32:
		res, ok = AsF32(v)
	case float64:
		res, ok = AsF64(v)
	case string:
		res, ok = AsStringValue(v)
	case bool:
		res, ok = AsBoolValue(v)
	case datetime.DateTime:
		res, ok = AsDateTimeValue(v)
	case Value:
		res, ok = v, true
	}
	if !ok {
		return zero, false
	}
	return res.(T), true
}

// SliceOf converts arrays element by element. Any element failure fails
// the whole conversion.
func SliceOf[T any](f FromValueFunc[T]) FromValueFunc[[]T] {
	return func(v Value) ([]T, bool) {
		res, err := DecodeSlice(v, f)
		return res, err == nil
	}
}

// DecodeSlice is like SliceOf but reports where conversion failed.
func DecodeSlice[T any](v Value, f FromValueFunc[T]) ([]T, error) {
	arr, ok := v.AsArray()
	if !ok {
		return nil, &ConversionError{Expected: "Array", Actual: v.typ}
	}
	res := make([]T, len(arr))
	for i, e := range arr {
		x, ok := f(e)
		if !ok {
			return nil, &ConversionError{
				Path:     "[" + strconv.Itoa(i) + "]",
				Expected: typeName[T](),
				Actual:   e.typ,
			}
		}
		res[i] = x
	}
	return res, nil
}

// MustSliceOf converts arrays strictly: a non-array yields false but an
// element that fails to convert panics.
func MustSliceOf[T any](f FromValueFunc[T]) FromValueFunc[[]T] {
	return func(v Value) ([]T, bool) {
		if !v.IsArray() {
			return nil, false
		}
		res, err := DecodeSlice(v, f)
		if err != nil {
			panic(err)
		}
		return res, true
	}
}

// MapOf converts objects value by value.
func MapOf[T any](f FromValueFunc[T]) FromValueFunc[map[string]T] {
	return func(v Value) (map[string]T, bool) {
		res, err := DecodeMap(v, f)
		return res, err == nil
	}
}

// DecodeMap is like MapOf but reports which key failed.
func DecodeMap[T any](v Value, f FromValueFunc[T]) (map[string]T, error) {
	pairs, err := decodePairs(v, f)
	if err != nil {
		return nil, err
	}
	res := make(map[string]T, len(pairs))
	for _, p := range pairs {
		res[p.Key] = p.Val
	}
	return res, nil
}

// MustMapOf is the strict counterpart of MapOf; element failures panic.
func MustMapOf[T any](f FromValueFunc[T]) FromValueFunc[map[string]T] {
	return func(v Value) (map[string]T, bool) {
		if !v.IsObject() {
			return nil, false
		}
		res, err := DecodeMap(v, f)
		if err != nil {
			panic(err)
		}
		return res, true
	}
}

// Pair is a converted object entry.
type Pair[T any] struct {
	Key string
	Val T
}

// PairsOf converts objects keeping key order.
func PairsOf[T any](f FromValueFunc[T]) FromValueFunc[[]Pair[T]] {
	return func(v Value) ([]Pair[T], bool) {
		res, err := decodePairs(v, f)
		return res, err == nil
	}
}

func decodePairs[T any](v Value, f FromValueFunc[T]) ([]Pair[T], error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, &ConversionError{Expected: "Object", Actual: v.typ}
	}
	res := make([]Pair[T], 0, obj.Len())
	for k, e := range obj.All() {
		x, ok := f(e)
		if !ok {
			return nil, &ConversionError{
				Path:     "." + k,
				Expected: typeName[T](),
				Actual:   e.typ,
			}
		}
		res = append(res, Pair[T]{Key: k, Val: x})
	}
	return res, nil
}

// OptionalOf converts nullable values. Null yields (nil, false). Any other
// value yields true, with a nil pointer if f fails and the converted
// value otherwise.
func OptionalOf[T any](f FromValueFunc[T]) FromValueFunc[*T] {
	return func(v Value) (*T, bool) {
		if v.IsNull() {
			return nil, false
		}
		x, ok := f(v)
		if !ok {
			return nil, true
		}
		return &x, true
	}
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
