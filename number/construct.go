package number

import (
	"math"
	"reflect"
)

func FromI8(v int8) Number   { return Number{typ: I8Type, lo: uint64(int64(v))} }
func FromI16(v int16) Number { return Number{typ: I16Type, lo: uint64(int64(v))} }
func FromI32(v int32) Number { return Number{typ: I32Type, lo: uint64(int64(v))} }
func FromI64(v int64) Number { return Number{typ: I64Type, lo: uint64(v)} }

func FromInt128(v Int128) Number {
	return Number{typ: I128Type, lo: v.Lo, hi: uint64(v.Hi)}
}

func FromU8(v uint8) Number   { return Number{typ: U8Type, lo: uint64(v)} }
func FromU16(v uint16) Number { return Number{typ: U16Type, lo: uint64(v)} }
func FromU32(v uint32) Number { return Number{typ: U32Type, lo: uint64(v)} }
func FromU64(v uint64) Number { return Number{typ: U64Type, lo: v} }

func FromUint128(v Uint128) Number {
	return Number{typ: U128Type, lo: v.Lo, hi: v.Hi}
}

func FromF32(v float32) Number { return Number{typ: F32Type, lo: uint64(math.Float32bits(v))} }
func FromF64(v float64) Number { return Number{typ: F64Type, lo: math.Float64bits(v)} }

// Native is the set of Go types with a direct numeric kind.
type Native interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Of wraps v in the kind matching its Go type, including named types
// whose underlying type is numeric. int and uint map to the 64-bit kinds.
func Of[T Native](v T) Number {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int8:
		return FromI8(int8(rv.Int()))
	case reflect.Int16:
		return FromI16(int16(rv.Int()))
	case reflect.Int32:
		return FromI32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return FromI64(rv.Int())
	case reflect.Uint8:
		return FromU8(uint8(rv.Uint()))
	case reflect.Uint16:
		return FromU16(uint16(rv.Uint()))
	case reflect.Uint32:
		return FromU32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return FromU64(rv.Uint())
	case reflect.Float32:
		return FromF32(float32(rv.Float()))
	}
	return FromF64(rv.Float())
}

// FitInt wraps v in the narrowest signed kind that holds it.
func FitInt(v int64) Number {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return FromI8(int8(v))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return FromI16(int16(v))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return FromI32(int32(v))
	}
	return FromI64(v)
}

// FitUint wraps v in the narrowest unsigned kind that holds it.
func FitUint(v uint64) Number {
	switch {
	case v <= math.MaxUint8:
		return FromU8(uint8(v))
	case v <= math.MaxUint16:
		return FromU16(uint16(v))
	case v <= math.MaxUint32:
		return FromU32(uint32(v))
	}
	return FromU64(v)
}
