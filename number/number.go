package number

import (
	"fmt"
	"math"
)

// Number holds at most one numeric kind at a time.
//
// Payloads of up to 64 bits live in lo (signed kinds sign-extended,
// floats as IEEE bits); 128-bit kinds use hi as well. The zero Number
// is empty and has type UnknownType.
type Number struct {
	typ Type
	lo  uint64
	hi  uint64
}

// Clean empties n and returns it so that setters can be chained.
func (n *Number) Clean() *Number {
	*n = Number{}
	return n
}

func (n *Number) SetI8(v int8) { *n = Number{typ: I8Type, lo: uint64(int64(v))} }
func (n *Number) SetI16(v int16) { *n = Number{typ: I16Type, lo: uint64(int64(v))} }
func (n *Number) SetI32(v int32) { *n = Number{typ: I32Type, lo: uint64(int64(v))} }
func (n *Number) SetI64(v int64) { *n = Number{typ: I64Type, lo: uint64(v)} }
func (n *Number) SetI128(v Int128) {
	*n = Number{typ: I128Type, lo: v.Lo, hi: uint64(v.Hi)}
}
func (n *Number) SetU8(v uint8) { *n = Number{typ: U8Type, lo: uint64(v)} }
func (n *Number) SetU16(v uint16) { *n = Number{typ: U16Type, lo: uint64(v)} }
func (n *Number) SetU32(v uint32) { *n = Number{typ: U32Type, lo: uint64(v)} }
func (n *Number) SetU64(v uint64) { *n = Number{typ: U64Type, lo: v} }
func (n *Number) SetU128(v Uint128) {
	*n = Number{typ: U128Type, lo: v.Lo, hi: v.Hi}
}
func (n *Number) SetF32(v float32) { *n = Number{typ: F32Type, lo: uint64(math.Float32bits(v))} }
func (n *Number) SetF64(v float64) { *n = Number{typ: F64Type, lo: math.Float64bits(v)} }

func (n Number) I8() (int8, bool) {
	if n.typ != I8Type {
		return 0, false
	}
	return int8(n.lo), true
}

func (n Number) I16() (int16, bool) {
	if n.typ != I16Type {
		return 0, false
	}
	return int16(n.lo), true
}

func (n Number) I32() (int32, bool) {
	if n.typ != I32Type {
		return 0, false
	}
	return int32(n.lo), true
}

func (n Number) I64() (int64, bool) {
	if n.typ != I64Type {
		return 0, false
	}
	return int64(n.lo), true
}

func (n Number) I128() (Int128, bool) {
	if n.typ != I128Type {
		return Int128{}, false
	}
	return n.i128(), true
}

func (n Number) U8() (uint8, bool) {
	if n.typ != U8Type {
		return 0, false
	}
	return uint8(n.lo), true
}

func (n Number) U16() (uint16, bool) {
	if n.typ != U16Type {
		return 0, false
	}
	return uint16(n.lo), true
}

func (n Number) U32() (uint32, bool) {
	if n.typ != U32Type {
		return 0, false
	}
	return uint32(n.lo), true
}

func (n Number) U64() (uint64, bool) {
	if n.typ != U64Type {
		return 0, false
	}
	return n.lo, true
}

func (n Number) U128() (Uint128, bool) {
	if n.typ != U128Type {
		return Uint128{}, false
	}
	return n.u128(), true
}

func (n Number) F32() (float32, bool) {
	if n.typ != F32Type {
		return 0, false
	}
	return n.f32(), true
}

func (n Number) F64() (float64, bool) {
	if n.typ != F64Type {
		return 0, false
	}
	return n.f64(), true
}

// The Must getters are only valid once the caller has established the
// kind, e.g. with IsI32. They panic on mismatch.

func (n Number) MustI8() int8 {
	n.expect(I8Type)
	return int8(n.lo)
}

func (n Number) MustI16() int16 {
	n.expect(I16Type)
	return int16(n.lo)
}

func (n Number) MustI32() int32 {
	n.expect(I32Type)
	return int32(n.lo)
}

func (n Number) MustI64() int64 {
	n.expect(I64Type)
	return int64(n.lo)
}

func (n Number) MustI128() Int128 {
	n.expect(I128Type)
	return n.i128()
}

func (n Number) MustU8() uint8 {
	n.expect(U8Type)
	return uint8(n.lo)
}

func (n Number) MustU16() uint16 {
	n.expect(U16Type)
	return uint16(n.lo)
}

func (n Number) MustU32() uint32 {
	n.expect(U32Type)
	return uint32(n.lo)
}

func (n Number) MustU64() uint64 {
	n.expect(U64Type)
	return n.lo
}

func (n Number) MustU128() Uint128 {
	n.expect(U128Type)
	return n.u128()
}

func (n Number) MustF32() float32 {
	n.expect(F32Type)
	return n.f32()
}

func (n Number) MustF64() float64 {
	n.expect(F64Type)
	return n.f64()
}

func (n Number) expect(t Type) {
	if n.typ != t {
		panic(fmt.Sprintf("number: %s accessed on number holding %s", t, n.typ))
	}
}

func (n Number) IsI8() bool { return n.typ == I8Type }
func (n Number) IsI16() bool { return n.typ == I16Type }
func (n Number) IsI32() bool { return n.typ == I32Type }
func (n Number) IsI64() bool { return n.typ == I64Type }
func (n Number) IsI128() bool { return n.typ == I128Type }
func (n Number) IsU8() bool { return n.typ == U8Type }
func (n Number) IsU16() bool { return n.typ == U16Type }
func (n Number) IsU32() bool { return n.typ == U32Type }
func (n Number) IsU64() bool { return n.typ == U64Type }
func (n Number) IsU128() bool { return n.typ == U128Type }
func (n Number) IsF32() bool { return n.typ == F32Type }
func (n Number) IsF64() bool { return n.typ == F64Type }

// Type returns the held kind, or UnknownType for an empty Number.
func (n Number) Type() Type { return n.typ }

// IsNumber reports whether any kind is held.
func (n Number) IsNumber() bool { return n.typ != UnknownType }

func (n Number) IsInteger() bool { return n.typ.IsInteger() }

func (n Number) IsFloat() bool { return n.typ.IsFloat() }

// IsSigned reports whether the held value is strictly negative. A signed
// kind holding a non-negative value is not signed in this sense.
func (n Number) IsSigned() bool {
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		return int64(n.lo) < 0
	case I128Type:
		return int64(n.hi) < 0
	case F32Type:
		return n.f32() < 0
	case F64Type:
		return n.f64() < 0
	}
	return false
}

// IsUnsigned reports whether an unsigned integer kind is held.
func (n Number) IsUnsigned() bool { return n.typ.IsUnsignedInt() }

func (n Number) IsZero() bool {
	switch n.typ {
	case UnknownType:
		return false
	case F32Type:
		return n.f32() == 0
	case F64Type:
		return n.f64() == 0
	}
	return n.lo == 0 && n.hi == 0
}

// IsPositive is !IsSigned() && !IsZero(); zero is neither positive nor negative.
func (n Number) IsPositive() bool { return !n.IsSigned() && !n.IsZero() }

func (n Number) IsNegative() bool { return n.IsSigned() && !n.IsZero() }

func (n Number) i128() Int128 { return Int128{Hi: int64(n.hi), Lo: n.lo} }
func (n Number) u128() Uint128 { return Uint128{Hi: n.hi, Lo: n.lo} }
func (n Number) f32() float32 { return math.Float32frombits(uint32(n.lo)) }
func (n Number) f64() float64 { return math.Float64frombits(n.lo) }
