package number

import (
	"math"
	"math/big"
)

// ToI64 converts the held integer to int64. It fails for floats, for an
// empty Number and whenever the value is outside the int64 range.
func (n Number) ToI64() (int64, bool) {
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		return int64(n.lo), true
	case I128Type:
		x := n.i128()
		if !x.IsInt64() {
			return 0, false
		}
		return x.Int64(), true
	case U8Type, U16Type, U32Type:
		return int64(n.lo), true
	case U64Type:
		if n.lo > math.MaxInt64 {
			return 0, false
		}
		return int64(n.lo), true
	case U128Type:
		if n.hi != 0 || n.lo > math.MaxInt64 {
			return 0, false
		}
		return int64(n.lo), true
	}
	return 0, false
}

// ToU64 converts the held integer to uint64. Negative values, floats and
// magnitudes beyond the uint64 range fail.
func (n Number) ToU64() (uint64, bool) {
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		if int64(n.lo) < 0 {
			return 0, false
		}
		return n.lo, true
	case I128Type:
		if n.hi != 0 {
			return 0, false
		}
		return n.lo, true
	case U8Type, U16Type, U32Type, U64Type:
		return n.lo, true
	case U128Type:
		if n.hi != 0 {
			return 0, false
		}
		return n.lo, true
	}
	return 0, false
}

// ToF64 converts any held kind to float64, rounding 128-bit and large
// 64-bit integers to the nearest representable value.
func (n Number) ToF64() (float64, bool) {
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		return float64(int64(n.lo)), true
	case I128Type:
		return n.i128().Float64(), true
	case U8Type, U16Type, U32Type, U64Type:
		return float64(n.lo), true
	case U128Type:
		return n.u128().Float64(), true
	case F32Type:
		return float64(n.f32()), true
	case F64Type:
		return n.f64(), true
	}
	return 0, false
}

// ToBig returns the held integer as a big.Int.
func (n Number) ToBig() (*big.Int, bool) {
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		return big.NewInt(int64(n.lo)), true
	case I128Type:
		return n.i128().Big(), true
	case U8Type, U16Type, U32Type, U64Type:
		return new(big.Int).SetUint64(n.lo), true
	case U128Type:
		return n.u128().Big(), true
	}
	return nil, false
}

// Equal reports whether n and o hold the same kind and value. Floats
// follow IEEE equality, so a NaN is not equal to itself.
func (n Number) Equal(o Number) bool {
	if n.typ != o.typ {
		return false
	}
	switch n.typ {
	case F32Type:
		return n.f32() == o.f32()
	case F64Type:
		return n.f64() == o.f64()
	}
	return n.lo == o.lo && n.hi == o.hi
}

// Compare orders n and o numerically regardless of kind. Integer pairs
// compare exactly; pairs involving a float compare as float64. The result
// is not ok when either side is empty or NaN.
func (n Number) Compare(o Number) (int, bool) {
	if n.typ == UnknownType || o.typ == UnknownType {
		return 0, false
	}
	if n.IsInteger() && o.IsInteger() {
		return compareInts(n, o), true
	}
	a, _ := n.ToF64()
	b, _ := o.ToF64()
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0, false
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

func compareInts(n, o Number) int {
	ns, nm := n.signMag()
	os, om := o.signMag()
	if ns != os {
		if ns < os {
			return -1
		}
		return 1
	}
	if ns < 0 {
		return om.Cmp(nm)
	}
	return nm.Cmp(om)
}

// signMag splits an integer Number into its sign and magnitude.
func (n Number) signMag() (int, Uint128) {
	var x Int128
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		x = Int128From64(int64(n.lo))
	case I128Type:
		x = n.i128()
	default:
		m := n.u128()
		if m.Hi == 0 && m.Lo == 0 {
			return 0, m
		}
		return 1, m
	}
	return x.Sign(), x.Abs()
}
