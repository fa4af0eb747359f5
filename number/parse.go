package number

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseOrder is the sequence of kinds Parse tries. The first kind whose
// parser accepts the whole text wins, so integers that fit in 32 bits
// become I32Type and all other numeric text becomes F64Type.
var parseOrder = []Type{
	I32Type, F64Type,
	I8Type, I16Type, I64Type, I128Type,
	U8Type, U16Type, U32Type, U64Type, U128Type,
	F32Type,
}

// Parse classifies s as the first numeric kind in parse order that
// accepts it. The returned error wraps ErrNotNumber.
func Parse(s string) (Number, error) {
	for _, t := range parseOrder {
		n, err := ParseAs(t, s)
		if err == nil {
			return n, nil
		}
	}
	return Number{}, fmt.Errorf("%w: %q", ErrNotNumber, s)
}

// MustParse is like Parse but panics on failure.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseAs parses s as exactly the kind t.
func ParseAs(t Type, s string) (Number, error) {
	var n Number
	switch t {
	case I8Type, I16Type, I32Type, I64Type:
		v, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return n, notNumber(t, s)
		}
		n = Number{typ: t, lo: uint64(v)}
	case I128Type:
		v, err := ParseInt128(s)
		if err != nil {
			return n, err
		}
		n.SetI128(v)
	case U8Type, U16Type, U32Type, U64Type:
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, t.Bits())
		if err != nil {
			return n, notNumber(t, s)
		}
		n = Number{typ: t, lo: v}
	case U128Type:
		v, err := ParseUint128(s)
		if err != nil {
			return n, err
		}
		n.SetU128(v)
	case F32Type, F64Type:
		v, err := parseFloat(s, t.Bits())
		if err != nil {
			return n, notNumber(t, s)
		}
		if t == F32Type {
			n.SetF32(float32(v))
		} else {
			n.SetF64(v)
		}
	default:
		return n, notNumber(t, s)
	}
	return n, nil
}

// parseFloat accepts decimal and exponent forms plus inf and nan
// spellings. Out of range magnitudes saturate to infinity.
func parseFloat(s string, bits int) (float64, error) {
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "0x") || strings.Contains(s, "_") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func notNumber(t Type, s string) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrNotNumber, s, t)
}

// String renders the held value in decimal. Floats use the shortest
// representation that round-trips; an empty Number renders as "0".
func (n Number) String() string {
	switch n.typ {
	case I8Type, I16Type, I32Type, I64Type:
		return strconv.FormatInt(int64(n.lo), 10)
	case I128Type:
		return n.i128().String()
	case U8Type, U16Type, U32Type, U64Type:
		return strconv.FormatUint(n.lo, 10)
	case U128Type:
		return n.u128().String()
	case F32Type:
		return formatFloat(float64(n.f32()), 32)
	case F64Type:
		return formatFloat(n.f64(), 64)
	}
	return "0"
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalText(d []byte) error {
	v, err := Parse(string(d))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
