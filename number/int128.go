package number

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"
)

// Int128 is a signed 128-bit integer in two's complement form.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

var (
	MaxInt128  = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	MinInt128  = Int128{Hi: math.MinInt64, Lo: 0}
	MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}

	two64 = new(big.Int).Lsh(big.NewInt(1), 64)
)

func Int128From64(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: -1, Lo: uint64(v)}
	}
	return Int128{Lo: uint64(v)}
}

func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128FromBig converts b, reporting false if it is out of range.
func Int128FromBig(b *big.Int) (Int128, bool) {
	if b.Cmp(MinInt128.Big()) < 0 || b.Cmp(MaxInt128.Big()) > 0 {
		return Int128{}, false
	}
	hi := new(big.Int).Rsh(b, 64)
	lo := new(big.Int).Sub(b, new(big.Int).Lsh(hi, 64))
	return Int128{Hi: hi.Int64(), Lo: lo.Uint64()}, true
}

// Uint128FromBig converts b, reporting false if it is negative or too large.
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	if b.Sign() < 0 || b.Cmp(MaxUint128.Big()) > 0 {
		return Uint128{}, false
	}
	hi, lo := new(big.Int).QuoRem(b, two64, new(big.Int))
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, true
}

// ParseInt128 parses a base 10 integer with an optional sign.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("%w: %q is not an i128", ErrNotNumber, s)
	}
	x, ok := Int128FromBig(b)
	if !ok {
		return Int128{}, fmt.Errorf("%w: %q out of i128 range", ErrNotNumber, s)
	}
	return x, nil
}

// ParseUint128 parses a base 10 unsigned integer; a leading '+' is allowed.
func ParseUint128(s string) (Uint128, error) {
	if strings.HasPrefix(s, "-") {
		return Uint128{}, fmt.Errorf("%w: %q is not a u128", ErrNotNumber, s)
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, fmt.Errorf("%w: %q is not a u128", ErrNotNumber, s)
	}
	x, ok := Uint128FromBig(b)
	if !ok {
		return Uint128{}, fmt.Errorf("%w: %q out of u128 range", ErrNotNumber, s)
	}
	return x, nil
}

func (x Int128) Big() *big.Int {
	b := new(big.Int).Lsh(big.NewInt(x.Hi), 64)
	return b.Add(b, new(big.Int).SetUint64(x.Lo))
}

func (x Uint128) Big() *big.Int {
	b := new(big.Int).Lsh(new(big.Int).SetUint64(x.Hi), 64)
	return b.Add(b, new(big.Int).SetUint64(x.Lo))
}

func (x Int128) String() string  { return x.Big().String() }
func (x Uint128) String() string { return x.Big().String() }

func (x Int128) Sign() int {
	switch {
	case x.Hi < 0:
		return -1
	case x.Hi == 0 && x.Lo == 0:
		return 0
	}
	return 1
}

func (x Int128) Cmp(y Int128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

func (x Int128) IsInt64() bool {
	return (x.Hi == 0 && x.Lo <= math.MaxInt64) || (x.Hi == -1 && x.Lo > math.MaxInt64)
}

func (x Int128) Int64() int64 { return int64(x.Lo) }

func (x Int128) IsUint64() bool { return x.Hi == 0 }

func (x Uint128) IsUint64() bool { return x.Hi == 0 }

func (x Uint128) Uint64() uint64 { return x.Lo }

// Abs returns the magnitude of x; it is exact for MinInt128.
func (x Int128) Abs() Uint128 {
	if x.Hi >= 0 {
		return Uint128{Hi: uint64(x.Hi), Lo: x.Lo}
	}
	lo, carry := bits.Add64(^x.Lo, 1, 0)
	hi, _ := bits.Add64(^uint64(x.Hi), 0, carry)
	return Uint128{Hi: hi, Lo: lo}
}

func (x Int128) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.Big()).Float64()
	return f
}

func (x Uint128) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.Big()).Float64()
	return f
}

func (x Int128) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

func (x *Int128) UnmarshalText(d []byte) error {
	v, err := ParseInt128(string(d))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Uint128) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

func (x *Uint128) UnmarshalText(d []byte) error {
	v, err := ParseUint128(string(d))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
