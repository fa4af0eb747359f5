package number

import "fmt"

// Type identifies which numeric kind a Number holds.
//
// The constants are declared in classification order: signed integers
// from narrowest to widest, then unsigned integers, then floats.
type Type int

const (
	UnknownType Type = iota
	I8Type
	I16Type
	I32Type
	I64Type
	I128Type
	U8Type
	U16Type
	U32Type
	U64Type
	U128Type
	F32Type
	F64Type
)

var typeNames = map[Type]string{
	UnknownType: "unknown",
	I8Type:      "i8",
	I16Type:     "i16",
	I32Type:     "i32",
	I64Type:     "i64",
	I128Type:    "i128",
	U8Type:      "u8",
	U16Type:     "u16",
	U32Type:     "u32",
	U64Type:     "u64",
	U128Type:    "u128",
	F32Type:     "f32",
	F64Type:     "f64",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown number type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for k, name := range typeNames {
		if name == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unrecognized number type %q", d)
}

// Types returns every concrete numeric kind in classification order.
func Types() []Type {
	return []Type{
		I8Type, I16Type, I32Type, I64Type, I128Type,
		U8Type, U16Type, U32Type, U64Type, U128Type,
		F32Type, F64Type,
	}
}

func (t Type) IsSignedInt() bool {
	return t >= I8Type && t <= I128Type
}

func (t Type) IsUnsignedInt() bool {
	return t >= U8Type && t <= U128Type
}

func (t Type) IsInteger() bool {
	return t.IsSignedInt() || t.IsUnsignedInt()
}

func (t Type) IsFloat() bool {
	return t == F32Type || t == F64Type
}

// Bits returns the storage width of the kind, 0 for UnknownType.
func (t Type) Bits() int {
	switch t {
	case I8Type, U8Type:
		return 8
	case I16Type, U16Type:
		return 16
	case I32Type, U32Type, F32Type:
		return 32
	case I64Type, U64Type, F64Type:
		return 64
	case I128Type, U128Type:
		return 128
	}
	return 0
}
