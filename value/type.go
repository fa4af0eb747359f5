package value

import "fmt"

type Type int

const (
	NullType Type = iota
	UndefinedType
	BooleanType
	NumberType
	StringType
	ArrayType
	ObjectType
	DateTimeType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		UndefinedType: "Undefined",
		BooleanType:   "Boolean",
		NumberType:    "Number",
		StringType:    "String",
		ArrayType:     "Array",
		ObjectType:    "Object",
		DateTimeType:  "DateTime",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Undefined": UndefinedType,
		"Boolean":   BooleanType,
		"Number":    NumberType,
		"String":    StringType,
		"Array":     ArrayType,
		"Object":    ObjectType,
		"DateTime":  DateTimeType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		UndefinedType,
		BooleanType,
		NumberType,
		StringType,
		ArrayType,
		ObjectType,
		DateTimeType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
