package value

import (
	"strconv"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/number"
)

// Value is a dynamically typed value. The fields in use depend on Type;
// the zero Value is Null.
type Value struct {
	typ Type
	b   bool
	num number.Number
	str string
	arr Array
	obj *Object
	dt  datetime.DateTime
}

// Array is an ordered sequence of values. Duplicates are allowed.
type Array []Value

func Null() Value      { return Value{} }
func Undefined() Value { return Value{typ: UndefinedType} }

func FromString(s string) Value {
	return Value{typ: StringType, str: s}
}

func FromBool(b bool) Value {
	return Value{typ: BooleanType, b: b}
}

func FromNumber(n number.Number) Value {
	return Value{typ: NumberType, num: n}
}

// FromNumeric wraps v in the numeric kind matching its Go type.
func FromNumeric[T number.Native](v T) Value {
	return FromNumber(number.Of(v))
}

func FromDateTime(d datetime.DateTime) Value {
	return Value{typ: DateTimeType, dt: d}
}

func FromArray(a Array) Value {
	if a == nil {
		a = Array{}
	}
	return Value{typ: ArrayType, arr: a}
}

func FromValues(vs ...Value) Value {
	return FromArray(Array(vs))
}

// FromObject wraps o; a nil o yields an empty object.
func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{typ: ObjectType, obj: o}
}

func (v Value) Type() Type { return v.typ }

func (v Value) IsNull() bool      { return v.typ == NullType }
func (v Value) IsUndefined() bool { return v.typ == UndefinedType }
func (v Value) IsBool() bool      { return v.typ == BooleanType }
func (v Value) IsNumber() bool    { return v.typ == NumberType }
func (v Value) IsString() bool    { return v.typ == StringType }
func (v Value) IsArray() bool     { return v.typ == ArrayType }
func (v Value) IsObject() bool    { return v.typ == ObjectType }
func (v Value) IsDateTime() bool  { return v.typ == DateTimeType }

func (v Value) AsString() (string, bool) {
	return v.str, v.typ == StringType
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.typ == BooleanType
}

func (v Value) AsNumber() (number.Number, bool) {
	return v.num, v.typ == NumberType
}

func (v Value) AsArray() (Array, bool) {
	return v.arr, v.typ == ArrayType
}

func (v Value) AsObject() (*Object, bool) {
	return v.obj, v.typ == ObjectType
}

func (v Value) AsDateTime() (datetime.DateTime, bool) {
	return v.dt, v.typ == DateTimeType
}

// Clone returns a deep copy of v. Values share no containers with their
// clones.
func (v Value) Clone() Value {
	switch v.typ {
	case ArrayType:
		return FromArray(v.arr.Clone())
	case ObjectType:
		return FromObject(v.obj.Clone())
	}
	return v
}

func (a Array) Clone() Array {
	res := make(Array, len(a))
	for i, e := range a {
		res[i] = e.Clone()
	}
	return res
}

// Len returns the number of elements of an array or entries of an object.
func (v Value) Len() (int, bool) {
	switch v.typ {
	case ArrayType:
		return len(v.arr), true
	case ObjectType:
		return v.obj.Len(), true
	}
	return 0, false
}

// String renders v for display: strings verbatim, containers as indented
// JSON.
func (v Value) String() string {
	switch v.typ {
	case StringType:
		return v.str
	case NumberType:
		return v.num.String()
	case BooleanType:
		return strconv.FormatBool(v.b)
	case ArrayType, ObjectType:
		return string(appendJSON(nil, v, "  ", 0))
	case UndefinedType:
		return "undefined"
	case DateTimeType:
		return v.dt.String()
	}
	return "null"
}
