package value

import (
	"cmp"
)

// Equal reports structural equality. Arrays compare element-wise and
// objects as sets of entries. Numbers must hold the same kind, unlike
// Compare which orders numbers by value: Compare can report 0 for
// numbers Equal tells apart.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case NullType, UndefinedType:
		return true
	case BooleanType:
		return v.b == o.b
	case NumberType:
		return v.num.Equal(o.num)
	case StringType:
		return v.str == o.str
	case DateTimeType:
		return v.dt.Equal(o.dt)
	case ArrayType:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		return v.obj.Equal(o.obj)
	}
	return false
}

// Compare is a partial order. Values of different types are not
// comparable, and objects are comparable only when they are equal.
func (v Value) Compare(o Value) (int, bool) {
	if v.typ != o.typ {
		return 0, false
	}
	switch v.typ {
	case NullType, UndefinedType:
		return 0, true
	case BooleanType:
		return cmpBool(v.b, o.b), true
	case NumberType:
		return v.num.Compare(o.num)
	case StringType:
		return cmp.Compare(v.str, o.str), true
	case DateTimeType:
		return v.dt.Compare(o.dt)
	case ArrayType:
		n := min(len(v.arr), len(o.arr))
		for i := range n {
			c, ok := v.arr[i].Compare(o.arr[i])
			if !ok || c != 0 {
				return c, ok
			}
		}
		return cmp.Compare(len(v.arr), len(o.arr)), true
	case ObjectType:
		if v.obj.Equal(o.obj) {
			return 0, true
		}
	}
	return 0, false
}

// Less reports whether a and b are comparable and a orders first.
func Less(a, b Value) bool {
	c, ok := a.Compare(b)
	return ok && c < 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
