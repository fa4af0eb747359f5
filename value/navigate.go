package value

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Get resolves key against v: an index key selects an array element and
// a string key an object entry. Anything missing is Undefined.
func (v Value) Get(key ValueKeyBehavior) Value {
	k := key.ToValueKey()
	switch v.typ {
	case ArrayType:
		if !k.isIndex || k.index < 0 || k.index >= len(v.arr) {
			return Undefined()
		}
		return v.arr[k.index]
	case ObjectType:
		if k.isIndex {
			return Undefined()
		}
		if e, ok := v.obj.Get(k.key); ok {
			return e
		}
	}
	return Undefined()
}

// GetPath applies Get for each key in turn.
func (v Value) GetPath(keys ...ValueKeyBehavior) Value {
	for _, k := range keys {
		v = v.Get(k)
		if v.typ == UndefinedType {
			break
		}
	}
	return v
}

// ParsePath splits a dotted path such as "a.b.0" into keys. Segments of
// decimal digits are indexes. The empty path has no keys.
func ParsePath(path string) []ValueKeyBehavior {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	keys := make([]ValueKeyBehavior, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil && n >= 0 && p[0] != '+' {
			keys[i] = Index(n)
			continue
		}
		keys[i] = Key(p)
	}
	return keys
}

// Set stores e under key. Objects take string keys; arrays take an index
// up to and including their length, which appends. The container is
// copied first, so other copies of v are unchanged.
func (v *Value) Set(key ValueKeyBehavior, e Value) error {
	k := key.ToValueKey()
	switch v.typ {
	case ObjectType:
		if k.isIndex {
			return fmt.Errorf("%w: index %d on object", ErrKeyMismatch, k.index)
		}
		obj := v.obj.shallow()
		obj.Insert(k.key, e)
		v.obj = obj
		return nil
	case ArrayType:
		if !k.isIndex {
			return fmt.Errorf("%w: key %q on array", ErrKeyMismatch, k.key)
		}
		if k.index < 0 || k.index > len(v.arr) {
			return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, k.index, len(v.arr))
		}
		arr := slices.Clone(v.arr)
		if k.index == len(arr) {
			arr = append(arr, e)
		} else {
			arr[k.index] = e
		}
		v.arr = arr
		return nil
	}
	return fmt.Errorf("%w: %s is not a container", ErrKeyMismatch, v.typ)
}

// Remove deletes key from an object or the element at an index from an
// array, returning what was removed. Like Set it leaves other copies of v
// unchanged.
func (v *Value) Remove(key ValueKeyBehavior) (Value, bool) {
	k := key.ToValueKey()
	switch v.typ {
	case ObjectType:
		if k.isIndex || !v.obj.Has(k.key) {
			return Value{}, false
		}
		obj := v.obj.shallow()
		e, _ := obj.Remove(k.key)
		v.obj = obj
		return e, true
	case ArrayType:
		if !k.isIndex || k.index < 0 || k.index >= len(v.arr) {
			return Value{}, false
		}
		e := v.arr[k.index]
		v.arr = append(v.arr[:k.index:k.index], v.arr[k.index+1:]...)
		return e, true
	}
	return Value{}, false
}

// Walk visits v and its descendants depth first, replacing each with the
// result of f. Containers are rebuilt after their children.
func (v Value) Walk(f func(Value) Value) Value {
	switch v.typ {
	case ArrayType:
		res := make(Array, len(v.arr))
		for i, e := range v.arr {
			res[i] = e.Walk(f)
		}
		return f(FromArray(res))
	case ObjectType:
		res := NewObject()
		for k, e := range v.obj.All() {
			res.Insert(k, e.Walk(f))
		}
		return f(FromObject(res))
	}
	return f(v)
}
