package value

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion ordered mapping from unique string keys to
// values. The zero Object is empty and ready to use.
type Object struct {
	m *orderedmap.OrderedMap[string, Value]
}

// KeyVal is one object entry.
type KeyVal struct {
	Key string
	Val Value
}

func NewObject() *Object {
	return &Object{m: orderedmap.New[string, Value]()}
}

// ObjectOf builds an object from pairs in order. A repeated key keeps its
// first position and takes the last value.
func ObjectOf(pairs ...KeyVal) *Object {
	o := &Object{m: orderedmap.New[string, Value](orderedmap.WithCapacity[string, Value](len(pairs)))}
	for _, kv := range pairs {
		o.Insert(kv.Key, kv.Val)
	}
	return o
}

// Insert sets key to v. Replacing an existing key keeps its position.
func (o *Object) Insert(key string, v Value) {
	if o.m == nil {
		o.m = orderedmap.New[string, Value]()
	}
	o.m.Set(key, v)
}

func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.m == nil {
		return Value{}, false
	}
	return o.m.Get(key)
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Remove(key string) (Value, bool) {
	if o == nil || o.m == nil {
		return Value{}, false
	}
	return o.m.Delete(key)
}

func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Len()
}

// All iterates over entries in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil || o.m == nil {
			return
		}
		for p := o.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (o *Object) Keys() []string {
	res := make([]string, 0, o.Len())
	for k := range o.All() {
		res = append(res, k)
	}
	return res
}

func (o *Object) Values() []Value {
	res := make([]Value, 0, o.Len())
	for _, v := range o.All() {
		res = append(res, v)
	}
	return res
}

func (o *Object) KeyVals() []KeyVal {
	res := make([]KeyVal, 0, o.Len())
	for k, v := range o.All() {
		res = append(res, KeyVal{Key: k, Val: v})
	}
	return res
}

// Clone deep copies o, preserving key order.
func (o *Object) Clone() *Object {
	res := NewObject()
	for k, v := range o.All() {
		res.Insert(k, v.Clone())
	}
	return res
}

// shallow copies the entries of o, sharing the values.
func (o *Object) shallow() *Object {
	res := &Object{m: orderedmap.New[string, Value](orderedmap.WithCapacity[string, Value](o.Len()))}
	for k, v := range o.All() {
		res.m.Set(k, v)
	}
	return res
}

// Equal compares entries as a set; key order is ignored.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for k, v := range o.All() {
		w, ok := p.Get(k)
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

func (o *Object) ToValue() Value {
	return FromObject(o)
}
