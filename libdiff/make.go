package libdiff

import "github.com/signadot/valu/value"

func node(key string, v value.Value) value.Value {
	return value.FromPairs(value.KeyVal{Key: key, Val: v})
}

// MakeDiff builds the diff node for a wholesale change. A Null-typed
// argument is not special: use Insert and Delete for absent sides.
func MakeDiff(from, to value.Value) value.Value {
	return node(ReplaceKey, value.FromPairs(
		value.KeyVal{Key: "from", Val: from},
		value.KeyVal{Key: "to", Val: to},
	))
}

func Insert(v value.Value) value.Value { return node(InsertKey, v) }
func Delete(v value.Value) value.Value { return node(DeleteKey, v) }

// split returns the marker key of a diff node and its payload.
func split(d value.Value) (string, value.Value, bool) {
	o, ok := d.AsObject()
	if !ok || o.Len() != 1 {
		return "", value.Value{}, false
	}
	for k, v := range o.All() {
		return k, v, true
	}
	return "", value.Value{}, false
}

func replaceSides(payload value.Value) (from, to value.Value, ok bool) {
	o, isObj := payload.AsObject()
	if !isObj {
		return
	}
	from, okFrom := o.Get("from")
	to, okTo := o.Get("to")
	return from, to, okFrom && okTo
}
