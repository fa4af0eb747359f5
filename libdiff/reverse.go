package libdiff

import (
	"fmt"

	"github.com/signadot/valu/value"
)

// Reverse returns the diff undoing d: Patch(to, Reverse(d)) gives back
// from.
func Reverse(d value.Value) (value.Value, error) {
	key, payload, ok := split(d)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s", ErrBadDiff, d)
	}
	switch key {
	case InsertKey:
		return Delete(payload), nil
	case DeleteKey:
		return Insert(payload), nil
	case KeepKey:
		return d, nil
	case ReplaceKey:
		from, to, ok := replaceSides(payload)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s needs from and to", ErrBadDiff, ReplaceKey)
		}
		return MakeDiff(to, from), nil
	case StringKey:
		text, ok := payload.AsString()
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s payload is %s", ErrBadDiff, StringKey, payload.Type())
		}
		rev, err := reverseStringPatch(text)
		if err != nil {
			return value.Value{}, err
		}
		return node(StringKey, value.FromString(rev)), nil
	case ObjectKey:
		changes, ok := payload.AsObject()
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s payload is %s", ErrBadDiff, ObjectKey, payload.Type())
		}
		res := value.NewObject()
		for k, c := range changes.All() {
			r, err := Reverse(c)
			if err != nil {
				return value.Value{}, fmt.Errorf("%s: %w", k, err)
			}
			res.Insert(k, r)
		}
		return node(ObjectKey, value.FromObject(res)), nil
	case ArrayKey:
		ops, ok := payload.AsArray()
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s payload is %s", ErrBadDiff, ArrayKey, payload.Type())
		}
		res := make(value.Array, len(ops))
		for i, op := range ops {
			r, err := Reverse(op)
			if err != nil {
				return value.Value{}, err
			}
			res[i] = r
		}
		return node(ArrayKey, value.FromArray(res)), nil
	}
	return value.Value{}, fmt.Errorf("%w: unexpected %q", ErrBadDiff, key)
}
