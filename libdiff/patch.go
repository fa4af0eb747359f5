package libdiff

import (
	"fmt"

	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/value"
)

// Patch applies d to doc. Deleted and replaced values must be present in
// doc as recorded, otherwise the result wraps ErrConflict. Members added
// to an object are placed after the existing ones.
func Patch(doc, d value.Value) (value.Value, error) {
	res, err := patch(doc, d)
	if debug.Diff() {
		debug.Logf("patch %s with %s: %s %v\n", doc, d, res, err)
	}
	return res, err
}

func patch(doc, d value.Value) (value.Value, error) {
	key, payload, ok := split(d)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s", ErrBadDiff, d)
	}
	switch key {
	case ReplaceKey:
		from, to, ok := replaceSides(payload)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s needs from and to", ErrBadDiff, ReplaceKey)
		}
		if !doc.Equal(from) {
			return value.Value{}, fmt.Errorf("%w: expected %s, found %s", ErrConflict, from, doc)
		}
		return to.Clone(), nil
	case StringKey:
		text, ok := payload.AsString()
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s payload is %s", ErrBadDiff, StringKey, payload.Type())
		}
		return patchString(doc, text)
	case ObjectKey:
		return patchObject(doc, payload)
	case ArrayKey:
		return patchArray(doc, payload)
	}
	return value.Value{}, fmt.Errorf("%w: unexpected %q", ErrBadDiff, key)
}

func patchObject(doc, payload value.Value) (value.Value, error) {
	obj, ok := doc.AsObject()
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s applied to %s", ErrConflict, ObjectKey, doc.Type())
	}
	changes, ok := payload.AsObject()
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s payload is %s", ErrBadDiff, ObjectKey, payload.Type())
	}
	res := obj.Clone()
	for k, d := range changes.All() {
		op, p, ok := split(d)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: member %q: %s", ErrBadDiff, k, d)
		}
		cur, has := res.Get(k)
		switch op {
		case InsertKey:
			if has {
				return value.Value{}, fmt.Errorf("%w: member %q already present", ErrConflict, k)
			}
			res.Insert(k, p.Clone())
		case DeleteKey:
			if !has || !cur.Equal(p) {
				return value.Value{}, fmt.Errorf("%w: member %q is not %s", ErrConflict, k, p)
			}
			res.Remove(k)
		default:
			if !has {
				return value.Value{}, fmt.Errorf("%w: member %q missing", ErrConflict, k)
			}
			nv, err := patch(cur, d)
			if err != nil {
				return value.Value{}, fmt.Errorf("%s: %w", k, err)
			}
			res.Insert(k, nv)
		}
	}
	return value.FromObject(res), nil
}

func patchArray(doc, payload value.Value) (value.Value, error) {
	arr, ok := doc.AsArray()
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s applied to %s", ErrConflict, ArrayKey, doc.Type())
	}
	ops, ok := payload.AsArray()
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s payload is %s", ErrBadDiff, ArrayKey, payload.Type())
	}
	res := make(value.Array, 0, len(arr))
	fi := 0
	next := func() (value.Value, error) {
		if fi >= len(arr) {
			return value.Value{}, fmt.Errorf("%w: array too short", ErrConflict)
		}
		fi++
		return arr[fi-1], nil
	}
	for _, d := range ops {
		op, p, ok := split(d)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: array op %s", ErrBadDiff, d)
		}
		switch op {
		case KeepKey:
			n, ok := p.AsNumber()
			k, isInt := n.ToI64()
			if !ok || !isInt || k < 0 {
				return value.Value{}, fmt.Errorf("%w: %s count %s", ErrBadDiff, KeepKey, p)
			}
			for range k {
				e, err := next()
				if err != nil {
					return value.Value{}, err
				}
				res = append(res, e.Clone())
			}
		case InsertKey:
			res = append(res, p.Clone())
		case DeleteKey:
			e, err := next()
			if err != nil {
				return value.Value{}, err
			}
			if !e.Equal(p) {
				return value.Value{}, fmt.Errorf("%w: [%d] is %s, not %s", ErrConflict, fi-1, e, p)
			}
		default:
			e, err := next()
			if err != nil {
				return value.Value{}, err
			}
			nv, err := patch(e, d)
			if err != nil {
				return value.Value{}, fmt.Errorf("[%d]: %w", fi-1, err)
			}
			res = append(res, nv)
		}
	}
	if fi != len(arr) {
		return value.Value{}, fmt.Errorf("%w: %d trailing elements not covered", ErrConflict, len(arr)-fi)
	}
	return value.FromArray(res), nil
}
