// Package patch applies RFC 6902 JSON Patch and RFC 7386 merge patch
// documents to Values.
//
// Documents cross the patch engine as JSON, so number kinds are
// reassigned by parsing (an i8 becomes an i32, large integers become
// f64) and objects touched by a patch come back with sorted keys.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/parse"
	"github.com/signadot/valu/value"
)

var ErrPatch = errors.New("patch failed")

// Apply applies the JSON Patch operation list ops to doc.
func Apply(doc, ops value.Value) (value.Value, error) {
	if !ops.IsArray() {
		return value.Value{}, fmt.Errorf("%w: operations must be an array, got %s", ErrPatch, ops.Type())
	}
	if debug.Patch() {
		debug.Logf("json patch %s on %s\n", ops, doc)
	}
	d, p, err := marshal(doc, ops)
	if err != nil {
		return value.Value{}, err
	}
	jp, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jp.Apply(d)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out, parse.ParseJSON())
}

// Merge applies the merge patch mp to doc: members of mp replace those of
// doc recursively and null members delete.
func Merge(doc, mp value.Value) (value.Value, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", mp, doc)
	}
	d, p, err := marshal(doc, mp)
	if err != nil {
		return value.Value{}, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out, parse.ParseJSON())
}

// CreateMerge returns the merge patch taking from to to. Both must be
// objects.
func CreateMerge(from, to value.Value) (value.Value, error) {
	if !from.IsObject() || !to.IsObject() {
		return value.Value{}, fmt.Errorf("%w: merge patches need objects, got %s and %s", ErrPatch, from.Type(), to.Type())
	}
	f, t, err := marshal(from, to)
	if err != nil {
		return value.Value{}, err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out, parse.ParseJSON())
}

func marshal(a, b value.Value) ([]byte, []byte, error) {
	da, err := a.MarshalJSON()
	if err != nil {
		return nil, nil, err
	}
	db, err := b.MarshalJSON()
	if err != nil {
		return nil, nil, err
	}
	return da, db, nil
}
