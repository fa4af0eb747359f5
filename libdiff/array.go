package libdiff

import (
	"math"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

// DiffArray aligns the elements of two arrays and produces an edit
// script.
//
// Scalars are aligned by hash and containers by type, so a modified
// object in place of an object is diffed recursively while a changed
// scalar is a delete followed by an insert, merged into a replace.
func DiffArray(from, to value.Value, df DiffFunc) (value.Value, bool) {
	fa, _ := from.AsArray()
	ta, _ := to.AsArray()
	m := map[uint64]rune{}
	fromRunes := mapValues(m, fa)
	toRunes := mapValues(m, ta)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var ops value.Array
	keep := 0
	flush := func() {
		if keep > 0 {
			ops = append(ops, node(KeepKey, keepCount(keep)))
			keep = 0
		}
	}
	changed := false
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			flush()
			for range n {
				ops = append(ops, Delete(fa[fi]))
				fi++
			}
			changed = true
		case diffpatch.DiffEqual:
			for range n {
				if d, ok := df(fa[fi], ta[ti]); ok {
					flush()
					ops = append(ops, d)
					changed = true
				} else {
					keep++
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			flush()
			for range n {
				last := len(ops) - 1
				if last >= 0 {
					if k, p, _ := split(ops[last]); k == DeleteKey {
						// delete then insert at the same position
						ops[last] = MakeDiff(p, ta[ti])
						ti++
						continue
					}
				}
				ops = append(ops, Insert(ta[ti]))
				ti++
			}
			changed = true
		}
	}
	if !changed {
		return value.Value{}, false
	}
	flush()
	return node(ArrayKey, value.FromArray(ops)), true
}

func mapValues(m map[uint64]rune, arr value.Array) []rune {
	rs := make([]rune, len(arr))
	for i, v := range arr {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summary(v value.Value) uint64 {
	switch v.Type() {
	case value.ObjectType, value.ArrayType:
		return uint64(v.Type())
	}
	return v.Hash()
}

// keepCount uses i32 where it fits, matching how JSON integers parse.
func keepCount(n int) value.Value {
	if n <= math.MaxInt32 {
		return value.FromNumber(number.FromI32(int32(n)))
	}
	return value.FromNumber(number.FromI64(int64(n)))
}
