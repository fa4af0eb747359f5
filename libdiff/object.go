package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/valu/value"
)

// DiffObject diffs two objects member by member. Key sequences are
// aligned first so the result lists deletions, changes and insertions
// in document order.
func DiffObject(from, to value.Value, df DiffFunc) (value.Value, bool) {
	fo, _ := from.AsObject()
	tobj, _ := to.AsObject()
	fromKeys, toKeys := fo.Keys(), tobj.Keys()

	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, fromKeys)
	toRunes := mapFieldsTo(fieldMap, toKeys)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	res := value.NewObject()
	// a key moved within the object shows up as delete plus insert
	var moved []string
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				k := fromKeys[fi]
				if tobj.Has(k) {
					moved = append(moved, k)
				} else {
					fv, _ := fo.Get(k)
					res.Insert(k, Delete(fv))
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				k := fromKeys[fi]
				fv, _ := fo.Get(k)
				tv, _ := tobj.Get(k)
				if d, ok := df(fv, tv); ok {
					res.Insert(k, d)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				k := toKeys[ti]
				if !fo.Has(k) {
					tv, _ := tobj.Get(k)
					res.Insert(k, Insert(tv))
				}
				ti++
			}
		}
	}
	for _, k := range moved {
		fv, _ := fo.Get(k)
		tv, _ := tobj.Get(k)
		if d, ok := df(fv, tv); ok {
			res.Insert(k, d)
		}
	}
	if res.Len() == 0 {
		return value.Value{}, false
	}
	return node(ObjectKey, value.FromObject(res)), true
}

func mapFieldsTo(m map[string]rune, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}
