package libdiff

import (
	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/value"
)

// DiffFunc computes the diff of two values, returning false when there
// is no difference.
type DiffFunc func(from, to value.Value) (value.Value, bool)

// Diff returns the diff taking from to to, and false if they are Equal.
func Diff(from, to value.Value) (value.Value, bool) {
	d, ok := diff(from, to)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %s\n", from, to, d)
	}
	return d, ok
}

func diff(from, to value.Value) (value.Value, bool) {
	if from.Equal(to) {
		return value.Value{}, false
	}
	if from.Type() != to.Type() {
		return MakeDiff(from, to), true
	}
	switch from.Type() {
	case value.ObjectType:
		return DiffObject(from, to, diff)
	case value.ArrayType:
		return DiffArray(from, to, diff)
	case value.StringType:
		return DiffString(from, to)
	}
	return MakeDiff(from, to), true
}
