package value

import (
	"strconv"

	"github.com/signadot/valu/number"
)

// ValueKey addresses an element of a container: a string key for
// objects or an index for arrays.
type ValueKey struct {
	key     string
	index   int
	isIndex bool
}

func KeyOf(s string) ValueKey { return ValueKey{key: s} }
func IndexOf(i int) ValueKey  { return ValueKey{index: i, isIndex: true} }

func (k ValueKey) IsIndex() bool { return k.isIndex }

// Index returns the index of an index key and 0 for a string key.
func (k ValueKey) Index() int { return k.index }

func (k ValueKey) AsIndex() int { return k.index }

func (k ValueKey) ToValueKey() ValueKey { return k }

func (k ValueKey) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.key
}

// ToValue renders string keys as strings and indexes as the narrowest
// numeric kind that holds them.
func (k ValueKey) ToValue() Value {
	if !k.isIndex {
		return FromString(k.key)
	}
	if k.index < 0 {
		return FromNumber(number.FitInt(int64(k.index)))
	}
	return FromNumber(number.FitUint(uint64(k.index)))
}

// ValueKeyBehavior is implemented by anything usable as a container key.
type ValueKeyBehavior interface {
	ToValueKey() ValueKey
	AsIndex() int
	IsIndex() bool
}

// Key is a string key.
type Key string

func (k Key) ToValueKey() ValueKey { return KeyOf(string(k)) }
func (Key) AsIndex() int           { return 0 }
func (Key) IsIndex() bool          { return false }

// Index is an array index.
type Index int

func (i Index) ToValueKey() ValueKey { return IndexOf(int(i)) }
func (i Index) AsIndex() int         { return int(i) }
func (Index) IsIndex() bool          { return true }
