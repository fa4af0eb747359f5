package libdiff

import "errors"

// Every diff node is an object with exactly one of these keys.
const (
	ObjectKey  = "!object"
	ArrayKey   = "!array"
	InsertKey  = "!insert"
	DeleteKey  = "!delete"
	ReplaceKey = "!replace"
	StringKey  = "!strdiff"
	KeepKey    = "!keep"
)

var (
	ErrBadDiff  = errors.New("malformed diff")
	ErrConflict = errors.New("diff does not apply")
)
