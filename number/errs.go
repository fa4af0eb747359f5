package number

import "errors"

// ErrNotNumber is wrapped by every parse failure in this package.
var ErrNotNumber = errors.New("not a number")
