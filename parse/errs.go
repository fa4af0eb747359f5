package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrTrailer = fmt.Errorf("%w: trailing data after document", ErrParse)
)
