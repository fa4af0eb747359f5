package parse

import (
	"github.com/signadot/valu/format"
)

type parseOpts struct {
	format    format.Format
	dateTimes bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseDateTimes makes strings holding a date, time or date-time parse
// as date-time values.
func ParseDateTimes(v bool) ParseOption {
	return func(o *parseOpts) { o.dateTimes = v }
}
