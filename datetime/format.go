package datetime

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const isoDateTime = "2006-01-02T15:04:05"

// ISO8601 renders the extended ISO 8601 form. Date-times are written to
// the second without a zone suffix. Times of day keep a fraction of 3, 6
// or 9 digits when they have one.
func (d DateTime) ISO8601() string {
	switch d.kind {
	case DateKind:
		return d.date.String()
	case TimeKind:
		return isoTime(d.tod)
	case DateTimeKind:
		return d.t.Format(isoDateTime)
	}
	return ""
}

func isoTime(t civil.Time) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	switch ns := t.Nanosecond; {
	case ns == 0:
		return s
	case ns%1e6 == 0:
		return fmt.Sprintf("%s.%03d", s, ns/1e6)
	case ns%1e3 == 0:
		return fmt.Sprintf("%s.%06d", s, ns/1e3)
	default:
		return fmt.Sprintf("%s.%09d", s, ns)
	}
}

// RFC3339 renders date-times in RFC 3339 form. Dates and times of day
// have no RFC 3339 form and render as the empty string.
func (d DateTime) RFC3339() string {
	if d.kind != DateTimeKind {
		return ""
	}
	return d.t.Format(time.RFC3339Nano)
}

func (d DateTime) String() string {
	if d.kind == DateTimeKind {
		return d.RFC3339()
	}
	return d.ISO8601()
}
