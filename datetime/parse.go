package datetime

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// zoned layouts are tried in order after the date and time forms.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

// localLayouts carry no zone and are read as UTC.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Parse reads s as a date (2006-01-02), then as a time of day
// (15:04:05 with optional fraction), then as a date-time. Date-times with
// a zone are converted to UTC; those without one are taken as UTC.
func Parse(s string) (DateTime, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return FromDate(d), nil
	}
	if t, err := civil.ParseTime(s); err == nil {
		return FromTime(t), nil
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTimeValue(t), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return FromTimeValue(t), nil
		}
	}
	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// MustParse is like Parse but panics if s is not a date, time or date-time.
func MustParse(s string) DateTime {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d DateTime) MarshalText() ([]byte, error) {
	if d.kind == InvalidKind {
		return nil, fmt.Errorf("%w: empty date/time", ErrInvalidFormat)
	}
	return []byte(d.String()), nil
}

func (d *DateTime) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
