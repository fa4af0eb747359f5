// Package datetime provides DateTime, a calendar value holding a date, a
// time of day or a UTC instant.
//
// Dates and times of day are civil values without a zone
// (cloud.google.com/go/civil). Instants are always normalized to UTC.
package datetime

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidFormat is wrapped by every Parse and constructor failure.
var ErrInvalidFormat = errors.New("invalid date/time format")

// Kind is the shape of a DateTime payload. It is fixed at construction.
type Kind int

const (
	InvalidKind Kind = iota
	DateKind
	TimeKind
	DateTimeKind
)

func (k Kind) String() string {
	switch k {
	case DateKind:
		return "date"
	case TimeKind:
		return "time"
	case DateTimeKind:
		return "datetime"
	}
	return "invalid"
}

// DateTime holds exactly one of a civil date, a civil time of day or a
// UTC instant. The zero DateTime has InvalidKind.
type DateTime struct {
	kind Kind
	date civil.Date
	tod  civil.Time
	t    time.Time
}

func FromDate(d civil.Date) DateTime {
	return DateTime{kind: DateKind, date: d}
}

func FromTime(t civil.Time) DateTime {
	return DateTime{kind: TimeKind, tod: t}
}

// FromTimeValue wraps t as a date-time converted to UTC.
func FromTimeValue(t time.Time) DateTime {
	return DateTime{kind: DateTimeKind, t: t.UTC()}
}

// FromUnixNano interprets ns as nanoseconds since the Unix epoch, UTC.
func FromUnixNano(ns int64) DateTime {
	return FromTimeValue(time.Unix(0, ns))
}

func Now() DateTime {
	return FromTimeValue(time.Now())
}

// NewDate validates and wraps a calendar date.
func NewDate(year int, month time.Month, day int) (DateTime, error) {
	d := civil.Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return DateTime{}, fmt.Errorf("%w: no such date %s", ErrInvalidFormat, d)
	}
	return FromDate(d), nil
}

// NewDateTime validates and wraps a UTC date-time at whole-second precision.
func NewDateTime(year int, month time.Month, day, hour, min, sec int) (DateTime, error) {
	d := civil.DateTime{
		Date: civil.Date{Year: year, Month: month, Day: day},
		Time: civil.Time{Hour: hour, Minute: min, Second: sec},
	}
	if !d.IsValid() {
		return DateTime{}, fmt.Errorf("%w: no such date-time %s", ErrInvalidFormat, d)
	}
	return FromTimeValue(d.In(time.UTC)), nil
}

func (d DateTime) Kind() Kind       { return d.kind }
func (d DateTime) IsDate() bool     { return d.kind == DateKind }
func (d DateTime) IsTime() bool     { return d.kind == TimeKind }
func (d DateTime) IsDateTime() bool { return d.kind == DateTimeKind }
func (d DateTime) IsZero() bool     { return d.kind == InvalidKind }

func (d DateTime) AsDate() (civil.Date, bool) {
	return d.date, d.kind == DateKind
}

func (d DateTime) AsTime() (civil.Time, bool) {
	return d.tod, d.kind == TimeKind
}

func (d DateTime) AsDateTime() (time.Time, bool) {
	return d.t, d.kind == DateTimeKind
}
