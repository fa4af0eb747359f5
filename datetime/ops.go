package datetime

import (
	"time"

	"cloud.google.com/go/civil"
)

const day = 24 * time.Hour

func (d DateTime) Year() (int, bool) {
	switch d.kind {
	case DateKind:
		return d.date.Year, true
	case DateTimeKind:
		return d.t.Year(), true
	}
	return 0, false
}

func (d DateTime) Month() (int, bool) {
	switch d.kind {
	case DateKind:
		return int(d.date.Month), true
	case DateTimeKind:
		return int(d.t.Month()), true
	}
	return 0, false
}

func (d DateTime) Day() (int, bool) {
	switch d.kind {
	case DateKind:
		return d.date.Day, true
	case DateTimeKind:
		return d.t.Day(), true
	}
	return 0, false
}

func (d DateTime) Hour() (int, bool) {
	switch d.kind {
	case TimeKind:
		return d.tod.Hour, true
	case DateTimeKind:
		return d.t.Hour(), true
	}
	return 0, false
}

func (d DateTime) Minute() (int, bool) {
	switch d.kind {
	case TimeKind:
		return d.tod.Minute, true
	case DateTimeKind:
		return d.t.Minute(), true
	}
	return 0, false
}

func (d DateTime) Second() (int, bool) {
	switch d.kind {
	case TimeKind:
		return d.tod.Second, true
	case DateTimeKind:
		return d.t.Second(), true
	}
	return 0, false
}

// Timestamp returns seconds since the Unix epoch. Dates count from
// midnight UTC and bare times from 1970-01-01.
func (d DateTime) Timestamp() int64 {
	switch d.kind {
	case DateKind:
		return d.date.In(time.UTC).Unix()
	case TimeKind:
		return int64(d.tod.Hour*3600 + d.tod.Minute*60 + d.tod.Second)
	case DateTimeKind:
		return d.t.Unix()
	}
	return 0
}

// Timezone reports UTC for date-times; dates and times have no zone.
func (d DateTime) Timezone() (*time.Location, bool) {
	if d.kind != DateTimeKind {
		return nil, false
	}
	return time.UTC, true
}

// Add shifts d by dur. Dates move by whole days with dur truncated toward
// zero, date-times move exactly and times of day cannot be shifted.
func (d DateTime) Add(dur time.Duration) (DateTime, bool) {
	switch d.kind {
	case DateKind:
		return FromDate(d.date.AddDays(int(dur / day))), true
	case DateTimeKind:
		return FromTimeValue(d.t.Add(dur)), true
	}
	return DateTime{}, false
}

func (d DateTime) Sub(dur time.Duration) (DateTime, bool) {
	return d.Add(-dur)
}

// DurationBetween returns o - d for two dates or two date-times.
func (d DateTime) DurationBetween(o DateTime) (time.Duration, bool) {
	if d.kind != o.kind {
		return 0, false
	}
	switch d.kind {
	case DateKind:
		return time.Duration(o.date.DaysSince(d.date)) * day, true
	case DateTimeKind:
		return o.t.Sub(d.t), true
	}
	return 0, false
}

func (d DateTime) Equal(o DateTime) bool {
	c, ok := d.Compare(o)
	return ok && c == 0
}

// Compare orders two values of the same kind. Values of different kinds
// are not comparable.
func (d DateTime) Compare(o DateTime) (int, bool) {
	if d.kind != o.kind {
		return 0, false
	}
	switch d.kind {
	case DateKind:
		return cmpInt64(int64(d.date.DaysSince(o.date)), 0), true
	case TimeKind:
		return cmpInt64(nanoOfDay(d.tod), nanoOfDay(o.tod)), true
	case DateTimeKind:
		return d.t.Compare(o.t), true
	}
	return 0, true
}

func nanoOfDay(t civil.Time) int64 {
	return int64(t.Hour)*int64(time.Hour) +
		int64(t.Minute)*int64(time.Minute) +
		int64(t.Second)*int64(time.Second) +
		int64(t.Nanosecond)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
