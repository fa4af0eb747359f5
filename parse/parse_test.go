package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/encode"
	"github.com/signadot/valu/format"
	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

var valueComparer = cmp.Comparer(func(a, b value.Value) bool { return a.Equal(b) })

func TestParseJSON(t *testing.T) {
	tests := []struct {
		in   string
		want value.Value
	}{
		{`null`, value.Null()},
		{`true`, value.FromBool(true)},
		{`22`, value.FromNumeric(int32(22))},
		{`1e14`, value.FromNumeric(1e14)},
		{`-0.5`, value.FromNumeric(-0.5)},
		{`"s"`, value.FromString("s")},
		{`[]`, value.FromValues()},
		{`{"b": [1, "x"], "a": {}}`, value.FromPairs(
			value.KeyVal{Key: "b", Val: value.FromValues(value.FromNumeric(int32(1)), value.FromString("x"))},
			value.KeyVal{Key: "a", Val: value.FromPairs()},
		)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, valueComparer); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{`{`, `[1,]`, `1 2`, ``} {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
				t.Errorf("got %v, want ErrParse", err)
			}
		})
	}
	if _, err := Parse([]byte("1"), ParseFormat(format.Format(5))); !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	in := `
name: valu
count: 3
ratio: 0.25
neg: -4
tags:
  - a
  - b
nested:
  z: true
  a: null
`
	got, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := value.FromPairs(
		value.KeyVal{Key: "name", Val: value.FromString("valu")},
		value.KeyVal{Key: "count", Val: value.FromNumeric(int32(3))},
		value.KeyVal{Key: "ratio", Val: value.FromNumeric(0.25)},
		value.KeyVal{Key: "neg", Val: value.FromNumeric(int32(-4))},
		value.KeyVal{Key: "tags", Val: value.FromValues(value.FromString("a"), value.FromString("b"))},
		value.KeyVal{Key: "nested", Val: value.FromPairs(
			value.KeyVal{Key: "z", Val: value.FromBool(true)},
			value.KeyVal{Key: "a", Val: value.Null()},
		)},
	)
	if diff := cmp.Diff(want, got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	obj, _ := got.AsObject()
	if diff := cmp.Diff([]string{"name", "count", "ratio", "neg", "tags", "nested"}, obj.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestParseDateTimes(t *testing.T) {
	in := `{"d": "2023-04-05", "t": "10:00:00", "s": "hello"}`
	got, err := Parse([]byte(in), ParseDateTimes(true))
	if err != nil {
		t.Fatal(err)
	}
	want := value.FromPairs(
		value.KeyVal{Key: "d", Val: value.FromDateTime(datetime.MustParse("2023-04-05"))},
		value.KeyVal{Key: "t", Val: value.FromDateTime(datetime.MustParse("10:00:00"))},
		value.KeyVal{Key: "s", Val: value.FromString("hello")},
	)
	if diff := cmp.Diff(want, got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	plain, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Get(value.Key("d")).IsString() {
		t.Error("date parsed without option")
	}
}

func TestRoundTrip(t *testing.T) {
	v := value.FromPairs(
		value.KeyVal{Key: "i", Val: value.FromNumeric(int32(-12))},
		value.KeyVal{Key: "f", Val: value.FromNumeric(3.0)},
		value.KeyVal{Key: "s", Val: value.FromString("line\n\"quoted\"")},
		value.KeyVal{Key: "xs", Val: value.FromValues(value.FromBool(false), value.Null(), value.FromPairs())},
		value.KeyVal{Key: "when", Val: value.FromDateTime(datetime.MustParse("2023-04-05T10:00:00Z"))},
		value.KeyVal{Key: "big", Val: value.FromNumber(number.FromF64(1e300))},
	)
	for _, f := range format.AllFormats() {
		for _, wire := range []bool{false, true} {
			d := encode.MustString(v, encode.EncodeFormat(f), encode.EncodeWire(wire))
			got, err := Parse([]byte(d), ParseFormat(f), ParseDateTimes(true))
			if err != nil {
				t.Fatalf("%s wire=%t: %v\n%s", f, wire, err, d)
			}
			if diff := cmp.Diff(v, got, valueComparer); diff != "" {
				t.Errorf("%s wire=%t (-want +got):\n%s\n%s", f, wire, diff, d)
			}
		}
	}
}
