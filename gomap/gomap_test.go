package gomap

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

var valueComparer = cmp.Comparer(func(a, b value.Value) bool { return a.Equal(b) })

type address struct {
	Street string `valu:"street"`
	Zip    string `json:"zip,omitempty"`
}

type person struct {
	Name    string           `valu:"name"`
	Age     uint8            `valu:"age"`
	Email   *string          `valu:"email"`
	Tags    []string         `valu:"tags,omitempty"`
	Address address          `valu:"address"`
	Extra   map[string]int32 `valu:"extra,omitempty"`
	Born    civil.Date       `valu:"born"`
	Secret  string           `valu:"-"`
	private int
}

func obj(kvs ...value.KeyVal) value.Value {
	return value.FromObject(value.ObjectOf(kvs...))
}

func kv(k string, v value.Value) value.KeyVal {
	return value.KeyVal{Key: k, Val: v}
}

func TestToValue(t *testing.T) {
	email := "a@b.c"
	tests := []struct {
		name string
		in   any
		want value.Value
	}{
		{"nil", nil, value.Null()},
		{"string", "x", value.FromString("x")},
		{"int", 7, value.FromNumber(number.FromI64(7))},
		{"int8", int8(-3), value.FromNumber(number.FromI8(-3))},
		{"uint16", uint16(9), value.FromNumber(number.FromU16(9))},
		{"float32", float32(1.5), value.FromNumber(number.FromF32(1.5))},
		{"nil slice", []int(nil), value.Null()},
		{"empty slice", []int{}, value.FromValues()},
		{"array", [2]bool{true, false}, value.FromValues(value.FromBool(true), value.FromBool(false))},
		{"int keys", map[int]string{10: "b", 2: "a"}, obj(
			kv("2", value.FromString("a")),
			kv("10", value.FromString("b")),
		)},
		{"civil time", civil.Time{Hour: 12, Minute: 30}, value.FromDateTime(datetime.FromTime(civil.Time{Hour: 12, Minute: 30}))},
		{"int128", number.Int128{Hi: -1, Lo: math.MaxUint64}, value.FromNumber(number.FromInt128(number.Int128{Hi: -1, Lo: math.MaxUint64}))},
		{"struct", person{
			Name:    "ann",
			Age:     30,
			Email:   &email,
			Address: address{Street: "main"},
			Born:    civil.Date{Year: 1990, Month: time.May, Day: 2},
			Secret:  "s",
		}, obj(
			kv("name", value.FromString("ann")),
			kv("age", value.FromNumber(number.FromU8(30))),
			kv("email", value.FromString(email)),
			kv("address", obj(kv("street", value.FromString("main")))),
			kv("born", value.FromDateTime(datetime.MustParse("1990-05-02"))),
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToValue(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, valueComparer); diff != "" {
				t.Errorf("ToValue(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestToValueStructOrder(t *testing.T) {
	v, err := ToValue(person{})
	if err != nil {
		t.Fatal(err)
	}
	o, _ := v.AsObject()
	want := []string{"name", "age", "email", "address", "born"}
	if diff := cmp.Diff(want, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

type node struct {
	Next *node `valu:"next"`
}

func TestToValueCycle(t *testing.T) {
	n := &node{}
	n.Next = n
	_, err := ToValue(n)
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected MarshalError, got %v", err)
	}
}

func TestToValueBadMapKey(t *testing.T) {
	_, err := ToValue(map[bool]int{true: 1})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected MarshalError, got %v", err)
	}
}

type point struct{ X, Y int }

func (p point) ToValue() value.Value {
	return value.FromValues(value.FromNumeric(int64(p.X)), value.FromNumeric(int64(p.Y)))
}

func (p *point) FromValue(v value.Value) error {
	xs, err := value.DecodeSlice(v, value.AsI64)
	if err != nil {
		return err
	}
	if len(xs) != 2 {
		return errors.New("point needs two coordinates")
	}
	p.X, p.Y = int(xs[0]), int(xs[1])
	return nil
}

func TestBehaviors(t *testing.T) {
	v, err := ToValue(point{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := value.FromValues(value.FromNumeric(int64(1)), value.FromNumeric(int64(2)))
	if diff := cmp.Diff(want, v, valueComparer); diff != "" {
		t.Errorf("ToValue mismatch:\n%s", diff)
	}
	var p point
	if err := FromValue(v, &p); err != nil {
		t.Fatal(err)
	}
	if p != (point{1, 2}) {
		t.Errorf("got %+v", p)
	}
}

func TestFromValueRoundTrip(t *testing.T) {
	email := "a@b.c"
	in := person{
		Name:    "bob",
		Age:     41,
		Email:   &email,
		Tags:    []string{"x", "y"},
		Address: address{Street: "elm", Zip: "01234"},
		Extra:   map[string]int32{"k": -1},
		Born:    civil.Date{Year: 1983, Month: time.January, Day: 31},
	}
	v, err := ToValue(in)
	if err != nil {
		t.Fatal(err)
	}
	var out person
	if err := FromValue(v, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmp.AllowUnexported(person{})); diff != "" {
		t.Errorf("round trip (-in +out):\n%s", diff)
	}
}

func TestFromValueNumbers(t *testing.T) {
	i32 := value.FromNumber(number.FromI32(5))
	tests := []struct {
		name    string
		v       value.Value
		opts    []UnmapOption
		dst     any
		want    any
		wantErr bool
	}{
		{"exact", i32, nil, new(int32), int32(5), false},
		{"kind mismatch", i32, nil, new(int64), nil, true},
		{"int is i64", value.FromNumber(number.FromI64(5)), nil, new(int), 5, false},
		{"converted", i32, []UnmapOption{AllowNumericConversion()}, new(int64), int64(5), false},
		{"converted unsigned", i32, []UnmapOption{AllowNumericConversion()}, new(uint8), uint8(5), false},
		{"overflow", value.FromNumber(number.FromI32(300)), []UnmapOption{AllowNumericConversion()}, new(int8), nil, true},
		{"negative to unsigned", value.FromNumber(number.FromI32(-1)), []UnmapOption{AllowNumericConversion()}, new(uint32), nil, true},
		{"float to int", value.FromNumber(number.FromF64(1)), []UnmapOption{AllowNumericConversion()}, new(int64), nil, true},
		{"int to float", i32, []UnmapOption{AllowNumericConversion()}, new(float64), float64(5), false},
		{"string to int", value.FromString("5"), nil, new(int32), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromValue(tt.v, tt.dst, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", tt.dst)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := reflectElem(tt.dst)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func reflectElem(p any) any {
	switch x := p.(type) {
	case *int:
		return *x
	case *int32:
		return *x
	case *int64:
		return *x
	case *uint8:
		return *x
	case *float64:
		return *x
	}
	return nil
}

func TestFromValueTypeError(t *testing.T) {
	var p person
	err := FromValue(obj(kv("name", value.FromBool(true))), &p)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.FieldPath != "name" || te.Expected != "String" || te.Actual != "Boolean" {
		t.Errorf("got %+v", te)
	}
}

func TestFromValueNested(t *testing.T) {
	var xs [][]uint8
	v := value.FromValues(value.FromValues(value.FromNumber(number.FromU8(1)), value.FromString("x")))
	err := FromValue(v, &xs)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.FieldPath != "[0][1]" {
		t.Errorf("path %q", te.FieldPath)
	}
}

func TestFromValueNullAndUndefined(t *testing.T) {
	s := "keep"
	p := &s
	if err := FromValue(value.Null(), &p); err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("null left pointer %v", *p)
	}
	n := int64(3)
	if err := FromValue(value.Undefined(), &n); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("undefined changed target to %d", n)
	}
	if err := FromValue(value.Null(), &n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("null left %d", n)
	}
}

func TestFromValueNullSpecial(t *testing.T) {
	tm := time.Date(2023, 4, 5, 10, 30, 0, 0, time.UTC)
	date := civil.Date{Year: 2023, Month: time.April, Day: 5}
	tod := civil.Time{Hour: 10, Minute: 30}
	n := number.FromI32(7)
	dt := datetime.FromDate(date)
	i128 := number.Int128From64(-5)
	u128 := number.Uint128From64(5)
	tests := []struct {
		name string
		dst  any
	}{
		{"time", &tm},
		{"civil date", &date},
		{"civil time", &tod},
		{"number", &n},
		{"datetime", &dt},
		{"int128", &i128},
		{"uint128", &u128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := FromValue(value.Null(), tt.dst); err != nil {
				t.Fatal(err)
			}
			if got := reflect.ValueOf(tt.dst).Elem(); !got.IsZero() {
				t.Errorf("null left %v", got.Interface())
			}
		})
	}
	v := value.FromString("x")
	if err := FromValue(value.Null(), &v); err != nil {
		t.Fatal(err)
	}
	if !v.IsNull() {
		t.Errorf("value destination got %s", v)
	}
}

func TestFromValueUnknownFields(t *testing.T) {
	v := obj(kv("street", value.FromString("a")), kv("city", value.FromString("b")))
	var a address
	if err := FromValue(v, &a); err != nil {
		t.Fatal(err)
	}
	if err := FromValue(v, &a, DisallowUnknownFields()); err == nil {
		t.Error("expected unknown field error")
	}
}

func TestFromValueDestination(t *testing.T) {
	var a address
	for _, dst := range []any{nil, a, (*address)(nil)} {
		var ue *UnmarshalError
		if err := FromValue(value.Null(), dst); !errors.As(err, &ue) {
			t.Errorf("FromValue(%#v): %v", dst, err)
		}
	}
}

func TestFromValueTime(t *testing.T) {
	var tm time.Time
	if err := FromValue(value.FromString("2024-02-03T04:05:06Z"), &tm); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	if !tm.Equal(want) {
		t.Errorf("got %v", tm)
	}
	var d civil.Date
	if err := FromValue(value.FromDateTime(datetime.FromTimeValue(want)), &d); err == nil {
		t.Error("date-time decoded into civil.Date")
	}
}

func TestAny(t *testing.T) {
	v := obj(
		kv("i", value.FromNumber(number.FromI8(-2))),
		kv("u", value.FromNumber(number.FromU64(math.MaxUint64))),
		kv("f", value.FromNumber(number.FromF32(0.5))),
		kv("a", value.FromValues(value.Null(), value.FromBool(true))),
		kv("d", value.FromDateTime(datetime.MustParse("2020-01-02"))),
		kv("gone", value.Undefined()),
	)
	want := map[string]any{
		"i": -2,
		"u": uint64(math.MaxUint64),
		"f": 0.5,
		"a": []any{nil, true},
		"d": "2020-01-02",
	}
	got := ToAny(v)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}

	back, err := FromAny(map[string]any{"n": 1.5, "s": "x"})
	if err != nil {
		t.Fatal(err)
	}
	wantBack := obj(kv("n", value.FromNumeric(1.5)), kv("s", value.FromString("x")))
	if diff := cmp.Diff(wantBack, back, valueComparer); diff != "" {
		t.Errorf("FromAny (-want +got):\n%s", diff)
	}
}

func TestInterfaceField(t *testing.T) {
	type holder struct {
		Any any `valu:"any"`
	}
	var h holder
	if err := FromValue(obj(kv("any", value.FromValues(value.FromString("x")))), &h); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"x"}, h.Any); diff != "" {
		t.Error(diff)
	}
}
