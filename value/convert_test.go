package value

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/valu/number"
)

func TestScalarConversionsNeedExactKind(t *testing.T) {
	v := FromNumber(number.FromU8(42))
	if _, ok := AsI32(v); ok {
		t.Error("i32 accepted u8")
	}
	if n, ok := AsU8(v); !ok || n != 42 {
		t.Errorf("got %d %v", n, ok)
	}
	if _, ok := AsStringValue(v); ok {
		t.Error("string accepted number")
	}
	if _, ok := AsU8(FromString("42")); ok {
		t.Error("u8 accepted string")
	}
	if got, ok := AsValue(v); !ok || !got.Equal(v) {
		t.Error("identity conversion")
	}
}

func TestFromValueGeneric(t *testing.T) {
	if n, ok := FromValue[int32](FromNumeric(int32(-4))); !ok || n != -4 {
		t.Errorf("got %d %v", n, ok)
	}
	if _, ok := FromValue[int64](FromNumeric(int32(-4))); ok {
		t.Error("int64 accepted i32")
	}
	if s, ok := FromValue[string](FromString("s")); !ok || s != "s" {
		t.Errorf("got %q %v", s, ok)
	}
	if x, ok := FromValue[number.Int128](FromNumber(number.FromInt128(number.MaxInt128))); !ok || x != number.MaxInt128 {
		t.Errorf("got %s %v", x, ok)
	}
	if _, ok := FromValue[complex64](FromNumeric(1.0)); ok {
		t.Error("unsupported type converted")
	}
	if n, ok := FromValue[int](FromNumeric(5)); !ok || n != 5 {
		t.Errorf("int: got %d %v", n, ok)
	}
	if n, ok := FromValue[int](FromNumeric(-5)); !ok || n != -5 {
		t.Errorf("negative int: got %d %v", n, ok)
	}
	if n, ok := FromValue[uint](FromNumeric(uint(7))); !ok || n != 7 {
		t.Errorf("uint: got %d %v", n, ok)
	}
	if _, ok := FromValue[int](FromNumeric(int32(5))); ok {
		t.Error("int read from an i32 slot")
	}
}

func TestRoundTrip(t *testing.T) {
	xs := []int32{1, -2, 3}
	v := FromSlice(xs, FromNumeric[int32])
	got, ok := SliceOf(AsI32)(v)
	if !ok {
		t.Fatal("conversion failed")
	}
	if diff := cmp.Diff(xs, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	m := map[string]string{"b": "2", "a": "1"}
	mv := FromStringMap(m, FromString)
	obj, _ := mv.AsObject()
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	gotMap, ok := MapOf(AsStringValue)(mv)
	if !ok {
		t.Fatal("map conversion failed")
	}
	if diff := cmp.Diff(m, gotMap); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	pairs, ok := PairsOf(AsStringValue)(mv)
	if !ok || pairs[0].Key != "a" || pairs[1].Val != "2" {
		t.Errorf("pairs %v %v", pairs, ok)
	}
}

func TestSliceFailure(t *testing.T) {
	v := FromValues(FromNumeric(int32(1)), FromString("x"))
	if _, ok := SliceOf(AsI32)(v); ok {
		t.Error("mixed array converted")
	}
	_, err := DecodeSlice(v, AsI32)
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Path != "[1]" || ce.Actual != StringType {
		t.Errorf("got %v", err)
	}
	if !errors.Is(err, ErrConversion) {
		t.Errorf("got %v", err)
	}
	if _, ok := SliceOf(AsI32)(FromString("x")); ok {
		t.Error("string converted to slice")
	}
	if _, ok := MustSliceOf(AsI32)(FromString("x")); ok {
		t.Error("strict conversion accepted string")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustSliceOf(AsI32)(v)
}

func TestMapFailure(t *testing.T) {
	v := FromPairs(KeyVal{Key: "k", Val: Null()})
	_, err := DecodeMap(v, AsBoolValue)
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Path != ".k" {
		t.Errorf("got %v", err)
	}
	if _, ok := MapOf(AsBoolValue)(v); ok {
		t.Error("converted")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustMapOf(AsBoolValue)(v)
}

func TestOptional(t *testing.T) {
	opt := OptionalOf(AsI32)

	p, ok := opt(Null())
	if ok || p != nil {
		t.Errorf("null: got %v %v, want outer absence", p, ok)
	}

	p, ok = opt(FromNumeric(int32(42)))
	if !ok || p == nil || *p != 42 {
		t.Errorf("42: got %v %v, want present 42", p, ok)
	}

	p, ok = opt(FromString("x"))
	if !ok || p != nil {
		t.Errorf("string: got %v %v, want present but empty", p, ok)
	}

	if v := FromOptional[int32](nil, FromNumeric[int32]); !v.IsNull() {
		t.Errorf("nil pointer encoded as %s", v)
	}
	x := int32(5)
	if v := FromOptional(&x, FromNumeric[int32]); !v.Equal(FromNumeric(int32(5))) {
		t.Errorf("got %s", v)
	}
}

func TestToValueBehavior(t *testing.T) {
	var vs []ToValueBehavior = []ToValueBehavior{
		FromString("a"),
		Array{Null()},
		NewObject(),
		KeyOf("k"),
		IndexOf(3),
	}
	want := []Type{StringType, ArrayType, ObjectType, StringType, NumberType}
	for i, tv := range vs {
		if got := tv.ToValue().Type(); got != want[i] {
			t.Errorf("%d: got %s, want %s", i, got, want[i])
		}
	}
	if n, ok := AsU8(IndexOf(3).ToValue()); !ok || n != 3 {
		t.Errorf("index value %d %v", n, ok)
	}
	ts := time.Date(2023, 4, 5, 10, 0, 0, 0, time.UTC)
	if got := FromTime(ts).String(); got != "2023-04-05T10:00:00Z" {
		t.Errorf("got %s", got)
	}
}

func TestKeys(t *testing.T) {
	var k ValueKeyBehavior = Key("name")
	if k.IsIndex() || k.AsIndex() != 0 || k.ToValueKey().String() != "name" {
		t.Error("string key")
	}
	k = Index(4)
	if !k.IsIndex() || k.AsIndex() != 4 || k.ToValueKey().Index() != 4 {
		t.Error("index key")
	}
}
