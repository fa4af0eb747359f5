package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/number"
)

var valueComparer = cmp.Comparer(func(a, b Value) bool { return a.Equal(b) })

func TestZeroIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() || v.String() != "null" {
		t.Errorf("zero value is %s %q", v.Type(), v)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string", FromString("hello"), "hello"},
		{"number", FromNumeric(int32(42)), "42"},
		{"float", FromNumeric(3.5), "3.5"},
		{"bool", FromBool(true), "true"},
		{"null", Null(), "null"},
		{"undefined", Undefined(), "undefined"},
		{"date", FromDateTime(datetime.MustParse("2023-04-05")), "2023-04-05"},
		{"empty array", FromValues(), "[]"},
		{"array", FromValues(FromNumeric(int32(1)), FromString("a")), "[\n  1,\n  \"a\"\n]"},
		{"object", FromPairs(KeyVal{Key: "a", Val: FromBool(false)}), "{\n  \"a\": false\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectInsertKeepsPosition(t *testing.T) {
	obj := ObjectOf(
		KeyVal{Key: "a", Val: FromNumeric(int32(1))},
		KeyVal{Key: "b", Val: FromNumeric(int32(2))},
		KeyVal{Key: "a", Val: FromNumeric(int32(3))},
	)
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	v, _ := obj.Get("a")
	if n, ok := AsI32(v); !ok || n != 3 {
		t.Errorf("a = %s", v)
	}
	if _, ok := obj.Remove("a"); !ok || obj.Has("a") || obj.Len() != 1 {
		t.Error("remove failed")
	}
	var zero Object
	zero.Insert("x", Null())
	if zero.Len() != 1 {
		t.Error("zero object not usable")
	}
}

func TestSetLeavesCopies(t *testing.T) {
	arr := FromValues(FromString("a"), FromString("b"))
	arrCopy := arr
	if err := arr.Set(Index(0), FromString("x")); err != nil {
		t.Fatal(err)
	}
	if err := arr.Set(Index(2), FromString("c")); err != nil {
		t.Fatal(err)
	}
	if want := FromValues(FromString("a"), FromString("b")); !arrCopy.Equal(want) {
		t.Errorf("array copy changed: %s", arrCopy)
	}
	obj := FromPairs(KeyVal{Key: "a", Val: FromString("1")}, KeyVal{Key: "b", Val: FromString("2")})
	objCopy := obj
	if err := obj.Set(Key("a"), FromString("x")); err != nil {
		t.Fatal(err)
	}
	if _, ok := obj.Remove(Key("b")); !ok {
		t.Fatal("remove failed")
	}
	want := FromPairs(KeyVal{Key: "a", Val: FromString("1")}, KeyVal{Key: "b", Val: FromString("2")})
	if !objCopy.Equal(want) {
		t.Errorf("object copy changed: %s", objCopy)
	}
	if got := FromPairs(KeyVal{Key: "a", Val: FromString("x")}); !obj.Equal(got) {
		t.Errorf("got %s", obj)
	}
	if _, ok := obj.Remove(Key("missing")); ok {
		t.Error("removed a missing key")
	}
}

func TestClone(t *testing.T) {
	orig := FromPairs(KeyVal{Key: "xs", Val: FromValues(FromString("a"))})
	c := orig.Clone()
	xs := c.Get(Key("xs"))
	if err := xs.Set(Index(1), FromString("b")); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(Key("xs"), xs); err != nil {
		t.Fatal(err)
	}
	if n, _ := orig.Get(Key("xs")).Len(); n != 1 {
		t.Errorf("original changed: %s", orig)
	}
	if n, _ := c.Get(Key("xs")).Len(); n != 2 {
		t.Errorf("clone not changed: %s", c)
	}
}

func TestNavigation(t *testing.T) {
	v := FromPairs(
		KeyVal{Key: "list", Val: FromValues(FromString("x"), FromString("y"))},
		KeyVal{Key: "n", Val: FromNumber(number.FromU8(7))},
	)
	if got := v.GetPath(Key("list"), Index(1)); !got.Equal(FromString("y")) {
		t.Errorf("got %s", got)
	}
	if got := v.GetPath(Key("list"), Index(5)); !got.IsUndefined() {
		t.Errorf("got %s", got)
	}
	if got := v.Get(Index(0)); !got.IsUndefined() {
		t.Errorf("index on object: got %s", got)
	}
	if got := v.Get(IndexOf(0)); !got.IsUndefined() {
		t.Errorf("value key index on object: got %s", got)
	}

	list := v.Get(Key("list"))
	if err := list.Set(Key("a"), Null()); !errors.Is(err, ErrKeyMismatch) {
		t.Errorf("got %v", err)
	}
	if err := list.Set(Index(3), Null()); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v", err)
	}
	if err := list.Set(Index(2), FromString("z")); err != nil {
		t.Fatal(err)
	}
	s := FromString("s")
	if err := s.Set(Key("a"), Null()); !errors.Is(err, ErrKeyMismatch) {
		t.Errorf("got %v", err)
	}
	e, ok := list.Remove(Index(0))
	if !ok || !e.Equal(FromString("x")) {
		t.Errorf("removed %s %v", e, ok)
	}
	want := FromValues(FromString("y"), FromString("z"))
	if diff := cmp.Diff(want, list, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalk(t *testing.T) {
	v := FromValues(FromString("a"), FromValues(FromString("b")))
	got := v.Walk(func(e Value) Value {
		if s, ok := e.AsString(); ok {
			return FromString(s + s)
		}
		return e
	})
	want := FromValues(FromString("aa"), FromValues(FromString("bb")))
	if diff := cmp.Diff(want, got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, _ := typ.MarshalText()
		var got Type
		if err := got.UnmarshalText(d); err != nil || got != typ {
			t.Errorf("%s: got %s %v", typ, got, err)
		}
	}
	if ArrayType.IsLeaf() || !DateTimeType.IsLeaf() {
		t.Error("IsLeaf")
	}
}

func TestParsePath(t *testing.T) {
	doc := FromPairs(
		KeyVal{Key: "a", Val: FromValues(FromString("x"), FromPairs(KeyVal{Key: "b", Val: FromBool(true)}))},
		KeyVal{Key: "-1", Val: FromString("neg")},
	)
	tests := []struct {
		path string
		want Value
	}{
		{"", doc},
		{"a.0", FromString("x")},
		{"a.1.b", FromBool(true)},
		{"a.2", Undefined()},
		{"a.b", Undefined()},
		{"-1", FromString("neg")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := doc.GetPath(ParsePath(tt.path)...)
			if diff := cmp.Diff(tt.want, got, valueComparer); diff != "" {
				t.Errorf("GetPath(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}
