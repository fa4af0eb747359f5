package value

import (
	"math"
	"testing"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/number"
)

func TestCompare(t *testing.T) {
	obj := func(k string) Value { return FromPairs(KeyVal{Key: k, Val: Null()}) }
	tests := []struct {
		name string
		a, b Value
		want int
		ok   bool
	}{
		{"float order", FromNumeric(3.14), FromNumeric(3.141), -1, true},
		{"float order reversed", FromNumeric(3.141), FromNumeric(3.14), 1, true},
		{"numbers across kinds", FromNumeric(uint8(3)), FromNumeric(int64(3)), 0, true},
		{"string vs number", FromString("3"), FromNumeric(int32(3)), 0, false},
		{"strings", FromString("a"), FromString("b"), -1, true},
		{"bools", FromBool(false), FromBool(true), -1, true},
		{"nulls", Null(), Null(), 0, true},
		{"null vs undefined", Null(), Undefined(), 0, false},
		{"arrays by element", FromValues(FromString("a")), FromValues(FromString("b")), -1, true},
		{"arrays by length", FromValues(), FromValues(Null()), -1, true},
		{"arrays incomparable element", FromValues(Null()), FromValues(FromBool(true)), 0, false},
		{"dates", FromDateTime(datetime.MustParse("2023-04-05")), FromDateTime(datetime.MustParse("2023-04-04")), 1, true},
		{"date vs time", FromDateTime(datetime.MustParse("2023-04-05")), FromDateTime(datetime.MustParse("10:00:00")), 0, false},
		{"equal objects", obj("a"), obj("a"), 0, true},
		{"different objects", obj("a"), obj("b"), 0, false},
		{"nan", FromNumeric(math.NaN()), FromNumeric(1.0), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Compare(tt.b)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Compare() = %d, %v; want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
	if !Less(FromNumeric(3.14), FromNumeric(3.141)) || Less(FromString("a"), FromBool(true)) {
		t.Error("Less")
	}
}

func TestEqual(t *testing.T) {
	a := FromPairs(
		KeyVal{Key: "x", Val: FromNumeric(int32(1))},
		KeyVal{Key: "y", Val: FromValues(FromString("s"))},
	)
	b := FromPairs(
		KeyVal{Key: "y", Val: FromValues(FromString("s"))},
		KeyVal{Key: "x", Val: FromNumeric(int32(1))},
	)
	if !a.Equal(b) {
		t.Error("objects differing in key order are not equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal objects hash differently")
	}
	if FromNumeric(int32(1)).Equal(FromNumeric(int64(1))) {
		t.Error("numbers of different kinds are equal")
	}
	u8, i64 := FromNumeric(uint8(3)), FromNumeric(int64(3))
	if c, ok := u8.Compare(i64); !ok || c != 0 {
		t.Errorf("u8 3 vs i64 3: got %d %v", c, ok)
	}
	if u8.Equal(i64) {
		t.Error("u8 3 equals i64 3")
	}
	if FromValues(FromString("a"), FromString("b")).Equal(FromValues(FromString("b"), FromString("a"))) {
		t.Error("array order ignored")
	}
}

func TestHash(t *testing.T) {
	if FromNumber(number.FromF64(0)).Hash() != FromNumber(number.FromF64(math.Copysign(0, -1))).Hash() {
		t.Error("zero and negative zero hash differently")
	}
	if FromString("a").Hash() == FromString("b").Hash() {
		t.Error("distinct strings collide")
	}
	if FromValues(FromString("a"), FromString("b")).Hash() == FromValues(FromString("b"), FromString("a")).Hash() {
		t.Error("array hash ignores order")
	}
	if FromNumeric(int32(1)).Hash() == FromNumeric(int64(1)).Hash() {
		t.Error("kinds hash alike")
	}
}
