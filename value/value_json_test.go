package value

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/number"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"float keeps fraction", FromNumeric(1.0), "1.0"},
		{"f32", FromNumeric(float32(0.5)), "0.5"},
		{"nan", FromNumeric(math.NaN()), "null"},
		{"u128", FromNumber(number.FromUint128(number.MaxUint128)), "340282366920938463463374607431768211455"},
		{"escapes", FromString("a\"b\n\x01"), `"a\"b\n\u0001"`},
		{"undefined member", FromPairs(KeyVal{Key: "u", Val: Undefined()}, KeyVal{Key: "a", Val: Null()}), `{"a":null}`},
		{"undefined element", FromValues(Undefined()), "[null]"},
		{"datetime", FromDateTime(datetime.MustParse("2023-04-05T10:00:00Z")), `"2023-04-05T10:00:00Z"`},
		{"nested", FromPairs(KeyVal{Key: "b", Val: FromValues(FromBool(true))}, KeyVal{Key: "a", Val: FromPairs()}), `{"b":[true],"a":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"z": 1, "a": [2.5, "s", null, false], "big": 3000000000}`), &v); err != nil {
		t.Fatal(err)
	}
	want := FromPairs(
		KeyVal{Key: "z", Val: FromNumeric(int32(1))},
		KeyVal{Key: "a", Val: FromValues(FromNumeric(2.5), FromString("s"), Null(), FromBool(false))},
		KeyVal{Key: "big", Val: FromNumeric(3e9)},
	)
	if diff := cmp.Diff(want, v, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	obj, _ := v.AsObject()
	if diff := cmp.Diff([]string{"z", "a", "big"}, obj.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if err := json.Unmarshal([]byte(`[1] 2`), &v); err == nil {
		t.Error("trailing data accepted")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := FromPairs(
		KeyVal{Key: "n", Val: FromNumeric(int32(-7))},
		KeyVal{Key: "f", Val: FromNumeric(2.0)},
		KeyVal{Key: "s", Val: FromString("héllo")},
		KeyVal{Key: "xs", Val: FromValues(FromBool(true), Null())},
	)
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var got Value
	if err := json.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
