package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/valu/number"
	"github.com/signadot/valu/parse"
	"github.com/signadot/valu/value"
)

var valueComparer = cmp.Comparer(func(a, b value.Value) bool { return a.Equal(b) })

func mustParse(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func i64(x int64) value.Value { return value.FromNumber(number.FromI64(x)) }

func TestEval(t *testing.T) {
	env := `{"a": 1, "b": 2.5, "s": "hi", "xs": [1, 2, 3], "o": {"k": null, "deep": [{"x": "y"}]}}`
	tests := []struct {
		src  string
		want value.Value
	}{
		{`a + 2`, i64(3)},
		{`b * 2`, value.FromNumeric(5.0)},
		{`s + " there"`, value.FromString("hi there")},
		{`len(xs)`, i64(3)},
		{`map(xs, # * 10)`, value.FromValues(i64(10), i64(20), i64(30))},
		{`o.k == nil`, value.FromBool(true)},
		{`kind(s)`, value.FromString("String")},
		{`kind(xs)`, value.FromString("Array")},
		{`isnull(o.k)`, value.FromBool(true)},
		{`number("300") + 1`, i64(301)},
		{`number("1.5")`, value.FromNumeric(1.5)},
		{`get("o.deep.0.x")`, value.FromString("y")},
		{`parse("{c: [1]}").c[0]`, i64(1)},
		{`{"sum": a + 1}`, value.FromPairs(value.KeyVal{Key: "sum", Val: i64(2)})},
	}
	envV := mustParse(t, env)
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src, envV)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, valueComparer); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestProgramReuse(t *testing.T) {
	p, err := Compile(`1 + 2`, AsBool())
	if err == nil {
		t.Fatalf("expected AsBool to reject a numeric expression, got %v", p)
	}
	p, err = Compile(`n > 1`, AsBool())
	if err != nil {
		t.Fatal(err)
	}
	for n, want := range map[int64]bool{0: false, 5: true} {
		got, err := p.Run(value.FromPairs(value.KeyVal{Key: "n", Val: i64(n)}))
		if err != nil {
			t.Fatal(err)
		}
		if b, _ := got.AsBool(); b != want {
			t.Errorf("n=%d: got %s", n, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := Eval(`1 +`, value.Null()); err == nil {
		t.Error("expected compile error")
	}
	if _, err := Eval(`1`, value.FromString("x")); !errors.Is(err, ErrEnv) {
		t.Errorf("expected ErrEnv, got %v", err)
	}
	if _, err := Eval(`get("missing")`, mustParse(t, `{}`)); err == nil {
		t.Error("expected error for missing path")
	}
	if _, err := Eval(`number("abc")`, value.Null()); err == nil {
		t.Error("expected number parse error")
	}
}

func TestWithFunction(t *testing.T) {
	double := WithFunction("double", func(params ...any) (any, error) {
		return params[0].(int) * 2, nil
	}, new(func(int) int))
	got, err := Eval(`double(21)`, value.Null(), double)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(i64(42)) {
		t.Errorf("got %s", got)
	}
}

func TestExpandString(t *testing.T) {
	env := mustParse(t, `{"name": "world", "n": 2, "xs": [1, "a"]}`)
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"hello $[name]!", "hello world!"},
		{"$[n + 1] items", "3 items"},
		{"list $[xs]", `list [1,"a"]`},
		{`$[name + "\]"]`, "world]"},
		{"cost $5", "cost $5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandString(tt.in, env)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
	if _, err := ExpandString("$[name", env); err == nil {
		t.Error("expected unterminated error")
	}
}

func TestExpand(t *testing.T) {
	env := mustParse(t, `{"env": "prod"}`)
	doc := mustParse(t, `{"host-$[env]": ["db.$[env].local", 5]}`)
	want := mustParse(t, `{"host-prod": ["db.prod.local", 5]}`)
	got, err := Expand(doc, env)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, valueComparer); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}
