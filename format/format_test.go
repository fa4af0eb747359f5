package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"y", YAMLFormat, false},
		{"yaml", YAMLFormat, false},
		{"tony", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				if !errors.Is(err, ErrBadFormat) {
					t.Errorf("got %v, want ErrBadFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %s %v, want %s", got, err, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	for _, f := range AllFormats() {
		var got Format
		if err := got.UnmarshalText([]byte(f.String())); err != nil || got != f {
			t.Errorf("%s: got %s %v", f, got, err)
		}
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("bad format marshaled")
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		name string
		want Format
		ok   bool
	}{
		{"a.json", JSONFormat, true},
		{"dir/b.yaml", YAMLFormat, true},
		{"c.yml", YAMLFormat, true},
		{"d.txt", 0, false},
		{".json", 0, false},
	}
	for _, tt := range tests {
		got, ok := FromSuffix(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: got %s %v", tt.name, got, ok)
		}
	}
}
