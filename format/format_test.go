package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if err != nil || f != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, f, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) err = %v, want ErrBadFormat", err)
	}
}

func TestFormatText(t *testing.T) {
	if YAMLFormat.String() != "yaml" || JSONFormat.String() != "json" {
		t.Error("String() mismatch")
	}
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil || !f.IsJSON() {
		t.Errorf("UnmarshalText(json) = %v, %v", f, err)
	}
	if YAMLFormat.Suffix() != ".yaml" || JSONFormat.Suffix() != ".json" {
		t.Error("Suffix() mismatch")
	}
}
