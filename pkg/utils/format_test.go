package utils

import "testing"

func TestStringify(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int32(7), "7"},
		{int64(9), "9"},
		{250.0, "250"},
		{420.5, "420.5"},
	}
	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYesNo(t *testing.T) {
	if got := YesNo(true); got != "Yes" {
		t.Errorf("YesNo(true) = %q", got)
	}
	if got := YesNo(false); got != "No" {
		t.Errorf("YesNo(false) = %q", got)
	}
	if got := YesNo("maybe"); got != "maybe" {
		t.Errorf("YesNo fallback = %q", got)
	}
}
