package models

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Mode
	}{
		{"advanced", "advanced", ModeAdvanced},
		{"beginner", "beginner", ModeBeginner},
		{"unknown string", "expert", ModeBeginner},
		{"wrong case", "Advanced", ModeBeginner},
		{"empty string", "", ModeBeginner},
		{"absent", nil, ModeBeginner},
		{"number", 3.0, ModeBeginner},
		{"bool", true, ModeBeginner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseMode(tc.in); got != tc.want {
				t.Errorf("ParseMode(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
