package ir

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"4.0.9.331", Version{4, 0, 9, 331}},
		{"3.6.4.0", Version{3, 6, 4, 0}},
		// tolerant: integer prefixes parse, the rest defaults
		{"5.2", Version{5, 2, 9, 331}},
		{"5.2.x.7", Version{5, 2, 9, 331}},
		{"bogus", DefaultVersion()},
		{"", DefaultVersion()},
		{"1.2.3.4.5", Version{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseVersion(tt.in); got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	v := Version{4, 0, 9, 331}
	if got := v.String(); got != "4.0.9.331" {
		t.Errorf("String() = %q", got)
	}
	if got := ParseVersion(v.String()); got != v {
		t.Errorf("round trip = %v", got)
	}
}
