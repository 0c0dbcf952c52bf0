package token

import (
	"math"
	"testing"
)

func TestFormatReal(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want string
	}{
		{"nan", math.NaN(), "null"},
		{"pos inf", math.Inf(1), "1e+9999"},
		{"neg inf", math.Inf(-1), "-1e+9999"},
		{"simple", 1.5, "1.5"},
		{"negative", -1.25, "-1.25"},
		{"tenth", 0.1, "0.10000000000000001"},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatReal(tt.f); got != tt.want {
				t.Errorf("FormatReal(%v) = %q, want %q", tt.f, got, tt.want)
			}
		})
	}
}

func TestFormatInt(t *testing.T) {
	if got := FormatInt(math.MinInt64); got != "-9223372036854775808" {
		t.Errorf("FormatInt(min) = %q", got)
	}
	if got := FormatUint(math.MaxUint64); got != "18446744073709551615" {
		t.Errorf("FormatUint(max) = %q", got)
	}
	if got := FormatInt(0); got != "0" {
		t.Errorf("FormatInt(0) = %q", got)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Number
	}{
		{"int", "123", Number{I: 123}},
		{"negative int", "-42", Number{I: -42}},
		{"i64 min", "-9223372036854775808", Number{I: math.MinInt64}},
		{"i64 max", "9223372036854775807", Number{I: math.MaxInt64}},
		{"beyond i64 is unsigned", "9223372036854775808",
			Number{IsUnsigned: true, U: 9223372036854775808}},
		{"u64 max", "18446744073709551615",
			Number{IsUnsigned: true, U: math.MaxUint64}},
		{"fraction", "1.5", Number{IsReal: true, F: 1.5}},
		{"exponent", "1e2", Number{IsReal: true, F: 100}},
		{"beyond u64 is real", "18446744073709551616",
			Number{IsReal: true, F: 18446744073709551616}},
		{"overflow saturates", "1e+9999", Number{IsReal: true, F: math.Inf(1)}},
		{"negative overflow", "-1e+9999", Number{IsReal: true, F: math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber([]byte(tt.in))
			if err != nil {
				t.Fatalf("ParseNumber(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, in := range []string{"", "-", "--1", "1.2.3", "abc"} {
		if _, err := ParseNumber([]byte(in)); err == nil {
			t.Errorf("ParseNumber(%q) accepted", in)
		}
	}
}
