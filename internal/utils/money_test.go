package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{1500, "1,500.00"},
		{1234567.891, "1,234,567.89"},
		{1500.5, "1,500.50"},
		{-200, "-200.00"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseNum(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"$1,500.00", 1500},
		{"1 500", 1500},
		{"1500,5", 1500.5},
		{"MXN 7500", 7500},
		{"-300", -300},
		{"abc", 0},
		{"1.2.3", 0},
	}
	for _, tc := range cases {
		if got := ParseNum(tc.in); got != tc.want {
			t.Fatalf("ParseNum(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
