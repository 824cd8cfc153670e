package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalize_Strings(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123.45", "123.45"},
		{"  99.90  ", "99.9"},
		{"0", "0"},
		{"-12.5", "-12.5"},
		{"", "0"},
		{"not-a-number", "0"},
		{"12.34.56", "0"},
	}

	for _, tc := range cases {
		got := Normalize(tc.in)
		if got.String() != tc.want {
			t.Errorf("Normalize(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_DriverTypes(t *testing.T) {
	if got := Normalize(nil); !got.IsZero() {
		t.Errorf("Normalize(nil) = %s, want 0", got)
	}
	if got := Normalize([]byte("42.01")); got.String() != "42.01" {
		t.Errorf("Normalize([]byte) = %s, want 42.01", got)
	}
	if got := Normalize(int64(7)); got.String() != "7" {
		t.Errorf("Normalize(int64) = %s, want 7", got)
	}
	if got := Normalize(3.5); got.String() != "3.5" {
		t.Errorf("Normalize(float64) = %s, want 3.5", got)
	}
	if got := Normalize(struct{}{}); !got.IsZero() {
		t.Errorf("Normalize(struct{}{}) = %s, want 0", got)
	}
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"33.333333", "33.33"},
		{"33.335", "33.34"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"100", "100"},
	}

	for _, tc := range cases {
		in, _ := decimal.NewFromString(tc.in)
		if got := Round2(in); got.String() != tc.want {
			t.Errorf("Round2(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	in, _ := decimal.NewFromString("33.335")
	if got := Display(in); got != 33.34 {
		t.Errorf("Display(33.335) = %v, want 33.34", got)
	}
	if got := Display(decimal.Zero); got != 0 {
		t.Errorf("Display(0) = %v, want 0", got)
	}
}
