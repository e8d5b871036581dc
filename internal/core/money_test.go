package core

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in  float64
		out float64
	}{
		{1100, 1100},
		{1051.1618, 1051.16},
		{2.005, 2.01}, // half rounds away from zero
		{-2.005, -2.01},
		{0.004, 0},
		{950.0, 950},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.out {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.out)
		}
	}

	if got := Round2(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("Round2(NaN) = %v, want NaN", got)
	}
	if got := Round2(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Round2(+Inf) = %v, want +Inf", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0.00"},
		{1100, "1100.00"},
		{1051.1618, "1051.16"},
		{12.5, "12.50"},
		{-3.333, "-3.33"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.out {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
