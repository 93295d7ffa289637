// Package common - Test chuyển đổi tiền tệ céntimos và làm tròn half-up.
package common

import "testing"

func TestToCents_HalfUp(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{12.50, 1250},
		{0.005, 1},   // half-up: 0.5 céntimo làm tròn lên
		{0.004, 0},
		{99.999, 10000},
		{100.0, 10000},
		{19.90, 1990}, // 19.90*100 = 1989.9999... phải ra 1990
	}
	for _, c := range cases {
		if got := ToCents(c.amount); got != c.want {
			t.Errorf("ToCents(%v) = %d, muốn %d", c.amount, got, c.want)
		}
	}
}

func TestToAmount_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 1250, 11800} {
		if got := ToCents(ToAmount(cents)); got != cents {
			t.Errorf("ToCents(ToAmount(%d)) = %d, mất khớp", cents, got)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		v    float64
		want int64
	}{
		{0.5, 1},
		{1.49, 1},
		{1.5, 2},
		{-0.5, -1},
		{-1.49, -1},
		{10000.0, 10000},
	}
	for _, c := range cases {
		if got := RoundHalfUp(c.v); got != c.want {
			t.Errorf("RoundHalfUp(%v) = %d, muốn %d", c.v, got, c.want)
		}
	}
}

func TestFormatPEN(t *testing.T) {
	if got := FormatPEN(1250); got != "S/ 12.50" {
		t.Errorf("FormatPEN(1250) = %q, muốn %q", got, "S/ 12.50")
	}
	if got := FormatPEN(0); got != "S/ 0.00" {
		t.Errorf("FormatPEN(0) = %q, muốn %q", got, "S/ 0.00")
	}
}
