// Package utility - Test chuẩn hóa số điện thoại và chuỗi nhập từ khách.
package utility

import "testing"

func TestNormalizePhoneDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+51 987-654-321", "51987654321"},
		{"(01) 234 5678", "012345678"},
		{"987654321", "987654321"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePhoneDigits(c.in); got != c.want {
			t.Errorf("NormalizePhoneDigits(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}

func TestTrimCollapseSpaces(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Mesa  5  ", "Mesa 5"},
		{"Ana", "Ana"},
		{"   ", ""},
		{"a\t b\n c", "a b c"},
	}
	for _, c := range cases {
		if got := TrimCollapseSpaces(c.in); got != c.want {
			t.Errorf("TrimCollapseSpaces(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}
