package utility

import (
	"strings"
	"unicode"
)

// NormalizePhoneDigits loại bỏ mọi ký tự không phải chữ số khỏi số điện thoại.
// Dùng khi dựng link wa.me và khi lưu số điện thoại khách hàng.
func NormalizePhoneDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimCollapseSpaces chuẩn hóa chuỗi nhập từ khách: trim hai đầu và gộp khoảng trắng liên tiếp.
func TrimCollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
