package common

import (
	"fmt"
	"math"
)

// Tiền tệ được xử lý nội bộ bằng céntimos (int64) để tránh sai số float
// khi cộng dồn và tách thuế. Chỉ chuyển về số thập phân ở biên API.

// ToCents chuyển số tiền (PEN) sang céntimos, làm tròn half-up
func ToCents(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}

// ToAmount chuyển céntimos về số tiền 2 chữ số thập phân
func ToAmount(cents int64) float64 {
	return float64(cents) / 100
}

// RoundHalfUp làm tròn half-up một giá trị float về int64
func RoundHalfUp(v float64) int64 {
	if v < 0 {
		return -int64(math.Floor(-v + 0.5))
	}
	return int64(math.Floor(v + 0.5))
}

// FormatPEN định dạng céntimos theo kiểu hiển thị "S/ 12.50"
func FormatPEN(cents int64) string {
	return fmt.Sprintf("S/ %.2f", ToAmount(cents))
}
