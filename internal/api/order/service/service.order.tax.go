package ordersvc

import (
	"catalogo_commerce/internal/common"
)

// TaxSplit là kết quả tách IGV từ một tổng đã gồm thuế.
// Bất biến: SubtotalCents + TaxCents == TotalCents, không sai lệch céntimo.
type TaxSplit struct {
	SubtotalCents int64 // Giá trị chưa IGV
	TaxCents      int64 // IGV
	TotalCents    int64 // Tổng đã gồm IGV
}

// TaxService tách một tổng ĐÃ GỒM IGV thành (subtotal, IGV).
// Đây là phép tính ngược: giá hiển thị cho shopper đã gồm thuế,
// không phải cộng thuế lên giá gốc. Hàm thuần, không ném lỗi.
type TaxService struct{}

// NewTaxService tạo mới TaxService
func NewTaxService() *TaxService {
	return &TaxService{}
}

// Split tách tổng đã gồm IGV theo thuế suất (%, ví dụ 18).
// Exempt (Exonerado/Inafecto): subtotal = total, IGV = 0.
// Ngược lại: subtotal = total / (1 + rate/100), làm tròn half-up về
// céntimo; IGV = total − subtotal để tổng khớp tuyệt đối.
func (s *TaxService) Split(totalCents int64, ratePercent float64, exempt bool) TaxSplit {
	if exempt || ratePercent <= 0 {
		return TaxSplit{SubtotalCents: totalCents, TaxCents: 0, TotalCents: totalCents}
	}

	subtotal := common.RoundHalfUp(float64(totalCents) / (1 + ratePercent/100))
	return TaxSplit{
		SubtotalCents: subtotal,
		TaxCents:      totalCents - subtotal,
		TotalCents:    totalCents,
	}
}

// SplitMixed tách riêng phần chịu IGV và phần miễn rồi cộng lại,
// dùng cho giỏ trộn dòng Gravado với dòng Exonerado/Inafecto
func (s *TaxService) SplitMixed(affectedCents int64, exemptCents int64, ratePercent float64) TaxSplit {
	affected := s.Split(affectedCents, ratePercent, false)
	return TaxSplit{
		SubtotalCents: affected.SubtotalCents + exemptCents,
		TaxCents:      affected.TaxCents,
		TotalCents:    affectedCents + exemptCents,
	}
}
