// Package ordersvc - Test tách IGV ngược từ tổng đã gồm thuế.
package ordersvc

import "testing"

func TestSplit_BackCalculation(t *testing.T) {
	svc := NewTaxService()

	// 118.00 với IGV 18%: subtotal 100.00, IGV 18.00
	got := svc.Split(11800, 18, false)
	if got.SubtotalCents != 10000 || got.TaxCents != 1800 {
		t.Errorf("Split(11800, 18%%) = %+v, muốn subtotal 10000, tax 1800", got)
	}
}

func TestSplit_SumInvariant(t *testing.T) {
	svc := NewTaxService()

	// Bất biến: subtotal + tax == total với mọi tổng, kể cả số lẻ céntimo
	for _, total := range []int64{1, 99, 100, 8400, 11800, 99999, 123457} {
		got := svc.Split(total, 18, false)
		if got.SubtotalCents+got.TaxCents != got.TotalCents {
			t.Errorf("total=%d: %d + %d != %d", total, got.SubtotalCents, got.TaxCents, got.TotalCents)
		}
		if got.TotalCents != total {
			t.Errorf("total=%d: TotalCents bị đổi thành %d", total, got.TotalCents)
		}
	}
}

func TestSplit_Exempt(t *testing.T) {
	svc := NewTaxService()

	got := svc.Split(11800, 18, true)
	if got.SubtotalCents != 11800 || got.TaxCents != 0 {
		t.Errorf("exempt: %+v, muốn subtotal = total, tax = 0", got)
	}

	// Thuế suất 0 cũng không tách
	got = svc.Split(11800, 0, false)
	if got.TaxCents != 0 {
		t.Errorf("rate=0: tax = %d, muốn 0", got.TaxCents)
	}
}

func TestSplitMixed(t *testing.T) {
	svc := NewTaxService()

	// 118.00 Gravado + 50.00 Exonerado
	got := svc.SplitMixed(11800, 5000, 18)
	if got.SubtotalCents != 15000 {
		t.Errorf("subtotal = %d, muốn 15000 (100.00 + 50.00)", got.SubtotalCents)
	}
	if got.TaxCents != 1800 {
		t.Errorf("tax = %d, muốn 1800 (chỉ từ phần Gravado)", got.TaxCents)
	}
	if got.TotalCents != 16800 {
		t.Errorf("total = %d, muốn 16800", got.TotalCents)
	}
	if got.SubtotalCents+got.TaxCents != got.TotalCents {
		t.Error("bất biến subtotal + tax == total bị vi phạm")
	}
}
