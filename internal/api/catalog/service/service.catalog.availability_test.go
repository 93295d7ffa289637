// Package catalogsvc - Test quy tắc đánh giá tồn kho cho catálogo công khai.
package catalogsvc

import (
	"testing"

	catalogmodels "catalogo_commerce/internal/api/catalog/models"
)

func intPtr(v int) *int { return &v }

func TestIsOutOfStock_NoTracking(t *testing.T) {
	svc := NewAvailabilityService()

	// Cờ theo dõi tắt: luôn còn hàng, kể cả khi stock <= 0
	p := &catalogmodels.Product{TrackStock: false, Stock: intPtr(0)}
	if svc.IsOutOfStock(p) {
		t.Error("trackStock=false phải luôn còn hàng")
	}

	// Cờ bật nhưng stock nil: coi như không theo dõi
	p = &catalogmodels.Product{TrackStock: true, Stock: nil}
	if svc.IsOutOfStock(p) {
		t.Error("stock nil phải luôn còn hàng")
	}
}

func TestIsOutOfStock_Tracked(t *testing.T) {
	svc := NewAvailabilityService()

	cases := []struct {
		stock int
		want  bool
	}{
		{5, false},
		{1, false},
		{0, true},
		{-3, true},
	}
	for _, c := range cases {
		p := &catalogmodels.Product{TrackStock: true, Stock: intPtr(c.stock)}
		if got := svc.IsOutOfStock(p); got != c.want {
			t.Errorf("stock=%d: IsOutOfStock = %v, muốn %v", c.stock, got, c.want)
		}
	}
}

func TestIsOutOfStock_Variants(t *testing.T) {
	svc := NewAvailabilityService()

	// Một biến thể cạn + một biến thể không theo dõi: vẫn còn bán được
	p := &catalogmodels.Product{
		TrackStock:  true,
		Stock:       intPtr(0), // tồn kho gốc bị bỏ qua khi có biến thể
		HasVariants: true,
		Variants: []catalogmodels.Variant{
			{SKU: "S", Stock: intPtr(0)},
			{SKU: "M", Stock: nil},
		},
	}
	if svc.IsOutOfStock(p) {
		t.Error("biến thể stock nil phải giữ sản phẩm còn bán được")
	}

	// Mọi biến thể đều cạn: hết hàng
	p.Variants = []catalogmodels.Variant{
		{SKU: "S", Stock: intPtr(0)},
		{SKU: "M", Stock: intPtr(-1)},
	}
	if !svc.IsOutOfStock(p) {
		t.Error("mọi biến thể cạn phải là hết hàng")
	}

	// Cờ hasVariants bật nhưng danh sách rỗng: rơi về quy tắc sản phẩm gốc
	p = &catalogmodels.Product{TrackStock: true, Stock: intPtr(3), HasVariants: true}
	if svc.IsOutOfStock(p) {
		t.Error("hasVariants không có biến thể phải dùng tồn kho gốc")
	}
}

func TestEvaluateProduct_Orderable(t *testing.T) {
	svc := NewAvailabilityService()

	p := &catalogmodels.Product{CatalogVisible: true, TrackStock: true, Stock: intPtr(0)}
	a := svc.EvaluateProduct(p)
	if !a.Visible || !a.OutOfStock || a.Orderable {
		t.Errorf("sản phẩm hết hàng: %+v, muốn Visible=true OutOfStock=true Orderable=false", a)
	}

	p = &catalogmodels.Product{CatalogVisible: false, Stock: nil}
	a = svc.EvaluateProduct(p)
	if a.Visible || a.Orderable {
		t.Errorf("sản phẩm ẩn khỏi catálogo không được đặt hàng: %+v", a)
	}
}

func TestFilterCatalog_KeepsOutOfStock(t *testing.T) {
	svc := NewAvailabilityService()

	products := []catalogmodels.Product{
		{Name: "Visible", CatalogVisible: true},
		{Name: "Oculto", CatalogVisible: false},
		{Name: "Agotado", CatalogVisible: true, TrackStock: true, Stock: intPtr(0)},
	}
	got := svc.FilterCatalog(products)
	if len(got) != 2 {
		t.Fatalf("FilterCatalog trả về %d sản phẩm, muốn 2", len(got))
	}
	// Hết hàng vẫn hiển thị, thứ tự đầu vào được giữ nguyên
	if got[0].Name != "Visible" || got[1].Name != "Agotado" {
		t.Errorf("thứ tự sai: %s, %s", got[0].Name, got[1].Name)
	}
}
