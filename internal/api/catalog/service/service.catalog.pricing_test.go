// Package catalogsvc - Test thứ tự ưu tiên phân giải giá đơn vị.
package catalogsvc

import (
	"testing"

	catalogmodels "catalogo_commerce/internal/api/catalog/models"
)

func twoTierProduct() *catalogmodels.Product {
	return &catalogmodels.Product{
		Price:  10.00,
		Price2: 8.50,
	}
}

func TestResolveBase_TierGate(t *testing.T) {
	svc := NewPricingService()
	p := twoTierProduct()

	// Negocio chưa bật multiplePrices: mức 2 bị bỏ qua
	if got := svc.ResolveBase(p, 2, false); got != 1000 {
		t.Errorf("multiplePrices tắt: ResolveBase = %d, muốn 1000", got)
	}
	// Bật multiplePrices: mức 2 có hiệu lực
	if got := svc.ResolveBase(p, 2, true); got != 850 {
		t.Errorf("multiplePrices bật: ResolveBase = %d, muốn 850", got)
	}
	// Mức chưa cấu hình (giá 0): rơi về mức 1
	if got := svc.ResolveBase(p, 3, true); got != 1000 {
		t.Errorf("mức 3 chưa cấu hình: ResolveBase = %d, muốn 1000", got)
	}
	// Sản phẩm chỉ có một mức giá dương: mức 2 không có hiệu lực dù bật cờ
	single := &catalogmodels.Product{Price: 10.00}
	if got := svc.ResolveBase(single, 2, true); got != 1000 {
		t.Errorf("một mức giá: ResolveBase = %d, muốn 1000", got)
	}
}

func TestDisplayPrice_StartingFrom(t *testing.T) {
	svc := NewPricingService()

	p := &catalogmodels.Product{
		Price:       30.00,
		HasVariants: true,
		Variants: []catalogmodels.Variant{
			{SKU: "G", Price: 35.00},
			{SKU: "P", Price: 25.00},
		},
	}
	cents, startingFrom := svc.DisplayPrice(p, 1, false)
	if cents != 2500 || !startingFrom {
		t.Errorf("DisplayPrice = (%d, %v), muốn (2500, true) — giá thấp nhất trong biến thể", cents, startingFrom)
	}

	p = &catalogmodels.Product{Price: 30.00}
	cents, startingFrom = svc.DisplayPrice(p, 1, false)
	if cents != 3000 || startingFrom {
		t.Errorf("DisplayPrice = (%d, %v), muốn (3000, false)", cents, startingFrom)
	}
}

func TestUnitPrice_VariantOverridesTier(t *testing.T) {
	svc := NewPricingService()

	p := &catalogmodels.Product{
		Price:       30.00,
		Price2:      27.00,
		HasVariants: true,
		Variants: []catalogmodels.Variant{
			{SKU: "G", Price: 25.00},
		},
		Modifiers: []catalogmodels.ModifierGroup{
			{
				ID:           "extras",
				MaxSelection: 3,
				Options: []catalogmodels.ModifierOption{
					{ID: "queso", PriceDelta: 3.00},
				},
			},
		},
	}

	// Biến thể thay thế hẳn giá gốc: mức giá không còn tác dụng
	got, err := svc.UnitPrice(p, "G", map[string][]string{"extras": {"queso"}}, 2, true)
	if err != nil {
		t.Fatalf("UnitPrice lỗi: %v", err)
	}
	if got != 2800 {
		t.Errorf("UnitPrice = %d, muốn 2800 (25.00 biến thể + 3.00 phụ thu, bỏ qua mức 2)", got)
	}
}

func TestUnitPrice_TierPlusModifiers(t *testing.T) {
	svc := NewPricingService()

	p := twoTierProduct()
	p.Modifiers = []catalogmodels.ModifierGroup{
		{
			ID:           "salsas",
			MaxSelection: 2,
			Options: []catalogmodels.ModifierOption{
				{ID: "aji", PriceDelta: 0},
				{ID: "tartara", PriceDelta: 1.50},
			},
		},
	}

	got, err := svc.UnitPrice(p, "", map[string][]string{"salsas": {"aji", "tartara"}}, 2, true)
	if err != nil {
		t.Fatalf("UnitPrice lỗi: %v", err)
	}
	if got != 1000 {
		t.Errorf("UnitPrice = %d, muốn 1000 (8.50 mức 2 + 1.50 phụ thu)", got)
	}
}

func TestUnitPrice_UnknownInputs(t *testing.T) {
	svc := NewPricingService()
	p := twoTierProduct()

	if _, err := svc.UnitPrice(p, "NO-SKU", nil, 1, false); err == nil {
		t.Error("SKU không tồn tại phải trả lỗi")
	}
	if _, err := svc.UnitPrice(p, "", map[string][]string{"ghost": {"x"}}, 1, false); err == nil {
		t.Error("nhóm modificador không tồn tại phải trả lỗi")
	}
}
