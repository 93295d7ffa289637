// Package ordersvc - Test tách thuế trên giỏ trộn và snapshot dòng đơn.
package ordersvc

import (
	"testing"

	cartmodels "catalogo_commerce/internal/api/cart/models"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func splitTestService() *CheckoutService {
	return &CheckoutService{taxService: NewTaxService()}
}

func TestSplitCart_MixedLines(t *testing.T) {
	svc := splitTestService()
	cart := &cartmodels.Cart{
		Items: []cartmodels.CartItem{
			{UnitPriceCents: 5900, Quantity: 2, IGVAffected: true},  // 118.00 Gravado
			{UnitPriceCents: 5000, Quantity: 1, IGVAffected: false}, // 50.00 Exonerado
		},
	}
	business := &catalogmodels.BusinessProfile{TaxRate: 18}

	split := svc.splitCart(cart, business)
	if split.TotalCents != 16800 {
		t.Errorf("total = %d, muốn 16800", split.TotalCents)
	}
	if split.TaxCents != 1800 {
		t.Errorf("tax = %d, muốn 1800 — chỉ phần Gravado chịu IGV", split.TaxCents)
	}
	if split.SubtotalCents+split.TaxCents != split.TotalCents {
		t.Error("bất biến subtotal + tax == total bị vi phạm")
	}
}

func TestSplitCart_ExemptBusiness(t *testing.T) {
	svc := splitTestService()
	cart := &cartmodels.Cart{
		Items: []cartmodels.CartItem{
			{UnitPriceCents: 5900, Quantity: 2, IGVAffected: true},
		},
	}
	business := &catalogmodels.BusinessProfile{TaxRate: 18, TaxExempt: true}

	split := svc.splitCart(cart, business)
	if split.TaxCents != 0 || split.SubtotalCents != 11800 {
		t.Errorf("negocio miễn thuế: %+v, muốn tax 0, subtotal = total", split)
	}
}

func TestSplitCart_DefaultRate(t *testing.T) {
	svc := splitTestService()
	cart := &cartmodels.Cart{
		Items: []cartmodels.CartItem{
			{UnitPriceCents: 11800, Quantity: 1, IGVAffected: true},
		},
	}
	// TaxRate = 0: rơi về thuế suất mặc định 18%
	business := &catalogmodels.BusinessProfile{}

	split := svc.splitCart(cart, business)
	if split.TaxCents != 1800 {
		t.Errorf("thuế suất mặc định: tax = %d, muốn 1800", split.TaxCents)
	}
}

func TestBuildOrderItems_Snapshot(t *testing.T) {
	pid := primitive.NewObjectID()
	cart := &cartmodels.Cart{
		Items: []cartmodels.CartItem{
			{
				ProductID:      pid,
				ProductName:    "Lomo Saltado",
				VariantName:    "Grande",
				VariantSKU:     "G",
				UnitPriceCents: 2800,
				Quantity:       2,
				IGVAffected:    true,
				Modifiers: []cartmodels.ModifierLine{
					{GroupName: "Extras", OptionName: "Queso", PriceDelta: 3.00},
				},
			},
		},
	}

	items := buildOrderItems(cart)
	if len(items) != 1 {
		t.Fatalf("số dòng đơn = %d, muốn 1", len(items))
	}
	it := items[0]
	if it.ProductID != pid || it.ProductName != "Lomo Saltado" || it.VariantSKU != "G" {
		t.Errorf("snapshot sản phẩm sai: %+v", it)
	}
	if it.UnitPrice != 28.00 || it.Total != 56.00 {
		t.Errorf("giá dòng = (%v, %v), muốn (28.00, 56.00)", it.UnitPrice, it.Total)
	}
	if len(it.Modifiers) != 1 || it.Modifiers[0].OptionName != "Queso" {
		t.Errorf("snapshot modificador sai: %+v", it.Modifiers)
	}
	if !it.IGVAffected {
		t.Error("cờ IGVAffected phải theo dòng giỏ")
	}
}
