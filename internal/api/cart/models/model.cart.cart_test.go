// Package models - Test danh tính dòng giỏ hàng và các thao tác gộp/xóa.
package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildModifierSignature_OrderIndependent(t *testing.T) {
	a := BuildModifierSignature(map[string][]string{
		"salsas": {"tartara", "aji"},
		"extras": {"queso"},
	})
	b := BuildModifierSignature(map[string][]string{
		"extras": {"queso"},
		"salsas": {"aji", "tartara"},
	})
	if a != b {
		t.Errorf("chữ ký phụ thuộc thứ tự: %q != %q", a, b)
	}
	if a != "extras:queso;salsas:aji,tartara" {
		t.Errorf("chữ ký = %q, muốn %q", a, "extras:queso;salsas:aji,tartara")
	}
}

func TestBuildModifierSignature_Empty(t *testing.T) {
	if got := BuildModifierSignature(nil); got != "" {
		t.Errorf("selections nil phải cho chữ ký rỗng, được %q", got)
	}
	// Nhóm không có lựa chọn nào bị bỏ qua
	if got := BuildModifierSignature(map[string][]string{"salsas": {}}); got != "" {
		t.Errorf("nhóm rỗng phải bị bỏ qua, được %q", got)
	}
}

func TestLineIdentity_Distinct(t *testing.T) {
	base := LineIdentity{ProductID: "p1", VariantSKU: "G", ModifierSignature: "s:a", PriceLevel: 1}

	same := base
	if base != same {
		t.Error("danh tính giống nhau phải bằng nhau")
	}

	for _, other := range []LineIdentity{
		{ProductID: "p2", VariantSKU: "G", ModifierSignature: "s:a", PriceLevel: 1},
		{ProductID: "p1", VariantSKU: "P", ModifierSignature: "s:a", PriceLevel: 1},
		{ProductID: "p1", VariantSKU: "G", ModifierSignature: "s:b", PriceLevel: 1},
		{ProductID: "p1", VariantSKU: "G", ModifierSignature: "s:a", PriceLevel: 2},
	} {
		if base == other {
			t.Errorf("danh tính khác một thành phần vẫn bằng nhau: %+v", other)
		}
	}
}

func testItem(identity LineIdentity, unitCents int64, qty int) CartItem {
	return CartItem{
		Identity:       identity,
		LineID:         identity.String(),
		UnitPriceCents: unitCents,
		Quantity:       qty,
	}
}

func TestCart_MergeSameIdentity(t *testing.T) {
	c := &Cart{}
	id := LineIdentity{ProductID: "p1", PriceLevel: 1}

	c.Merge(testItem(id, 2500, 1))
	c.Merge(testItem(id, 9999, 2)) // giá lần hai phải bị bỏ qua

	if len(c.Items) != 1 {
		t.Fatalf("cùng danh tính phải gộp thành một dòng, được %d", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Errorf("số lượng = %d, muốn 3", c.Items[0].Quantity)
	}
	// First-write-wins: giá đóng băng theo lần ghi đầu tiên
	if c.Items[0].UnitPriceCents != 2500 {
		t.Errorf("giá đơn vị = %d, muốn giữ 2500 của lần ghi đầu", c.Items[0].UnitPriceCents)
	}
}

func TestCart_MergeDifferentIdentity(t *testing.T) {
	c := &Cart{}
	c.Merge(testItem(LineIdentity{ProductID: "p1", VariantSKU: "G", PriceLevel: 1}, 2500, 1))
	c.Merge(testItem(LineIdentity{ProductID: "p1", VariantSKU: "P", PriceLevel: 1}, 2000, 1))

	if len(c.Items) != 2 {
		t.Errorf("biến thể khác nhau phải là hai dòng, được %d", len(c.Items))
	}
}

func TestCart_SetQuantity(t *testing.T) {
	c := &Cart{}
	id := LineIdentity{ProductID: "p1", PriceLevel: 1}
	c.Merge(testItem(id, 1000, 2))

	if !c.SetQuantity(id, 5) {
		t.Fatal("SetQuantity trên dòng tồn tại phải trả true")
	}
	if c.Items[0].Quantity != 5 {
		t.Errorf("số lượng = %d, muốn 5", c.Items[0].Quantity)
	}

	// <= 0 nghĩa là xóa dòng
	if !c.SetQuantity(id, 0) {
		t.Fatal("SetQuantity(0) trên dòng tồn tại phải trả true")
	}
	if len(c.Items) != 0 {
		t.Errorf("SetQuantity(0) phải xóa dòng, còn %d dòng", len(c.Items))
	}

	if c.SetQuantity(id, 1) {
		t.Error("SetQuantity trên dòng không tồn tại phải trả false")
	}
}

func TestCart_RemoveMissingIsNoop(t *testing.T) {
	c := &Cart{}
	c.Merge(testItem(LineIdentity{ProductID: "p1", PriceLevel: 1}, 1000, 1))

	c.Remove(LineIdentity{ProductID: "ghost", PriceLevel: 1})
	if len(c.Items) != 1 {
		t.Errorf("Remove danh tính lạ phải là no-op, còn %d dòng", len(c.Items))
	}
}

func TestCart_QuantityForProduct(t *testing.T) {
	pid := primitive.NewObjectID()
	c := &Cart{}

	itemA := testItem(LineIdentity{ProductID: pid.Hex(), VariantSKU: "G", PriceLevel: 1}, 2500, 2)
	itemA.ProductID = pid
	itemB := testItem(LineIdentity{ProductID: pid.Hex(), VariantSKU: "P", PriceLevel: 1}, 2000, 3)
	itemB.ProductID = pid
	c.Merge(itemA)
	c.Merge(itemB)

	if got := c.QuantityForProduct(pid); got != 5 {
		t.Errorf("QuantityForProduct = %d, muốn 5 (cộng qua mọi dòng)", got)
	}
	if got := c.QuantityForProduct(primitive.NewObjectID()); got != 0 {
		t.Errorf("sản phẩm không trong giỏ phải ra 0, được %d", got)
	}
}

func TestCart_Totals(t *testing.T) {
	c := &Cart{}
	c.Merge(testItem(LineIdentity{ProductID: "p1", PriceLevel: 1}, 2500, 2)) // 50.00
	c.Merge(testItem(LineIdentity{ProductID: "p2", PriceLevel: 1}, 1050, 3)) // 31.50

	if got := c.TotalCents(); got != 8150 {
		t.Errorf("TotalCents = %d, muốn 8150", got)
	}
	if got := c.TotalQuantity(); got != 5 {
		t.Errorf("TotalQuantity = %d, muốn 5", got)
	}
	if c.IsEmpty() {
		t.Error("giỏ có dòng không được là rỗng")
	}

	c.Clear()
	if !c.IsEmpty() || c.TotalCents() != 0 {
		t.Error("Clear phải làm giỏ rỗng")
	}
}
