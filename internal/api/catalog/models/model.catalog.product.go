package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu một sản phẩm trong catálogo của negocio.
// Stock là con trỏ: nil nghĩa là không theo dõi tồn kho (luôn bán được).
// Khi HasVariants=true và Variants không rỗng, giá và tồn kho gốc bị bỏ qua:
// tính bán được và tính giá đều đi theo biến thể.
type Product struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`             // ID của sản phẩm trong MongoDB
	BusinessID     primitive.ObjectID `json:"businessId" bson:"businessId" index:"single:1"` // Negocio sở hữu sản phẩm
	Name           string             `json:"name" bson:"name" index:"text"`                 // Tên sản phẩm
	Description    string             `json:"description" bson:"description"`                // Mô tả hiển thị trên catálogo
	Category       string             `json:"category" bson:"category"`                      // Danh mục (tên, khớp CatalogCategory.Name)
	Unit           string             `json:"unit" bson:"unit"`                              // Đơn vị bán (NIU, ZZ, ...)
	Price          float64            `json:"price" bson:"price"`                            // Giá mức 1 (mặc định), đã gồm IGV
	Price2         float64            `json:"price2" bson:"price2"`                          // Giá mức 2 (0 = chưa cấu hình)
	Price3         float64            `json:"price3" bson:"price3"`                          // Giá mức 3 (0 = chưa cấu hình)
	Price4         float64            `json:"price4" bson:"price4"`                          // Giá mức 4 (0 = chưa cấu hình)
	TrackStock     bool               `json:"trackStock" bson:"trackStock"`                  // Có theo dõi tồn kho không
	Stock          *int               `json:"stock" bson:"stock"`                            // Tồn kho; nil = không theo dõi
	CatalogVisible bool               `json:"catalogVisible" bson:"catalogVisible"`          // Hiển thị trên catálogo công khai
	IGVAffected    bool               `json:"igvAffected" bson:"igvAffected"`                // Chịu IGV (false = Exonerado/Inafecto)
	ImageURL       string             `json:"imageUrl" bson:"imageUrl"`                      // Ảnh sản phẩm
	HasVariants    bool               `json:"hasVariants" bson:"hasVariants"`                // Sản phẩm bán theo biến thể
	Variants       []Variant          `json:"variants" bson:"variants"`                      // Biến thể (presentaciones)
	Modifiers      []ModifierGroup    `json:"modifiers" bson:"modifiers"`                    // Nhóm modificadores
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`                    // Thời gian tạo
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`                    // Thời gian cập nhật
}

// Variant là một biến thể của sản phẩm (tamaño, presentación).
// Giá của variant thay thế hẳn giá gốc của sản phẩm.
type Variant struct {
	SKU        string            `json:"sku" bson:"sku"`               // Mã biến thể, duy nhất trong sản phẩm
	Name       string            `json:"name" bson:"name"`             // Tên hiển thị
	Attributes map[string]string `json:"attributes" bson:"attributes"` // Thuộc tính (size, color, ...)
	Price      float64           `json:"price" bson:"price"`           // Giá của biến thể, đã gồm IGV
	Stock      *int              `json:"stock" bson:"stock"`           // Tồn kho riêng; nil = không theo dõi
}

// ModifierGroup là một nhóm tùy chọn của sản phẩm (salsas, toppings).
// MaxSelection >= 1: 1 nghĩa là chọn-một (radio, chọn mới thay chọn cũ),
// lớn hơn 1 nghĩa là chọn-nhiều đến giới hạn đó.
type ModifierGroup struct {
	ID           string           `json:"id" bson:"id"`                     // ID nhóm, duy nhất trong sản phẩm
	Name         string           `json:"name" bson:"name"`                 // Tên nhóm
	Required     bool             `json:"required" bson:"required"`         // Bắt buộc chọn ít nhất một tùy chọn
	MaxSelection int              `json:"maxSelection" bson:"maxSelection"` // Số lựa chọn tối đa (>=1)
	Options      []ModifierOption `json:"options" bson:"options"`           // Các tùy chọn trong nhóm
}

// ModifierOption là một tùy chọn trong nhóm modificador.
type ModifierOption struct {
	ID         string  `json:"id" bson:"id"`                 // ID tùy chọn, duy nhất trong nhóm
	Name       string  `json:"name" bson:"name"`             // Tên hiển thị
	PriceDelta float64 `json:"priceDelta" bson:"priceDelta"` // Phụ thu, không âm
}

// HasVariantList cho biết sản phẩm có bán theo biến thể thực sự không
// (cờ bật VÀ có ít nhất một biến thể cấu hình)
func (p *Product) HasVariantList() bool {
	return p.HasVariants && len(p.Variants) > 0
}

// FindVariant tìm biến thể theo SKU, trả về nil nếu không có
func (p *Product) FindVariant(sku string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].SKU == sku {
			return &p.Variants[i]
		}
	}
	return nil
}

// FindModifierGroup tìm nhóm modificador theo ID, trả về nil nếu không có
func (p *Product) FindModifierGroup(groupID string) *ModifierGroup {
	for i := range p.Modifiers {
		if p.Modifiers[i].ID == groupID {
			return &p.Modifiers[i]
		}
	}
	return nil
}

// FindOption tìm tùy chọn theo ID trong nhóm, trả về nil nếu không có
func (g *ModifierGroup) FindOption(optionID string) *ModifierOption {
	for i := range g.Options {
		if g.Options[i].ID == optionID {
			return &g.Options[i]
		}
	}
	return nil
}

// PositiveTierCount đếm số mức giá dương đã cấu hình (mức 1..4)
func (p *Product) PositiveTierCount() int {
	count := 0
	for _, price := range []float64{p.Price, p.Price2, p.Price3, p.Price4} {
		if price > 0 {
			count++
		}
	}
	return count
}
