// Package dto định nghĩa input/output của domain giỏ hàng
package dto

import (
	cartmodels "catalogo_commerce/internal/api/cart/models"
)

// CartCreateInput là input để mở một phiên giỏ hàng mới.
// TableLabel thường do catálogo tự điền từ query (?mesa= / ?table=).
type CartCreateInput struct {
	Slug       string `json:"slug" validate:"required"` // Slug catálogo mà giỏ thuộc về
	TableLabel string `json:"tableLabel,omitempty"`     // Số bàn (tùy chọn)
	PriceLevel int    `json:"priceLevel,omitempty"`     // Mức giá của phiên (1..4, mặc định 1)
}

// CartAddItemInput là input để thêm một lựa chọn vào giỏ
type CartAddItemInput struct {
	ProductID  string              `json:"productId" validate:"required"` // Hex ObjectID của sản phẩm
	Quantity   int                 `json:"quantity" validate:"gte=1"`     // Số lượng thêm vào
	VariantSKU string              `json:"variantSku,omitempty"`          // SKU biến thể (bắt buộc nếu sản phẩm có biến thể)
	Selections map[string][]string `json:"selections,omitempty"`          // Tùy chọn modificador theo nhóm
	PriceLevel int                 `json:"priceLevel,omitempty"`          // Mức giá (1..4, mặc định 1)
}

// CartUpdateItemInput là input để đổi số lượng một dòng.
// Quantity <= 0 nghĩa là xóa dòng.
type CartUpdateItemInput struct {
	LineID   string `json:"lineId" validate:"required"` // Danh tính dòng (trả về khi thêm)
	Quantity int    `json:"quantity"`                   // Số lượng mới
}

// CartRemoveItemInput là input để xóa một dòng khỏi giỏ
type CartRemoveItemInput struct {
	LineID string `json:"lineId" validate:"required"` // Danh tính dòng cần xóa
}

// CartView là giỏ hàng trả về cho client, kèm các tổng đã tính
type CartView struct {
	ID            string                `json:"id"`            // UUID phiên giỏ
	Slug          string                `json:"slug"`          // Slug catálogo
	TableLabel    string                `json:"tableLabel"`    // Số bàn nếu có
	Items         []cartmodels.CartItem `json:"items"`         // Các dòng theo thứ tự thêm vào
	TotalQuantity int                   `json:"totalQuantity"` // Tổng số đơn vị
	Total         float64               `json:"total"`         // Tổng tiền (đã gồm IGV)
}
