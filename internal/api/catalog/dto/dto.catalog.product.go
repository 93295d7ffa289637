// Package dto định nghĩa các cấu trúc input/output của domain catálogo
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "catalogo_commerce/internal/api/catalog/models"
)

// ProductCreateInput là input để tạo sản phẩm
type ProductCreateInput struct {
	BusinessID     primitive.ObjectID           `json:"businessId" validate:"required"` // Negocio sở hữu
	Name           string                       `json:"name" validate:"required"`       // Tên sản phẩm
	Description    string                       `json:"description,omitempty"`          // Mô tả
	Category       string                       `json:"category,omitempty"`             // Danh mục
	Unit           string                       `json:"unit,omitempty"`                 // Đơn vị bán
	Price          float64                      `json:"price" validate:"gte=0"`         // Giá mức 1
	Price2         float64                      `json:"price2,omitempty"`               // Giá mức 2
	Price3         float64                      `json:"price3,omitempty"`               // Giá mức 3
	Price4         float64                      `json:"price4,omitempty"`               // Giá mức 4
	Stock          *int                         `json:"stock,omitempty"`                // Tồn kho; nil = không theo dõi
	CatalogVisible bool                         `json:"catalogVisible"`                 // Hiển thị trên catálogo
	IGVAffected    bool                         `json:"igvAffected"`                    // Chịu IGV
	ImageURL       string                       `json:"imageUrl,omitempty"`             // Ảnh
	Variants       []catalogmodels.Variant      `json:"variants,omitempty"`             // Biến thể
	Modifiers      []catalogmodels.ModifierGroup `json:"modifiers,omitempty"`           // Nhóm modificadores
}

// ProductUpdateInput là input để cập nhật sản phẩm
type ProductUpdateInput struct {
	Name           *string                        `json:"name,omitempty"`           // Tên sản phẩm
	Description    *string                        `json:"description,omitempty"`    // Mô tả
	Category       *string                        `json:"category,omitempty"`       // Danh mục
	Unit           *string                        `json:"unit,omitempty"`           // Đơn vị bán
	Price          *float64                       `json:"price,omitempty"`          // Giá mức 1
	Price2         *float64                       `json:"price2,omitempty"`         // Giá mức 2
	Price3         *float64                       `json:"price3,omitempty"`         // Giá mức 3
	Price4         *float64                       `json:"price4,omitempty"`         // Giá mức 4
	Stock          *int                           `json:"stock,omitempty"`          // Tồn kho
	CatalogVisible *bool                          `json:"catalogVisible,omitempty"` // Hiển thị trên catálogo
	IGVAffected    *bool                          `json:"igvAffected,omitempty"`    // Chịu IGV
	ImageURL       *string                        `json:"imageUrl,omitempty"`       // Ảnh
	Variants       *[]catalogmodels.Variant       `json:"variants,omitempty"`       // Biến thể
	Modifiers      *[]catalogmodels.ModifierGroup `json:"modifiers,omitempty"`      // Nhóm modificadores
}

// CategoryCreateInput là input để tạo danh mục catálogo
type CategoryCreateInput struct {
	BusinessID primitive.ObjectID `json:"businessId" validate:"required"` // Negocio sở hữu
	Name       string             `json:"name" validate:"required"`       // Tên danh mục
	SortOrder  int                `json:"sortOrder"`                      // Thứ tự hiển thị
}

// CategoryUpdateInput là input để cập nhật danh mục catálogo
type CategoryUpdateInput struct {
	Name      *string `json:"name,omitempty"`      // Tên danh mục
	SortOrder *int    `json:"sortOrder,omitempty"` // Thứ tự hiển thị
}

// CatalogProductView là một sản phẩm trên catálogo công khai,
// kèm trạng thái tồn kho đã đánh giá
type CatalogProductView struct {
	Product      catalogmodels.Product `json:"product"`      // Sản phẩm
	OutOfStock   bool                  `json:"outOfStock"`   // Hết hàng (hiển thị "Agotado")
	Orderable    bool                  `json:"orderable"`    // Có thể thêm vào giỏ
	DisplayPrice float64               `json:"displayPrice"` // Giá hiển thị theo mức giá đang áp dụng
	StartingFrom bool                  `json:"startingFrom"` // Giá "desde" (thấp nhất trong các biến thể)
}

// CatalogView là toàn bộ dữ liệu catálogo công khai của một negocio
type CatalogView struct {
	Business   catalogmodels.BusinessProfile   `json:"business"`   // Hồ sơ negocio (trường công khai)
	Categories []catalogmodels.CatalogCategory `json:"categories"` // Danh mục, theo sortOrder
	Products   []CatalogProductView            `json:"products"`   // Sản phẩm hiển thị, giữ nguyên thứ tự
}
