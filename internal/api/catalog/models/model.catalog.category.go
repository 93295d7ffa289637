package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogCategory lưu một danh mục sản phẩm của negocio
type CatalogCategory struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`             // ID của danh mục trong MongoDB
	BusinessID    primitive.ObjectID `json:"businessId" bson:"businessId" index:"single:1"` // Negocio sở hữu danh mục
	Name          string             `json:"name" bson:"name"`                              // Tên danh mục
	ParentID      primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty"`  // Danh mục cha (rỗng = gốc)
	ShowInCatalog bool               `json:"showInCatalog" bson:"showInCatalog"`            // Hiển thị trên catálogo công khai
	SortOrder     int                `json:"sortOrder" bson:"sortOrder"`                    // Thứ tự hiển thị trên catálogo
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`                    // Thời gian tạo
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`                    // Thời gian cập nhật
}
