package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "catalogo_commerce/internal/api/base/service"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm catálogo
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CatalogProducts)
	if !exist {
		return nil, fmt.Errorf("failed to get catalog_products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// FindByBusiness trả về toàn bộ sản phẩm của negocio theo thứ tự tạo,
// giữ ổn định để catálogo hiển thị nhất quán giữa các lần tải.
func (s *ProductService) FindByBusiness(ctx context.Context, businessID primitive.ObjectID) ([]catalogmodels.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, bson.M{"businessId": businessID}, opts)
}

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục catálogo
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.CatalogCategory]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CatalogCategories)
	if !exist {
		return nil, fmt.Errorf("failed to get catalog_categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.CatalogCategory](collection),
	}, nil
}

// FindByBusiness trả về danh mục hiển thị của negocio theo thứ tự sortOrder
func (s *CategoryService) FindByBusiness(ctx context.Context, businessID primitive.ObjectID) ([]catalogmodels.CatalogCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	return s.Find(ctx, bson.M{"businessId": businessID, "showInCatalog": true}, opts)
}
