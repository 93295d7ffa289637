// Package cataloghdl chứa HTTP handler cho domain catálogo
package cataloghdl

import (
	"fmt"

	basehdl "catalogo_commerce/internal/api/base/handler"
	catalogdto "catalogo_commerce/internal/api/catalog/dto"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	catalogsvc "catalogo_commerce/internal/api/catalog/service"
)

// BusinessProfileHandler xử lý các request quản trị hồ sơ negocio
type BusinessProfileHandler struct {
	basehdl.BaseHandler[catalogmodels.BusinessProfile, catalogdto.BusinessProfileCreateInput, catalogdto.BusinessProfileUpdateInput]
}

// NewBusinessProfileHandler tạo mới BusinessProfileHandler
func NewBusinessProfileHandler() (*BusinessProfileHandler, error) {
	service, err := catalogsvc.NewBusinessProfileService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business profile service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.BusinessProfile, catalogdto.BusinessProfileCreateInput, catalogdto.BusinessProfileUpdateInput](service)
	return &BusinessProfileHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// ProductHandler xử lý các request quản trị sản phẩm
type ProductHandler struct {
	basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	service, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](service)
	return &ProductHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// CategoryHandler xử lý các request quản trị danh mục catálogo
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.CatalogCategory, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.CatalogCategory, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](service)
	return &CategoryHandler{
		BaseHandler: *baseHandler,
	}, nil
}
