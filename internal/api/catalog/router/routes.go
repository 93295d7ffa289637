// Package router đăng ký các route thuộc domain catálogo:
// catálogo công khai (đọc) và CRUD quản trị cho negocio, sản phẩm, danh mục.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "catalogo_commerce/internal/api/catalog/handler"
	apirouter "catalogo_commerce/internal/api/router"
)

// Register đăng ký tất cả route catálogo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	catalogHandler, err := cataloghdl.NewCatalogHandler()
	if err != nil {
		return fmt.Errorf("create catalog handler: %w", err)
	}
	businessHandler, err := cataloghdl.NewBusinessProfileHandler()
	if err != nil {
		return fmt.Errorf("create business profile handler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}

	// Catálogo công khai: chỉ đọc, tra cứu theo slug
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/:slug", nil, catalogHandler.HandleGetCatalog)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/:slug/products", nil, catalogHandler.HandleGetProducts)

	// CRUD quản trị
	r.RegisterCRUDRoutes(v1, "/business-profiles", businessHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler, apirouter.ReadWriteConfig)
	return nil
}
