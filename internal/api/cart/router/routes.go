// Package router đăng ký các route giỏ hàng của catálogo công khai
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	carthdl "catalogo_commerce/internal/api/cart/handler"
	apirouter "catalogo_commerce/internal/api/router"
)

// Register đăng ký tất cả route giỏ hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	cartHandler, err := carthdl.NewCartHandler()
	if err != nil {
		return fmt.Errorf("create cart handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "POST", "/", nil, cartHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "GET", "/:id", nil, cartHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "POST", "/:id/items", nil, cartHandler.HandleAddItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "PATCH", "/:id/items", nil, cartHandler.HandleUpdateItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "DELETE", "/:id/items", nil, cartHandler.HandleRemoveItem)
	return nil
}
