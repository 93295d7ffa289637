// Package router đăng ký các route đơn hàng: checkout công khai và
// đọc/đổi trạng thái đơn phía quản trị
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "catalogo_commerce/internal/api/order/handler"
	apirouter "catalogo_commerce/internal/api/router"
)

// Register đăng ký tất cả route đơn hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}
	checkoutHandler, err := orderhdl.NewCheckoutHandler()
	if err != nil {
		return fmt.Errorf("create checkout handler: %w", err)
	}

	// Checkout công khai, treo dưới cây /carts của phiên giỏ
	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "POST", "/:id/checkout", nil, checkoutHandler.HandleCheckout)
	apirouter.RegisterRouteWithMiddleware(v1, "/carts", "GET", "/:id/checkout", nil, checkoutHandler.HandleCheckoutStatus)

	// Quản trị đơn: chỉ đọc qua CRUD chuẩn, đổi trạng thái qua route riêng
	r.RegisterCRUDRoutes(v1, "/orders", orderHandler, apirouter.ReadOnlyConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PATCH", "/update-status/:id", nil, orderHandler.HandleUpdateStatus)
	return nil
}
