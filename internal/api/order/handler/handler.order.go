// Package orderhdl chứa HTTP handler cho domain đơn hàng và checkout
package orderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "catalogo_commerce/internal/api/base/handler"
	orderdto "catalogo_commerce/internal/api/order/dto"
	ordermodels "catalogo_commerce/internal/api/order/models"
	ordersvc "catalogo_commerce/internal/api/order/service"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/logger"
)

// OrderHandler xử lý các request quản trị đơn hàng.
// Đơn chỉ được tạo qua checkout, nên phía quản trị chỉ đọc và đổi trạng thái.
type OrderHandler struct {
	basehdl.BaseHandler[ordermodels.Order, ordermodels.Order, orderdto.OrderStatusUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[ordermodels.Order, ordermodels.Order, orderdto.OrderStatusUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  *baseHandler,
		orderService: orderService,
	}, nil
}

// HandleUpdateStatus đổi trạng thái một đơn, nối mục mới vào nhật ký
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		var input orderdto.OrderStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.UpdateStatus(c.Context(), id, input.Status, input.Note)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("order.status.update", c, map[string]interface{}{
			"orderId": id.Hex(),
			"status":  input.Status,
		})
		h.HandleResponse(c, order, nil)
		return nil
	})
}

// CheckoutStatusView là trạng thái checkout gần nhất của một giỏ
type CheckoutStatusView struct {
	OrderNumber string `json:"orderNumber"` // Số đơn của lần thành công gần nhất, rỗng nếu chưa có
}

// CheckoutHandler xử lý checkout của catálogo công khai
type CheckoutHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	checkoutService *ordersvc.CheckoutService
}

// NewCheckoutHandler tạo mới CheckoutHandler
func NewCheckoutHandler() (*CheckoutHandler, error) {
	checkoutService, err := ordersvc.NewCheckoutService()
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %v", err)
	}
	return &CheckoutHandler{
		BaseHandler:     &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		checkoutService: checkoutService,
	}, nil
}

// HandleCheckoutStatus trả về số đơn của lần checkout thành công gần nhất
// của giỏ, để màn hình xác nhận hiển thị lại sau khi reload
func (h *CheckoutHandler) HandleCheckoutStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		view := CheckoutStatusView{
			OrderNumber: h.checkoutService.LastOrderNumber(c.Params("id")),
		}
		h.HandleResponse(c, view, nil)
		return nil
	})
}

// HandleCheckout chạy checkout cho giỏ trong path param
func (h *CheckoutHandler) HandleCheckout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.CheckoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cartID := c.Params("id")
		result, err := h.checkoutService.Checkout(c.Context(), cartID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("checkout", c, map[string]interface{}{
			"cartId":      cartID,
			"mode":        input.Mode,
			"orderType":   input.OrderType,
			"orderNumber": result.OrderNumber,
			"degraded":    result.Degraded,
			"demoMode":    result.DemoMode,
		})
		h.HandleResponse(c, result, nil)
		return nil
	})
}
