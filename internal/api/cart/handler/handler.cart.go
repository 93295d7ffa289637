// Package carthdl chứa HTTP handler cho domain giỏ hàng
package carthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "catalogo_commerce/internal/api/base/handler"
	cartdto "catalogo_commerce/internal/api/cart/dto"
	cartmodels "catalogo_commerce/internal/api/cart/models"
	cartsvc "catalogo_commerce/internal/api/cart/service"
	"catalogo_commerce/internal/common"
)

// CartHandler xử lý các request giỏ hàng của catálogo công khai
type CartHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	cartService *cartsvc.CartService
}

// NewCartHandler tạo mới CartHandler
func NewCartHandler() (*CartHandler, error) {
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, err
	}
	return &CartHandler{
		BaseHandler: &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		cartService: cartService,
	}, nil
}

// buildCartView đóng gói giỏ kèm các tổng đã tính cho client
func buildCartView(cart *cartmodels.Cart) cartdto.CartView {
	cart.Mu.Lock()
	defer cart.Mu.Unlock()
	items := append([]cartmodels.CartItem(nil), cart.Items...)
	return cartdto.CartView{
		ID:            cart.ID,
		Slug:          cart.Slug,
		TableLabel:    cart.TableLabel,
		Items:         items,
		TotalQuantity: cart.TotalQuantity(),
		Total:         common.ToAmount(cart.TotalCents()),
	}
}

// HandleCreate mở một phiên giỏ mới. Số bàn nhận qua body hoặc query
// (?mesa= / ?table=, giá trị không rỗng đầu tiên thắng).
func (h *CartHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input cartdto.CartCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tableFromQuery := c.Query("mesa")
		if tableFromQuery == "" {
			tableFromQuery = c.Query("table")
		}

		cart, err := h.cartService.Create(c.Context(), &input, tableFromQuery)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, buildCartView(cart), nil)
		return nil
	})
}

// HandleGet trả về giỏ theo UUID phiên
func (h *CartHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		cart, err := h.cartService.Get(c.Context(), c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, buildCartView(cart), nil)
		return nil
	})
}

// HandleAddItem thêm một lựa chọn vào giỏ (gộp theo danh tính dòng)
func (h *CartHandler) HandleAddItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input cartdto.CartAddItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cart, err := h.cartService.AddItem(c.Context(), c.Params("id"), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, buildCartView(cart), nil)
		return nil
	})
}

// HandleRemoveItem xóa một dòng khỏi giỏ. LineId nằm trong body vì chứa
// ký tự phân cách không hợp với path param. Dòng không tồn tại là no-op.
func (h *CartHandler) HandleRemoveItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input cartdto.CartRemoveItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cart, err := h.cartService.RemoveItem(c.Context(), c.Params("id"), input.LineID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, buildCartView(cart), nil)
		return nil
	})
}

// HandleUpdateItem đổi số lượng một dòng; quantity <= 0 là xóa dòng
func (h *CartHandler) HandleUpdateItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input cartdto.CartUpdateItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cart, err := h.cartService.UpdateItemQuantity(c.Context(), c.Params("id"), input.LineID, input.Quantity)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, buildCartView(cart), nil)
		return nil
	})
}
