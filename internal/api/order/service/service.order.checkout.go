package ordersvc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	cartmodels "catalogo_commerce/internal/api/cart/models"
	cartsvc "catalogo_commerce/internal/api/cart/service"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	catalogsvc "catalogo_commerce/internal/api/catalog/service"
	orderdto "catalogo_commerce/internal/api/order/dto"
	ordermodels "catalogo_commerce/internal/api/order/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/global"
	"catalogo_commerce/internal/logger"
	"catalogo_commerce/internal/registry"
	"catalogo_commerce/internal/utility"
)

// Các trạng thái của máy trạng thái checkout
const (
	CheckoutStateIdle       = "idle"       // Chưa có checkout nào đang chạy
	CheckoutStateValidating = "validating" // Đang kiểm tra input
	CheckoutStateSubmitting = "submitting" // Đang ghi đơn / dựng tin nhắn
	CheckoutStateSuccess    = "success"    // Hoàn tất, giữ số đơn để hiển thị
	CheckoutStateError      = "error"      // Thất bại, chờ retry
)

// checkoutSession theo dõi trạng thái checkout của một giỏ.
// Retry sau lỗi chạy lại validation và cấp một số đơn MỚI —
// orchestrator không khử trùng lặp các lần submit lại.
type checkoutSession struct {
	mu          sync.Mutex
	state       string
	orderNumber string
}

// begin chuyển idle/success/error -> validating; từ chối khi một
// checkout khác của cùng giỏ đang chạy
func (s *checkoutSession) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == CheckoutStateValidating || s.state == CheckoutStateSubmitting {
		return common.ErrCheckoutInProgress
	}
	s.state = CheckoutStateValidating
	return nil
}

func (s *checkoutSession) transition(state string) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// checkouts giữ phiên checkout theo UUID giỏ, dùng chung mọi instance
var checkouts = registry.NewRegistry[*checkoutSession]()

// CheckoutService điều phối toàn bộ luồng checkout: validate theo loại
// đơn, cấp số, tách IGV, ghi đơn hoặc dựng tin nhắn, rồi dọn giỏ.
type CheckoutService struct {
	cartService     *cartsvc.CartService
	businessService *catalogsvc.BusinessProfileService
	orderService    *OrderService
	sequenceService *SequenceService
	taxService      *TaxService
	whatsappService *WhatsappService
}

// NewCheckoutService tạo mới CheckoutService
func NewCheckoutService() (*CheckoutService, error) {
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, err
	}
	businessService, err := catalogsvc.NewBusinessProfileService()
	if err != nil {
		return nil, err
	}
	orderService, err := NewOrderService()
	if err != nil {
		return nil, err
	}
	sequenceService, err := NewSequenceService()
	if err != nil {
		return nil, err
	}
	return &CheckoutService{
		cartService:     cartService,
		businessService: businessService,
		orderService:    orderService,
		sequenceService: sequenceService,
		taxService:      NewTaxService(),
		whatsappService: NewWhatsappService(),
	}, nil
}

// validate kiểm tra các trường bắt buộc theo loại đơn:
// dine_in cần số bàn, takeaway/delivery cần tên khách,
// delivery cần thêm điện thoại. requireName là cấu hình của negocio
// buộc tên khách với cả dine_in. Trả lỗi gọi tên đúng trường thiếu.
func validate(input *orderdto.CheckoutInput, tableLabel string, requireName bool) error {
	if !ordermodels.ValidOrderType(input.OrderType) {
		return common.ErrInvalidInput
	}
	if requireName && utility.TrimCollapseSpaces(input.CustomerName) == "" {
		return common.ErrCustomerNameRequired
	}
	switch input.OrderType {
	case ordermodels.OrderTypeDineIn:
		if utility.TrimCollapseSpaces(tableLabel) == "" {
			return common.ErrTableRequired
		}
	case ordermodels.OrderTypeTakeaway:
		if utility.TrimCollapseSpaces(input.CustomerName) == "" {
			return common.ErrCustomerNameRequired
		}
	case ordermodels.OrderTypeDelivery:
		if utility.TrimCollapseSpaces(input.CustomerName) == "" {
			return common.ErrCustomerNameRequired
		}
		if utility.NormalizePhoneDigits(input.CustomerPhone) == "" {
			return common.ErrCustomerPhoneRequired
		}
	}
	return nil
}

// effectiveTaxRate trả về thuế suất của negocio, rơi về mặc định hệ thống
func effectiveTaxRate(business *catalogmodels.BusinessProfile) float64 {
	if business.TaxRate > 0 {
		return business.TaxRate
	}
	if global.MongoDB_ServerConfig != nil {
		return global.MongoDB_ServerConfig.DefaultTaxRate
	}
	return 18
}

// splitCart tách tổng giỏ thành (subtotal, IGV) theo cấu hình thuế:
// negocio miễn thuế thì cả đơn không IGV, ngược lại tách riêng phần
// dòng Gravado và dòng Exonerado/Inafecto
func (s *CheckoutService) splitCart(cart *cartmodels.Cart, business *catalogmodels.BusinessProfile) TaxSplit {
	if business.TaxExempt {
		return s.taxService.Split(cart.TotalCents(), 0, true)
	}

	var affected, exempt int64
	for i := range cart.Items {
		if cart.Items[i].IGVAffected {
			affected += cart.Items[i].TotalCents()
		} else {
			exempt += cart.Items[i].TotalCents()
		}
	}
	return s.taxService.SplitMixed(affected, exempt, effectiveTaxRate(business))
}

// buildOrderItems chuyển các dòng giỏ thành dòng đơn (snapshot độc lập)
func buildOrderItems(cart *cartmodels.Cart) []ordermodels.OrderItem {
	items := make([]ordermodels.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		line := &cart.Items[i]
		modifiers := make([]ordermodels.OrderItemModifier, 0, len(line.Modifiers))
		for j := range line.Modifiers {
			modifiers = append(modifiers, ordermodels.OrderItemModifier{
				GroupName:  line.Modifiers[j].GroupName,
				OptionName: line.Modifiers[j].OptionName,
				PriceDelta: line.Modifiers[j].PriceDelta,
			})
		}
		items = append(items, ordermodels.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			VariantSKU:      line.VariantSKU,
			VariantName:     line.VariantName,
			PriceLevelLabel: line.PriceLevelLabel,
			UnitPrice:       common.ToAmount(line.UnitPriceCents),
			Quantity:        line.Quantity,
			Total:           common.ToAmount(line.TotalCents()),
			Modifiers:       modifiers,
			IGVAffected:     line.IGVAffected,
		})
	}
	return items
}

// Checkout chạy máy trạng thái checkout cho một giỏ:
// idle -> validating -> submitting -> success | error.
// Lỗi tầng nào cũng được bắt tại đây và quy về taxonomy lỗi chung,
// không có ngoại lệ nào lọt lên handler.
func (s *CheckoutService) Checkout(ctx context.Context, cartID string, input *orderdto.CheckoutInput) (*orderdto.CheckoutResult, error) {
	session, err := checkouts.GetOrCreate(cartID, func() (*checkoutSession, error) {
		return &checkoutSession{state: CheckoutStateIdle}, nil
	})
	if err != nil {
		return nil, err
	}
	if err := session.begin(); err != nil {
		return nil, err
	}

	result, err := s.run(ctx, cartID, input)
	if err != nil {
		session.transition(CheckoutStateError)
		return nil, err
	}

	session.mu.Lock()
	session.state = CheckoutStateSuccess
	session.orderNumber = result.OrderNumber
	session.mu.Unlock()
	return result, nil
}

// LastOrderNumber trả về số đơn của lần checkout thành công gần nhất
// của giỏ (hiển thị lại màn hình xác nhận), chuỗi rỗng nếu chưa có
func (s *CheckoutService) LastOrderNumber(cartID string) string {
	session, exists := checkouts.Get(cartID)
	if !exists {
		return ""
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.orderNumber
}

func (s *CheckoutService) run(ctx context.Context, cartID string, input *orderdto.CheckoutInput) (*orderdto.CheckoutResult, error) {
	cart, err := s.cartService.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, common.ErrCartEmpty
	}

	business, err := s.businessService.FindOneById(ctx, cart.BusinessID)
	if err != nil {
		return nil, err
	}

	tableLabel := utility.TrimCollapseSpaces(input.TableLabel)
	if tableLabel == "" {
		tableLabel = cart.TableLabel
	}

	if input.Mode == "message" {
		return s.runMessage(ctx, cart, &business, input, tableLabel)
	}

	if err := validate(input, tableLabel, business.RequireCustomerName); err != nil {
		return nil, err
	}
	return s.runOrder(ctx, cart, &business, input, tableLabel)
}

// runMessage dựng tin nhắn WhatsApp đã điền sẵn: không ghi đơn,
// không cấp số. Cần ít nhất một kênh liên hệ được cấu hình.
func (s *CheckoutService) runMessage(ctx context.Context, cart *cartmodels.Cart, business *catalogmodels.BusinessProfile, input *orderdto.CheckoutInput, tableLabel string) (*orderdto.CheckoutResult, error) {
	message := s.whatsappService.BuildMessage(cart, tableLabel, utility.TrimCollapseSpaces(input.CustomerName))
	link, err := s.whatsappService.BuildLink(business, message)
	if err != nil {
		return nil, err
	}

	total := cart.TotalCents()
	if err := s.cartService.Clear(ctx, cart.ID); err != nil {
		return nil, err
	}

	return &orderdto.CheckoutResult{
		State:        CheckoutStateSuccess,
		Total:        common.ToAmount(total),
		WhatsappLink: link,
		Message:      message,
	}, nil
}

// runOrder ghi đơn vào hệ thống: cấp số theo ngày, tách IGV, dựng Order
// với nhật ký trạng thái khởi tạo, rồi dọn giỏ. Chế độ demo giả lập độ
// trễ và số đơn cố định, không chạm bộ đếm lẫn collection đơn.
func (s *CheckoutService) runOrder(ctx context.Context, cart *cartmodels.Cart, business *catalogmodels.BusinessProfile, input *orderdto.CheckoutInput, tableLabel string) (*orderdto.CheckoutResult, error) {
	split := s.splitCart(cart, business)

	if business.DemoMode {
		delay := 800
		if global.MongoDB_ServerConfig != nil {
			delay = global.MongoDB_ServerConfig.DemoDelayMs
		}
		select {
		case <-time.After(time.Duration(delay) * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if err := s.cartService.Clear(ctx, cart.ID); err != nil {
			return nil, err
		}
		return &orderdto.CheckoutResult{
			State:       CheckoutStateSuccess,
			OrderNumber: FormatOrderNumber(1),
			Subtotal:    common.ToAmount(split.SubtotalCents),
			Tax:         common.ToAmount(split.TaxCents),
			Total:       common.ToAmount(split.TotalCents),
			DemoMode:    true,
		}, nil
	}

	number, degraded := s.sequenceService.Allocate(ctx, business.ID)

	now := time.Now().UnixMilli()
	order := ordermodels.Order{
		BusinessID:    business.ID,
		OrderNumber:   number,
		OrderType:     input.OrderType,
		TableLabel:    tableLabel,
		CustomerName:  utility.TrimCollapseSpaces(input.CustomerName),
		CustomerPhone: utility.NormalizePhoneDigits(input.CustomerPhone),
		Note:          utility.TrimCollapseSpaces(input.Note),
		Items:         buildOrderItems(cart),
		Subtotal:      common.ToAmount(split.SubtotalCents),
		Tax:           common.ToAmount(split.TaxCents),
		Total:         common.ToAmount(split.TotalCents),
		Status:        ordermodels.OrderStatusPending,
		OverallStatus: "active",
		Paid:          false,
		Priority:      "normal",
		StatusHistory: []ordermodels.StatusChange{
			{Status: ordermodels.OrderStatusPending, Note: "Orden creada", At: now},
		},
	}

	saved, err := s.orderService.InsertOne(ctx, order)
	if err != nil {
		// Phân biệt lỗi phân quyền với lỗi hạ tầng chung: người mua nhận
		// thông điệp hành động được thay vì chuỗi lỗi kỹ thuật
		var commonErr *common.Error
		if errors.As(err, &commonErr) && commonErr.StatusCode == common.StatusForbidden {
			return nil, common.ErrOrderWriteDenied
		}
		return nil, err
	}

	if err := s.cartService.Clear(ctx, cart.ID); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"cartId":  cart.ID,
			"orderId": saved.ID.Hex(),
			"error":   err.Error(),
		}).Warn("Đơn đã ghi nhưng dọn giỏ thất bại")
	}

	return &orderdto.CheckoutResult{
		State:       CheckoutStateSuccess,
		OrderID:     saved.ID.Hex(),
		OrderNumber: number,
		Degraded:    degraded,
		Subtotal:    common.ToAmount(split.SubtotalCents),
		Tax:         common.ToAmount(split.TaxCents),
		Total:       common.ToAmount(split.TotalCents),
	}, nil
}
