// Package dto định nghĩa input/output của domain đơn hàng và checkout
package dto

// CheckoutInput là input của thao tác checkout một giỏ hàng.
// Mode "message" dựng deep link WhatsApp, không ghi đơn;
// mode "order" ghi đơn vào hệ thống với số đơn theo ngày.
type CheckoutInput struct {
	Mode          string `json:"mode" validate:"required,oneof=message order"`                             // Kiểu checkout
	OrderType     string `json:"orderType,omitempty" validate:"omitempty,oneof=dine_in takeaway delivery"` // Loại đơn (bắt buộc với mode order)
	TableLabel    string `json:"tableLabel,omitempty"`                                                     // Số bàn (dine_in; mặc định lấy từ giỏ)
	CustomerName  string `json:"customerName,omitempty"`                                                   // Tên khách (takeaway/delivery)
	CustomerPhone string `json:"customerPhone,omitempty"`                                                  // Điện thoại khách (delivery)
	Note          string `json:"note,omitempty"`                                                           // Ghi chú của khách
}

// CheckoutResult là kết quả trả về sau checkout thành công
type CheckoutResult struct {
	State        string  `json:"state"`                  // Trạng thái cuối của máy trạng thái (success)
	OrderID      string  `json:"orderId,omitempty"`      // ID đơn đã ghi (mode order, trừ demo)
	OrderNumber  string  `json:"orderNumber,omitempty"`  // Số đơn trong ngày (#NNN)
	Degraded     bool    `json:"degraded,omitempty"`     // Số đơn cấp bằng fallback ngẫu nhiên
	Subtotal     float64 `json:"subtotal,omitempty"`     // Giá trị chưa IGV
	Tax          float64 `json:"tax,omitempty"`          // IGV
	Total        float64 `json:"total"`                  // Tổng đã gồm IGV
	WhatsappLink string  `json:"whatsappLink,omitempty"` // Deep link wa.me (mode message)
	Message      string  `json:"message,omitempty"`      // Nội dung tin nhắn đã dựng (mode message)
	DemoMode     bool    `json:"demoMode,omitempty"`     // Checkout giả lập của chế độ demo
}

// OrderStatusUpdateInput là input để đổi trạng thái một đơn
type OrderStatusUpdateInput struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready delivered cancelled"` // Trạng thái mới
	Note   string `json:"note,omitempty"`                                                               // Ghi chú kèm theo
}
