// Package models định nghĩa đơn hàng đã ghi và bộ đếm số thứ tự theo ngày
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại đơn của checkout tại chỗ
const (
	OrderTypeDineIn   = "dine_in"  // Ăn tại bàn — cần số bàn
	OrderTypeTakeaway = "takeaway" // Mang đi — cần tên khách
	OrderTypeDelivery = "delivery" // Giao hàng — cần tên khách và điện thoại
)

// Các trạng thái vòng đời của đơn
const (
	OrderStatusPending   = "pending"   // Mới ghi, chờ xử lý
	OrderStatusPreparing = "preparing" // Đang chuẩn bị
	OrderStatusReady     = "ready"     // Sẵn sàng giao/nhận
	OrderStatusDelivered = "delivered" // Đã giao
	OrderStatusCancelled = "cancelled" // Đã hủy
)

// OrderItemModifier là snapshot một dòng modificador trong đơn
type OrderItemModifier struct {
	GroupName  string  `json:"groupName" bson:"groupName"`   // Tên nhóm tại thời điểm đặt
	OptionName string  `json:"optionName" bson:"optionName"` // Tên tùy chọn tại thời điểm đặt
	PriceDelta float64 `json:"priceDelta" bson:"priceDelta"` // Phụ thu tại thời điểm đặt
}

// OrderItem là một dòng hàng trong đơn: snapshot đầy đủ, không tra lại
// catálogo khi hiển thị hay in đơn
type OrderItem struct {
	ProductID       primitive.ObjectID  `json:"productId" bson:"productId"`             // Sản phẩm gốc
	ProductName     string              `json:"productName" bson:"productName"`         // Tên tại thời điểm đặt
	VariantSKU      string              `json:"variantSku" bson:"variantSku"`           // Biến thể, rỗng nếu không có
	VariantName     string              `json:"variantName" bson:"variantName"`         // Tên biến thể
	PriceLevelLabel string              `json:"priceLevelLabel" bson:"priceLevelLabel"` // Nhãn mức giá (rỗng = mặc định)
	UnitPrice       float64             `json:"unitPrice" bson:"unitPrice"`             // Giá đơn vị đã chốt, gồm IGV
	Quantity        int                 `json:"quantity" bson:"quantity"`               // Số lượng
	Total           float64             `json:"total" bson:"total"`                     // Thành tiền của dòng
	Modifiers       []OrderItemModifier `json:"modifiers" bson:"modifiers"`             // Các dòng modificador
	IGVAffected     bool                `json:"igvAffected" bson:"igvAffected"`         // Dòng có chịu IGV không
}

// StatusChange là một mục trong nhật ký trạng thái (append-only)
type StatusChange struct {
	Status string `json:"status" bson:"status"` // Trạng thái mới
	Note   string `json:"note" bson:"note"`     // Ghi chú kèm theo
	At     int64  `json:"at" bson:"at"`         // Thời điểm đổi (UnixMilli)
}

// Order là đơn hàng đã ghi từ checkout của catálogo công khai
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`             // ID đơn trong MongoDB
	BusinessID    primitive.ObjectID `json:"businessId" bson:"businessId" index:"single:1"` // Negocio nhận đơn
	OrderNumber   string             `json:"orderNumber" bson:"orderNumber"`                // Số đơn trong ngày (#001..#999)
	OrderType     string             `json:"orderType" bson:"orderType"`                    // dine_in / takeaway / delivery
	TableLabel    string             `json:"tableLabel" bson:"tableLabel"`                  // Số bàn (dine_in)
	CustomerName  string             `json:"customerName" bson:"customerName"`              // Tên khách (takeaway/delivery)
	CustomerPhone string             `json:"customerPhone" bson:"customerPhone"`            // Điện thoại khách (delivery)
	Note          string             `json:"note" bson:"note"`                              // Ghi chú của khách
	Items         []OrderItem        `json:"items" bson:"items"`                            // Các dòng hàng
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`                      // Giá trị chưa IGV
	Tax           float64            `json:"tax" bson:"tax"`                                // IGV
	Total         float64            `json:"total" bson:"total"`                            // Tổng đã gồm IGV (subtotal + tax)
	Status        string             `json:"status" bson:"status"`                          // Trạng thái vòng đời
	OverallStatus string             `json:"overallStatus" bson:"overallStatus"`            // active / archived
	Paid          bool               `json:"paid" bson:"paid"`                              // Đã thanh toán chưa
	Priority      string             `json:"priority" bson:"priority"`                      // normal / urgent
	StatusHistory []StatusChange     `json:"statusHistory" bson:"statusHistory"`            // Nhật ký trạng thái
	DemoMode      bool               `json:"demoMode,omitempty" bson:"demoMode,omitempty"`  // Đơn giả lập của chế độ demo
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`                    // Thời gian tạo
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`                    // Thời gian cập nhật
}

// ValidOrderType kiểm tra loại đơn có hợp lệ không
func ValidOrderType(orderType string) bool {
	switch orderType {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

// ValidOrderStatus kiểm tra trạng thái đơn có hợp lệ không
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
