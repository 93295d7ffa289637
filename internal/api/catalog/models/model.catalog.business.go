package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessProfile lưu hồ sơ của một negocio với catálogo công khai
type BusinessProfile struct {
	ID                    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                   // ID của negocio trong MongoDB
	BusinessName          string             `json:"businessName" bson:"businessName"`                                    // Tên hiển thị của negocio
	CatalogSlug           string             `json:"catalogSlug" bson:"catalogSlug" index:"unique,sparse"`                // Slug công khai của catálogo (duy nhất)
	CatalogEnabled        bool               `json:"catalogEnabled" bson:"catalogEnabled"`                                // Catálogo có được bật không
	MultiplePricesEnabled bool               `json:"multiplePricesEnabled" bson:"multiplePricesEnabled"`                  // Cho phép các mức giá 2/3/4
	PriceLevelLabels      []string           `json:"priceLevelLabels,omitempty" bson:"priceLevelLabels,omitempty"`        // Nhãn các mức giá (Público, Mayorista, ...)
	WhatsappNumber        string             `json:"whatsappNumber" bson:"whatsappNumber"`                                // Số WhatsApp nhận đơn (ưu tiên)
	Phone                 string             `json:"phone" bson:"phone"`                                                  // Số điện thoại (fallback cho WhatsApp)
	Address               string             `json:"address" bson:"address"`                                              // Địa chỉ hiển thị
	Currency              string             `json:"currency" bson:"currency"`                                            // Mã tiền tệ, mặc định "PEN"
	TaxRate               float64            `json:"taxRate" bson:"taxRate"`                                              // Thuế suất IGV (%), 0 = dùng mặc định hệ thống
	TaxExempt             bool               `json:"taxExempt" bson:"taxExempt"`                                          // Negocio Exonerado/Inafecto: toàn bộ đơn không IGV
	RequireCustomerName   bool               `json:"requireCustomerName" bson:"requireCustomerName"`                      // Bắt buộc tên khách khi takeaway/delivery
	DemoMode              bool               `json:"demoMode" bson:"demoMode"`                                            // Chế độ demo: checkout giả lập, không ghi đơn
	LogoURL               string             `json:"logoUrl" bson:"logoUrl"`                                              // Logo hiển thị trên catálogo
	CreatedAt             int64              `json:"createdAt" bson:"createdAt"`                                          // Thời gian tạo
	UpdatedAt             int64              `json:"updatedAt" bson:"updatedAt"`                                          // Thời gian cập nhật
}

// PriceLevelLabel trả về nhãn của mức giá (1..4); mức 1 là mặc định nên
// trả chuỗi rỗng — chỉ mức khác mặc định mới hiển thị nhãn trên giỏ hàng.
func (b *BusinessProfile) PriceLevelLabel(level int) string {
	if level <= 1 || level > len(b.PriceLevelLabels) {
		return ""
	}
	return b.PriceLevelLabels[level-1]
}

// EffectiveWhatsappNumber trả về số WhatsApp dùng để nhận đơn:
// WhatsappNumber nếu có, không thì Phone. Chuỗi rỗng nghĩa là chưa cấu hình.
func (b *BusinessProfile) EffectiveWhatsappNumber() string {
	if b.WhatsappNumber != "" {
		return b.WhatsappNumber
	}
	return b.Phone
}
