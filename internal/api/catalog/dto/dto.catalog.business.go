package dto

// BusinessProfileCreateInput là input để tạo hồ sơ negocio
type BusinessProfileCreateInput struct {
	BusinessName          string  `json:"businessName" validate:"required"`                        // Tên negocio
	CatalogSlug           string  `json:"catalogSlug,omitempty" validate:"omitempty,catalog_slug"` // Slug của catálogo công khai (unique)
	CatalogEnabled        bool    `json:"catalogEnabled"`                                          // Bật catálogo công khai
	MultiplePricesEnabled bool    `json:"multiplePricesEnabled"`                                   // Bật nhiều mức giá
	WhatsappNumber        string  `json:"whatsappNumber,omitempty"`                                // Số WhatsApp nhận đơn
	Phone                 string  `json:"phone,omitempty"`                                         // Số điện thoại (dự phòng cho WhatsApp)
	Address               string  `json:"address,omitempty"`                                       // Địa chỉ
	Currency              string  `json:"currency,omitempty"`                                      // Đơn vị tiền tệ (mặc định PEN)
	TaxRate               float64 `json:"taxRate,omitempty"`                                       // Thuế suất IGV (%)
	TaxExempt             bool    `json:"taxExempt"`                                               // Negocio Exonerado/Inafecto
	RequireCustomerName   bool    `json:"requireCustomerName"`                                     // Bắt buộc tên khách khi checkout
	DemoMode              bool    `json:"demoMode"`                                                // Chế độ demo (không ghi đơn thật)
	LogoURL               string  `json:"logoUrl,omitempty"`                                       // Logo hiển thị trên catálogo
}

// BusinessProfileUpdateInput là input để cập nhật hồ sơ negocio
type BusinessProfileUpdateInput struct {
	BusinessName          *string  `json:"businessName,omitempty"`          // Tên negocio
	CatalogSlug           *string  `json:"catalogSlug,omitempty"`           // Slug của catálogo công khai
	CatalogEnabled        *bool    `json:"catalogEnabled,omitempty"`        // Bật catálogo công khai
	MultiplePricesEnabled *bool    `json:"multiplePricesEnabled,omitempty"` // Bật nhiều mức giá
	WhatsappNumber        *string  `json:"whatsappNumber,omitempty"`        // Số WhatsApp nhận đơn
	Phone                 *string  `json:"phone,omitempty"`                 // Số điện thoại
	Address               *string  `json:"address,omitempty"`               // Địa chỉ
	Currency              *string  `json:"currency,omitempty"`              // Đơn vị tiền tệ
	TaxRate               *float64 `json:"taxRate,omitempty"`               // Thuế suất IGV (%)
	TaxExempt             *bool    `json:"taxExempt,omitempty"`             // Negocio Exonerado/Inafecto
	RequireCustomerName   *bool    `json:"requireCustomerName,omitempty"`   // Bắt buộc tên khách
	DemoMode              *bool    `json:"demoMode,omitempty"`              // Chế độ demo
	LogoURL               *string  `json:"logoUrl,omitempty"`               // Logo
}
