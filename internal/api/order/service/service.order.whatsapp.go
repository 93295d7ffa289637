package ordersvc

import (
	"fmt"
	"net/url"
	"strings"

	cartmodels "catalogo_commerce/internal/api/cart/models"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/utility"
)

// WhatsappService dựng tin nhắn đặt hàng và deep link wa.me cho
// checkout kiểu tin nhắn (catálogo không ghi đơn vào hệ thống)
type WhatsappService struct{}

// NewWhatsappService tạo mới WhatsappService
func NewWhatsappService() *WhatsappService {
	return &WhatsappService{}
}

// BuildMessage dựng nội dung tin nhắn tiếng Tây Ban Nha gửi cho negocio:
// từng dòng hàng với số lượng, biến thể, nhãn mức giá khác mặc định,
// các modificador thụt lề bên dưới, thành tiền của dòng và tổng cộng.
func (s *WhatsappService) BuildMessage(cart *cartmodels.Cart, tableLabel string, customerName string) string {
	var b strings.Builder
	b.WriteString("¡Hola! Me gustaría hacer un pedido:\n\n")

	for i := range cart.Items {
		item := &cart.Items[i]
		name := item.ProductName
		if item.VariantName != "" {
			name = fmt.Sprintf("%s (%s)", name, item.VariantName)
		}
		if item.PriceLevelLabel != "" {
			name = fmt.Sprintf("%s [%s]", name, item.PriceLevelLabel)
		}
		b.WriteString(fmt.Sprintf("• %dx %s - %s\n", item.Quantity, name, common.FormatPEN(item.TotalCents())))

		for j := range item.Modifiers {
			mod := &item.Modifiers[j]
			if mod.PriceDelta > 0 {
				b.WriteString(fmt.Sprintf("   + %s (%s)\n", mod.OptionName, common.FormatPEN(common.ToCents(mod.PriceDelta))))
			} else {
				b.WriteString(fmt.Sprintf("   + %s\n", mod.OptionName))
			}
		}
	}

	b.WriteString(fmt.Sprintf("\n*Total: %s*\n", common.FormatPEN(cart.TotalCents())))

	if tableLabel != "" {
		b.WriteString(fmt.Sprintf("\nMesa: %s\n", tableLabel))
	}
	if customerName != "" {
		b.WriteString(fmt.Sprintf("\nNombre: %s\n", customerName))
	}
	return b.String()
}

// BuildLink dựng deep link wa.me với tin nhắn đã điền sẵn. Số điện thoại
// được chuẩn hóa bằng cách bỏ mọi ký tự không phải chữ số; negocio chưa
// cấu hình kênh liên hệ nào thì trả lỗi cấu hình thay vì gửi.
func (s *WhatsappService) BuildLink(business *catalogmodels.BusinessProfile, message string) (string, error) {
	digits := utility.NormalizePhoneDigits(business.EffectiveWhatsappNumber())
	if digits == "" {
		return "", common.ErrWhatsappNotConfigured
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}
