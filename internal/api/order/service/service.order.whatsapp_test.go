// Package ordersvc - Test dựng tin nhắn đặt hàng và deep link wa.me.
package ordersvc

import (
	"errors"
	"strings"
	"testing"

	cartmodels "catalogo_commerce/internal/api/cart/models"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"catalogo_commerce/internal/common"
)

func messageCart() *cartmodels.Cart {
	return &cartmodels.Cart{
		ID: "test-cart",
		Items: []cartmodels.CartItem{
			{
				ProductName:    "Lomo Saltado",
				VariantName:    "Grande",
				UnitPriceCents: 3500,
				Quantity:       2,
				Modifiers: []cartmodels.ModifierLine{
					{GroupName: "Extras", OptionName: "Queso", PriceDelta: 3.00},
					{GroupName: "Salsa", OptionName: "Ají", PriceDelta: 0},
				},
			},
			{
				ProductName:     "Chicha Morada",
				PriceLevelLabel: "Mayorista",
				UnitPriceCents:  800,
				Quantity:        1,
			},
		},
	}
}

func TestBuildMessage_Contents(t *testing.T) {
	svc := NewWhatsappService()
	msg := svc.BuildMessage(messageCart(), "5", "Ana")

	for _, want := range []string{
		"¡Hola! Me gustaría hacer un pedido:",
		"• 2x Lomo Saltado (Grande) - S/ 70.00",
		"   + Queso (S/ 3.00)",
		"   + Ají\n", // phụ thu 0 thì không hiển thị giá
		"• 1x Chicha Morada [Mayorista] - S/ 8.00",
		"*Total: S/ 78.00*",
		"Mesa: 5",
		"Nombre: Ana",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("tin nhắn thiếu %q:\n%s", want, msg)
		}
	}
}

func TestBuildMessage_OmitsEmptyFields(t *testing.T) {
	svc := NewWhatsappService()
	msg := svc.BuildMessage(messageCart(), "", "")

	if strings.Contains(msg, "Mesa:") {
		t.Error("không có số bàn thì không in dòng Mesa")
	}
	if strings.Contains(msg, "Nombre:") {
		t.Error("không có tên thì không in dòng Nombre")
	}
}

func TestBuildLink_NormalizesPhone(t *testing.T) {
	svc := NewWhatsappService()
	business := &catalogmodels.BusinessProfile{WhatsappNumber: "+51 987-654-321"}

	link, err := svc.BuildLink(business, "hola mundo")
	if err != nil {
		t.Fatalf("BuildLink lỗi: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/51987654321?text=") {
		t.Errorf("link = %q, số phải chỉ còn chữ số", link)
	}
	if !strings.Contains(link, "hola+mundo") && !strings.Contains(link, "hola%20mundo") {
		t.Errorf("link = %q, tin nhắn phải được URL-encode", link)
	}
}

func TestBuildLink_FallbackToPhone(t *testing.T) {
	svc := NewWhatsappService()
	business := &catalogmodels.BusinessProfile{Phone: "(01) 234 5678"}

	link, err := svc.BuildLink(business, "x")
	if err != nil {
		t.Fatalf("BuildLink lỗi: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/012345678?") {
		t.Errorf("link = %q, phải rơi về số điện thoại thường", link)
	}
}

func TestBuildLink_NotConfigured(t *testing.T) {
	svc := NewWhatsappService()
	business := &catalogmodels.BusinessProfile{}

	if _, err := svc.BuildLink(business, "x"); !errors.Is(err, common.ErrWhatsappNotConfigured) {
		t.Errorf("không có kênh liên hệ: err = %v, muốn ErrWhatsappNotConfigured", err)
	}
}
