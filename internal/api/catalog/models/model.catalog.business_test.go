// Package models - Test nhãn mức giá và kênh WhatsApp hiệu lực của negocio.
package models

import "testing"

func TestPriceLevelLabel(t *testing.T) {
	b := &BusinessProfile{PriceLevelLabels: []string{"Público", "Mayorista", "Distribuidor"}}

	// Mức 1 là mặc định, không hiển thị nhãn
	if got := b.PriceLevelLabel(1); got != "" {
		t.Errorf("mức 1: nhãn = %q, muốn rỗng", got)
	}
	if got := b.PriceLevelLabel(2); got != "Mayorista" {
		t.Errorf("mức 2: nhãn = %q, muốn Mayorista", got)
	}
	// Mức ngoài danh sách nhãn đã cấu hình
	if got := b.PriceLevelLabel(4); got != "" {
		t.Errorf("mức 4 chưa cấu hình: nhãn = %q, muốn rỗng", got)
	}
	if got := b.PriceLevelLabel(0); got != "" {
		t.Errorf("mức 0: nhãn = %q, muốn rỗng", got)
	}
}

func TestEffectiveWhatsappNumber(t *testing.T) {
	b := &BusinessProfile{WhatsappNumber: "51987654321", Phone: "012345678"}
	if got := b.EffectiveWhatsappNumber(); got != "51987654321" {
		t.Errorf("WhatsappNumber phải được ưu tiên, được %q", got)
	}

	b = &BusinessProfile{Phone: "012345678"}
	if got := b.EffectiveWhatsappNumber(); got != "012345678" {
		t.Errorf("phải rơi về Phone, được %q", got)
	}

	b = &BusinessProfile{}
	if got := b.EffectiveWhatsappNumber(); got != "" {
		t.Errorf("chưa cấu hình kênh nào phải rỗng, được %q", got)
	}
}
