// Package cartsvc - Test chuẩn hóa lựa chọn modificador và quy tắc toggle.
package cartsvc

import (
	"errors"
	"testing"

	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"catalogo_commerce/internal/common"
)

func productWithModifiers() *catalogmodels.Product {
	return &catalogmodels.Product{
		Modifiers: []catalogmodels.ModifierGroup{
			{
				ID:           "salsa",
				Name:         "Salsa",
				MaxSelection: 1,
				Options: []catalogmodels.ModifierOption{
					{ID: "aji", Name: "Ají"},
					{ID: "tartara", Name: "Tártara"},
				},
			},
			{
				ID:           "extras",
				Name:         "Extras",
				MaxSelection: 2,
				Options: []catalogmodels.ModifierOption{
					{ID: "queso", Name: "Queso", PriceDelta: 3.00},
					{ID: "palta", Name: "Palta", PriceDelta: 2.00},
					{ID: "huevo", Name: "Huevo", PriceDelta: 1.50},
				},
			},
		},
	}
}

func TestNormalizeSelections_SortsAndDedupes(t *testing.T) {
	p := productWithModifiers()

	got, err := normalizeSelections(p, map[string][]string{
		"extras": {"queso", "palta", "queso"}, // trùng lặp chỉ tính một
	})
	if err != nil {
		t.Fatalf("normalizeSelections lỗi: %v", err)
	}
	extras := got["extras"]
	if len(extras) != 2 || extras[0] != "palta" || extras[1] != "queso" {
		t.Errorf("extras = %v, muốn [palta queso] (dedupe + sắp theo ID)", extras)
	}
}

func TestNormalizeSelections_Errors(t *testing.T) {
	p := productWithModifiers()

	if _, err := normalizeSelections(p, map[string][]string{"ghost": {"x"}}); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("nhóm lạ: err = %v, muốn ErrInvalidInput", err)
	}
	if _, err := normalizeSelections(p, map[string][]string{"extras": {"ghost"}}); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("tùy chọn lạ: err = %v, muốn ErrInvalidInput", err)
	}
	if _, err := normalizeSelections(p, map[string][]string{"extras": {"queso", "palta", "huevo"}}); !errors.Is(err, common.ErrModifierLimit) {
		t.Errorf("vượt MaxSelection: err = %v, muốn ErrModifierLimit", err)
	}
}

func TestNormalizeSelections_RequiredGroup(t *testing.T) {
	p := productWithModifiers()
	p.Modifiers[0].Required = true

	if _, err := normalizeSelections(p, nil); !errors.Is(err, common.ErrModifierRequired) {
		t.Errorf("nhóm bắt buộc bỏ trống: err = %v, muốn ErrModifierRequired", err)
	}
	if _, err := normalizeSelections(p, map[string][]string{"salsa": {"aji"}}); err != nil {
		t.Errorf("nhóm bắt buộc đã chọn: err = %v, muốn nil", err)
	}
}

func TestToggleOption_SingleChoiceReplaces(t *testing.T) {
	p := productWithModifiers()
	group := p.FindModifierGroup("salsa")

	got, err := ToggleOption(group, []string{"aji"}, "tartara")
	if err != nil {
		t.Fatalf("ToggleOption lỗi: %v", err)
	}
	if len(got) != 1 || got[0] != "tartara" {
		t.Errorf("nhóm chọn-một phải thay lựa chọn cũ: %v, muốn [tartara]", got)
	}
}

func TestToggleOption_ToggleOff(t *testing.T) {
	p := productWithModifiers()
	group := p.FindModifierGroup("extras")

	got, err := ToggleOption(group, []string{"queso", "palta"}, "queso")
	if err != nil {
		t.Fatalf("ToggleOption lỗi: %v", err)
	}
	if len(got) != 1 || got[0] != "palta" {
		t.Errorf("chọn lại tùy chọn đã chọn phải bỏ nó: %v, muốn [palta]", got)
	}
}

func TestToggleOption_MultiChoiceAtCap(t *testing.T) {
	p := productWithModifiers()
	group := p.FindModifierGroup("extras")

	current := []string{"queso", "palta"}
	got, err := ToggleOption(group, current, "huevo")
	if !errors.Is(err, common.ErrModifierLimit) {
		t.Errorf("chạm trần phải từ chối: err = %v, muốn ErrModifierLimit", err)
	}
	// Lựa chọn hiện có giữ nguyên
	if len(got) != 2 || got[0] != "queso" || got[1] != "palta" {
		t.Errorf("lựa chọn hiện có phải giữ nguyên: %v", got)
	}
}

func TestToggleOption_UnknownOption(t *testing.T) {
	p := productWithModifiers()
	group := p.FindModifierGroup("extras")

	if _, err := ToggleOption(group, nil, "ghost"); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("tùy chọn lạ: err = %v, muốn ErrInvalidInput", err)
	}
}
