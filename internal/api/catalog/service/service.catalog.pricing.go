package catalogsvc

import (
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"catalogo_commerce/internal/common"
)

// PricingService phân giải giá đơn vị cho một dòng giỏ hàng.
// Mọi số tiền trả về đều tính bằng céntimos.
// Hàm thuần: không ném lỗi với input hợp lệ, caller chặn input sai
// (biến thể bắt buộc, nhóm bắt buộc) trước khi gọi.
type PricingService struct{}

// NewPricingService tạo mới PricingService
func NewPricingService() *PricingService {
	return &PricingService{}
}

// tierPrice trả về giá của mức (1..4), 0 nếu ngoài khoảng
func tierPrice(p *catalogmodels.Product, level int) float64 {
	switch level {
	case 1:
		return p.Price
	case 2:
		return p.Price2
	case 3:
		return p.Price3
	case 4:
		return p.Price4
	}
	return 0
}

// ResolveBase phân giải giá gốc của sản phẩm KHÔNG có biến thể được chọn.
// Mức 2–4 chỉ có hiệu lực khi negocio bật multiplePricesEnabled VÀ sản phẩm
// cấu hình nhiều hơn một mức giá dương VÀ mức được chọn có giá dương;
// nếu không, rơi về giá mức 1.
func (s *PricingService) ResolveBase(p *catalogmodels.Product, level int, multiplePricesEnabled bool) int64 {
	if multiplePricesEnabled && p.PositiveTierCount() > 1 && level > 1 {
		if price := tierPrice(p, level); price > 0 {
			return common.ToCents(price)
		}
	}
	return common.ToCents(p.Price)
}

// MinVariantPrice trả về giá thấp nhất trong các biến thể, dùng cho
// hiển thị "Desde S/ x.xx" khi chưa chọn biến thể. Trả 0 nếu không có biến thể.
func (s *PricingService) MinVariantPrice(p *catalogmodels.Product) int64 {
	if !p.HasVariantList() {
		return 0
	}
	min := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return common.ToCents(min)
}

// DisplayPrice là giá hiển thị trên lưới catálogo: sản phẩm có biến thể
// hiển thị giá thấp nhất (khung "desde"), còn lại đi theo ResolveBase.
func (s *PricingService) DisplayPrice(p *catalogmodels.Product, level int, multiplePricesEnabled bool) (cents int64, startingFrom bool) {
	if p.HasVariantList() {
		return s.MinVariantPrice(p), true
	}
	return s.ResolveBase(p, level, multiplePricesEnabled), false
}

// UnitPrice tính giá đơn vị của một dòng theo thứ tự ưu tiên:
// biến thể được chọn thay thế hẳn giá gốc (mức giá không còn tác dụng);
// nếu không có biến thể thì đi theo ResolveBase; cuối cùng cộng phụ thu
// của mọi tùy chọn modificador đã chọn.
func (s *PricingService) UnitPrice(p *catalogmodels.Product, variantSKU string, selections map[string][]string, level int, multiplePricesEnabled bool) (int64, error) {
	var base int64
	if variantSKU != "" {
		variant := p.FindVariant(variantSKU)
		if variant == nil {
			return 0, common.ErrInvalidInput
		}
		base = common.ToCents(variant.Price)
	} else {
		base = s.ResolveBase(p, level, multiplePricesEnabled)
	}

	for groupID, optionIDs := range selections {
		group := p.FindModifierGroup(groupID)
		if group == nil {
			return 0, common.ErrInvalidInput
		}
		for _, optID := range optionIDs {
			opt := group.FindOption(optID)
			if opt == nil {
				return 0, common.ErrInvalidInput
			}
			base += common.ToCents(opt.PriceDelta)
		}
	}

	return base, nil
}
