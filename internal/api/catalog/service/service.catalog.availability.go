package catalogsvc

import (
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
)

// ProductAvailability là kết quả đánh giá một sản phẩm cho catálogo công khai
type ProductAvailability struct {
	Visible    bool // Có xuất hiện trên catálogo không
	OutOfStock bool // Hết hàng (hiển thị "Agotado")
	Orderable  bool // Có thể thêm vào giỏ không
}

// AvailabilityService đánh giá trạng thái bán được của sản phẩm và biến thể.
// Quy tắc tồn kho: chỉ coi là hết hàng khi tồn kho ĐƯỢC theo dõi (khác nil)
// và <= 0; tồn kho nil nghĩa là không theo dõi, luôn bán được.
// Hàm thuần, không cache: phải đánh giá lại mỗi khi snapshot tồn kho đổi.
type AvailabilityService struct{}

// NewAvailabilityService tạo mới AvailabilityService
func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{}
}

// stockDepleted: tồn kho được theo dõi và đã cạn
func stockDepleted(stock *int) bool {
	return stock != nil && *stock <= 0
}

// IsOutOfStock đánh giá một sản phẩm có hết hàng không.
// Thứ tự quy tắc:
//  1. Sản phẩm có biến thể: chỉ hết hàng khi MỌI biến thể đều cạn —
//     một biến thể không theo dõi tồn kho là đủ để sản phẩm còn bán được.
//  2. Không theo dõi tồn kho (cờ tắt hoặc stock nil): luôn còn hàng.
//  3. Còn lại: hết hàng khi stock <= 0.
func (s *AvailabilityService) IsOutOfStock(p *catalogmodels.Product) bool {
	if p.HasVariantList() {
		for i := range p.Variants {
			if !stockDepleted(p.Variants[i].Stock) {
				return false
			}
		}
		return true
	}
	if !p.TrackStock || p.Stock == nil {
		return false
	}
	return *p.Stock <= 0
}

// EvaluateProduct đánh giá trạng thái hiển thị và đặt hàng của một sản phẩm
func (s *AvailabilityService) EvaluateProduct(p *catalogmodels.Product) ProductAvailability {
	out := s.IsOutOfStock(p)
	return ProductAvailability{
		Visible:    p.CatalogVisible,
		OutOfStock: out,
		Orderable:  p.CatalogVisible && !out,
	}
}

// EvaluateVariant cho biết một biến thể còn đặt được không
func (s *AvailabilityService) EvaluateVariant(v *catalogmodels.Variant) bool {
	return !stockDepleted(v.Stock)
}

// FilterCatalog lọc danh sách sản phẩm cho catálogo công khai:
// giữ sản phẩm catalogVisible theo đúng thứ tự đầu vào.
// Sản phẩm hết hàng KHÔNG bị loại — vẫn hiển thị với nhãn "Agotado".
func (s *AvailabilityService) FilterCatalog(products []catalogmodels.Product) []catalogmodels.Product {
	visible := make([]catalogmodels.Product, 0, len(products))
	for _, p := range products {
		if p.CatalogVisible {
			visible = append(visible, p)
		}
	}
	return visible
}
