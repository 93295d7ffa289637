// Package cartsvc chứa engine giỏ hàng: danh tính dòng, gộp dòng,
// và vòng đời phiên giỏ của catálogo công khai.
package cartsvc

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartdto "catalogo_commerce/internal/api/cart/dto"
	cartmodels "catalogo_commerce/internal/api/cart/models"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	catalogsvc "catalogo_commerce/internal/api/catalog/service"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/registry"
	"catalogo_commerce/internal/utility"
)

// sessions giữ các giỏ đang sống trong bộ nhớ, khóa theo UUID phiên.
// Dùng chung cho mọi instance CartService; snapshot MongoDB là nguồn
// phục hồi khi registry không còn giữ giỏ (restart, hết hạn).
var sessions = registry.NewRegistry[*cartmodels.Cart]()

// Sessions trả về registry phiên giỏ hàng (worker dọn giỏ dùng)
func Sessions() *registry.Registry[*cartmodels.Cart] {
	return sessions
}

// CartService là engine thao tác giỏ hàng của catálogo công khai
type CartService struct {
	store               *CartStore
	businessService     *catalogsvc.BusinessProfileService
	productService      *catalogsvc.ProductService
	availabilityService *catalogsvc.AvailabilityService
	pricingService      *catalogsvc.PricingService
}

// NewCartService tạo mới CartService
func NewCartService() (*CartService, error) {
	store, err := NewCartStore()
	if err != nil {
		return nil, err
	}
	businessService, err := catalogsvc.NewBusinessProfileService()
	if err != nil {
		return nil, err
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &CartService{
		store:               store,
		businessService:     businessService,
		productService:      productService,
		availabilityService: catalogsvc.NewAvailabilityService(),
		pricingService:      catalogsvc.NewPricingService(),
	}, nil
}

// Create mở một phiên giỏ mới cho catálogo. Số bàn lấy theo thứ tự:
// body trước, query (?mesa= / ?table=) sau — giá trị không rỗng đầu tiên thắng.
func (s *CartService) Create(ctx context.Context, input *cartdto.CartCreateInput, tableFromQuery string) (*cartmodels.Cart, error) {
	business, err := s.businessService.FindBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	tableLabel := utility.TrimCollapseSpaces(input.TableLabel)
	if tableLabel == "" {
		tableLabel = utility.TrimCollapseSpaces(tableFromQuery)
	}

	now := time.Now().UnixMilli()
	cart := &cartmodels.Cart{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		Slug:       input.Slug,
		TableLabel: tableLabel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := sessions.Register(cart.ID, cart); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Get trả về giỏ theo UUID phiên; registry trước, snapshot MongoDB sau
func (s *CartService) Get(ctx context.Context, id string) (*cartmodels.Cart, error) {
	if cart, exists := sessions.Get(id); exists {
		return cart, nil
	}

	cart, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	sessions.Register(id, cart)
	return cart, nil
}

// normalizeSelections kiểm tra và chuẩn hóa lựa chọn modificador:
// nhóm và tùy chọn phải tồn tại, không vượt MaxSelection, nhóm bắt buộc
// phải có ít nhất một lựa chọn. Tùy chọn trong mỗi nhóm được sắp theo ID.
func normalizeSelections(p *catalogmodels.Product, selections map[string][]string) (map[string][]string, error) {
	normalized := make(map[string][]string, len(selections))
	for groupID, optionIDs := range selections {
		if len(optionIDs) == 0 {
			continue
		}
		group := p.FindModifierGroup(groupID)
		if group == nil {
			return nil, common.ErrInvalidInput
		}

		seen := make(map[string]bool, len(optionIDs))
		unique := make([]string, 0, len(optionIDs))
		for _, optID := range optionIDs {
			if group.FindOption(optID) == nil {
				return nil, common.ErrInvalidInput
			}
			if !seen[optID] {
				seen[optID] = true
				unique = append(unique, optID)
			}
		}
		if group.MaxSelection >= 1 && len(unique) > group.MaxSelection {
			return nil, common.ErrModifierLimit
		}
		sort.Strings(unique)
		normalized[groupID] = unique
	}

	for i := range p.Modifiers {
		group := &p.Modifiers[i]
		if group.Required && len(normalized[group.ID]) == 0 {
			return nil, common.ErrModifierRequired
		}
	}
	return normalized, nil
}

// buildModifierLines dựng snapshot các dòng modificador theo thứ tự khai
// báo của sản phẩm, để tin nhắn và giỏ hiển thị ổn định
func buildModifierLines(p *catalogmodels.Product, selections map[string][]string) []cartmodels.ModifierLine {
	var lines []cartmodels.ModifierLine
	for i := range p.Modifiers {
		group := &p.Modifiers[i]
		chosen := selections[group.ID]
		for j := range group.Options {
			opt := &group.Options[j]
			if utility.Contains(chosen, opt.ID) {
				lines = append(lines, cartmodels.ModifierLine{
					GroupID:    group.ID,
					GroupName:  group.Name,
					OptionID:   opt.ID,
					OptionName: opt.Name,
					PriceDelta: opt.PriceDelta,
				})
			}
		}
	}
	return lines
}

// ToggleOption áp quy tắc chọn/bỏ một tùy chọn trong nhóm:
// đã chọn thì bỏ; nhóm chọn-một thay lựa chọn cũ bằng lựa chọn mới;
// nhóm chọn-nhiều đã chạm trần thì TỪ CHỐI lựa chọn mới, giữ nguyên
// các lựa chọn hiện có.
func ToggleOption(group *catalogmodels.ModifierGroup, current []string, optionID string) ([]string, error) {
	if group.FindOption(optionID) == nil {
		return current, common.ErrInvalidInput
	}

	for i, id := range current {
		if id == optionID {
			return append(append([]string(nil), current[:i]...), current[i+1:]...), nil
		}
	}

	if group.MaxSelection == 1 {
		return []string{optionID}, nil
	}
	if group.MaxSelection > 1 && len(current) >= group.MaxSelection {
		return current, common.ErrModifierLimit
	}
	return append(append([]string(nil), current...), optionID), nil
}

// AddItem thêm một lựa chọn vào giỏ, gộp theo danh tính dòng.
// Sản phẩm hết hàng bị từ chối LẶNG LẼ (trả giỏ nguyên trạng, không lỗi) —
// catálogo đã khóa nút đặt, đây chỉ là chốt chặn cuối.
func (s *CartService) AddItem(ctx context.Context, cartID string, input *cartdto.CartAddItemInput) (*cartmodels.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	product, err := s.productService.FindOneById(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.BusinessID != cart.BusinessID || !product.CatalogVisible {
		return nil, common.ErrProductNotOrderable
	}

	business, err := s.businessService.FindOneById(ctx, cart.BusinessID)
	if err != nil {
		return nil, err
	}

	if s.availabilityService.IsOutOfStock(&product) {
		return cart, nil
	}

	var variant *catalogmodels.Variant
	if product.HasVariantList() {
		if input.VariantSKU == "" {
			return nil, common.ErrVariantRequired
		}
		variant = product.FindVariant(input.VariantSKU)
		if variant == nil {
			return nil, common.ErrInvalidInput
		}
		if !s.availabilityService.EvaluateVariant(variant) {
			return cart, nil
		}
	}

	selections, err := normalizeSelections(&product, input.Selections)
	if err != nil {
		return nil, err
	}

	level := input.PriceLevel
	if level < 1 || level > 4 {
		level = 1
	}

	variantSKU := ""
	variantName := ""
	if variant != nil {
		variantSKU = variant.SKU
		variantName = variant.Name
	}

	unitPrice, err := s.pricingService.UnitPrice(&product, variantSKU, selections, level, business.MultiplePricesEnabled)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	identity := cartmodels.LineIdentity{
		ProductID:         product.ID.Hex(),
		VariantSKU:        variantSKU,
		ModifierSignature: cartmodels.BuildModifierSignature(selections),
		PriceLevel:        level,
	}

	item := cartmodels.CartItem{
		Identity:        identity,
		LineID:          identity.String(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		ImageURL:        product.ImageURL,
		VariantSKU:      variantSKU,
		VariantName:     variantName,
		PriceLevel:      level,
		PriceLevelLabel: business.PriceLevelLabel(level),
		UnitPriceCents:  unitPrice,
		Quantity:        quantity,
		Selections:      selections,
		Modifiers:       buildModifierLines(&product, selections),
		IGVAffected:     product.IGVAffected,
	}

	cart.Mu.Lock()
	cart.Merge(item)
	cart.UpdatedAt = time.Now().UnixMilli()
	cart.Mu.Unlock()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemQuantity đổi số lượng một dòng theo lineId; <= 0 là xóa dòng
func (s *CartService) UpdateItemQuantity(ctx context.Context, cartID string, lineID string, quantity int) (*cartmodels.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.Mu.Lock()
	item := cart.FindItemByLineID(lineID)
	if item == nil {
		cart.Mu.Unlock()
		return nil, common.ErrCartLineNotFound
	}
	cart.SetQuantity(item.Identity, quantity)
	cart.UpdatedAt = time.Now().UnixMilli()
	cart.Mu.Unlock()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem xóa một dòng theo lineId; dòng không tồn tại là no-op
func (s *CartService) RemoveItem(ctx context.Context, cartID string, lineID string) (*cartmodels.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.Mu.Lock()
	if item := cart.FindItemByLineID(lineID); item != nil {
		cart.Remove(item.Identity)
		cart.UpdatedAt = time.Now().UnixMilli()
	}
	cart.Mu.Unlock()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear xóa mọi dòng của giỏ (gọi sau khi checkout thành công — giỏ
// nhường quyền sở hữu dòng hàng cho đơn đã ghi)
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return err
	}

	cart.Mu.Lock()
	cart.Clear()
	cart.UpdatedAt = time.Now().UnixMilli()
	cart.Mu.Unlock()

	return s.store.Save(ctx, cart)
}

// PurgeExpired dọn các giỏ không được chạm trong khoảng TTL: gỡ khỏi
// registry phiên và xóa snapshot MongoDB. Trả về số giỏ gỡ khỏi bộ nhớ.
func (s *CartService) PurgeExpired(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl).UnixMilli()

	var expired []string
	sessions.Range(func(id string, cart *cartmodels.Cart) bool {
		cart.Mu.Lock()
		stale := cart.UpdatedAt < cutoff
		cart.Mu.Unlock()
		if stale {
			expired = append(expired, id)
		}
		return true
	})
	for _, id := range expired {
		sessions.Clear(id, nil)
	}

	if _, err := s.store.DeleteUpdatedBefore(ctx, cutoff); err != nil {
		return len(expired), err
	}
	return len(expired), nil
}
