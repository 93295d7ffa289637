package cataloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "catalogo_commerce/internal/api/base/handler"
	basemodels "catalogo_commerce/internal/api/base/models"
	catalogdto "catalogo_commerce/internal/api/catalog/dto"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	catalogsvc "catalogo_commerce/internal/api/catalog/service"
	"catalogo_commerce/internal/common"
)

// CatalogHandler phục vụ catálogo công khai (không cần đăng nhập).
// Mọi tra cứu đi qua catalogSlug; negocio không tồn tại hoặc đã tắt
// catálogo đều trả về cùng một lỗi BIZ_003.
type CatalogHandler struct {
	basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	businessService     *catalogsvc.BusinessProfileService
	productService      *catalogsvc.ProductService
	categoryService     *catalogsvc.CategoryService
	availabilityService *catalogsvc.AvailabilityService
	pricingService      *catalogsvc.PricingService
}

// NewCatalogHandler tạo mới CatalogHandler
func NewCatalogHandler() (*CatalogHandler, error) {
	businessService, err := catalogsvc.NewBusinessProfileService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business profile service: %v", err)
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &CatalogHandler{
		BaseHandler:         *baseHandler,
		businessService:     businessService,
		productService:      productService,
		categoryService:     categoryService,
		availabilityService: catalogsvc.NewAvailabilityService(),
		pricingService:      catalogsvc.NewPricingService(),
	}, nil
}

// parsePriceLevel lấy mức giá từ query string (1..4), mặc định 1
func parsePriceLevel(c fiber.Ctx) int {
	level, err := strconv.Atoi(c.Query("priceLevel", "1"))
	if err != nil || level < 1 || level > 4 {
		return 1
	}
	return level
}

// buildProductView đánh giá tồn kho và phân giải giá hiển thị cho một sản phẩm
func (h *CatalogHandler) buildProductView(p catalogmodels.Product, level int, multiplePrices bool) catalogdto.CatalogProductView {
	availability := h.availabilityService.EvaluateProduct(&p)
	displayCents, startingFrom := h.pricingService.DisplayPrice(&p, level, multiplePrices)
	return catalogdto.CatalogProductView{
		Product:      p,
		OutOfStock:   availability.OutOfStock,
		Orderable:    availability.Orderable,
		DisplayPrice: common.ToAmount(displayCents),
		StartingFrom: startingFrom,
	}
}

// HandleGetCatalog trả về toàn bộ catálogo công khai của một negocio:
// hồ sơ, danh mục theo sortOrder và sản phẩm hiển thị theo thứ tự gốc.
// Sản phẩm hết hàng vẫn được liệt kê (đánh dấu "Agotado"), chỉ không đặt được.
func (h *CatalogHandler) HandleGetCatalog(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx := c.Context()
		slug := c.Params("slug")

		business, err := h.businessService.FindBySlug(ctx, slug)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		products, err := h.productService.FindByBusiness(ctx, business.ID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		categories, err := h.categoryService.FindByBusiness(ctx, business.ID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		level := parsePriceLevel(c)
		visible := h.availabilityService.FilterCatalog(products)
		views := make([]catalogdto.CatalogProductView, 0, len(visible))
		for _, p := range visible {
			views = append(views, h.buildProductView(p, level, business.MultiplePricesEnabled))
		}

		h.HandleResponse(c, catalogdto.CatalogView{
			Business:   business,
			Categories: categories,
			Products:   views,
		}, nil)
		return nil
	})
}

// HandleGetProducts trả về sản phẩm hiển thị của catálogo theo trang
func (h *CatalogHandler) HandleGetProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx := c.Context()
		slug := c.Params("slug")

		business, err := h.businessService.FindBySlug(ctx, slug)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		filter := bson.M{"businessId": business.ID, "catalogVisible": true}
		result, err := h.productService.FindWithPagination(ctx, filter, page, limit, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		level := parsePriceLevel(c)
		views := make([]catalogdto.CatalogProductView, 0, len(result.Items))
		for _, p := range result.Items {
			views = append(views, h.buildProductView(p, level, business.MultiplePricesEnabled))
		}

		h.HandleResponse(c, basemodels.PaginateResult[catalogdto.CatalogProductView]{
			Page:      result.Page,
			Limit:     result.Limit,
			ItemCount: int64(len(views)),
			Items:     views,
			Total:     result.Total,
			TotalPage: result.TotalPage,
		}, nil)
		return nil
	})
}
