// Package catalogsvc chứa logic nghiệp vụ của catálogo công khai:
// tra cứu negocio theo slug, đánh giá tồn kho, và phân giải giá.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "catalogo_commerce/internal/api/base/service"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/global"
)

// BusinessProfileService là cấu trúc chứa các phương thức liên quan đến hồ sơ negocio
type BusinessProfileService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.BusinessProfile]
}

// NewBusinessProfileService tạo mới BusinessProfileService
func NewBusinessProfileService() (*BusinessProfileService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BusinessProfiles)
	if !exist {
		return nil, fmt.Errorf("failed to get business_profiles collection: %v", common.ErrNotFound)
	}

	return &BusinessProfileService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.BusinessProfile](collection),
	}, nil
}

// FindBySlug tra cứu negocio theo catalogSlug công khai.
// Trả về ErrCatalogUnavailable nếu slug không tồn tại hoặc catálogo bị tắt —
// shopper không cần phân biệt hai trường hợp này.
func (s *BusinessProfileService) FindBySlug(ctx context.Context, slug string) (catalogmodels.BusinessProfile, error) {
	var zero catalogmodels.BusinessProfile
	if slug == "" {
		return zero, common.ErrCatalogUnavailable
	}

	profile, err := s.FindOne(ctx, bson.M{"catalogSlug": slug}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrCatalogUnavailable
		}
		return zero, err
	}

	if !profile.CatalogEnabled {
		return zero, common.ErrCatalogUnavailable
	}

	return profile, nil
}
