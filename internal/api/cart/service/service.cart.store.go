package cartsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	cartmodels "catalogo_commerce/internal/api/cart/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/global"
)

// CartStore lưu snapshot giỏ hàng vào MongoDB để phiên sống sót qua
// restart server. Giỏ không đi qua base service vì khóa _id là UUID
// chuỗi, không phải ObjectID.
type CartStore struct {
	collection *mongo.Collection
}

// NewCartStore tạo mới CartStore
func NewCartStore() (*CartStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Carts)
	if !exist {
		return nil, fmt.Errorf("failed to get carts collection: %v", common.ErrNotFound)
	}
	return &CartStore{collection: collection}, nil
}

// Save ghi đè snapshot của giỏ (upsert theo _id)
func (s *CartStore) Save(ctx context.Context, cart *cartmodels.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart, opts)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Load đọc lại snapshot giỏ theo UUID phiên
func (s *CartStore) Load(ctx context.Context, id string) (*cartmodels.Cart, error) {
	var cart cartmodels.Cart
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrCartNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &cart, nil
}

// Delete xóa snapshot giỏ; giỏ không tồn tại là no-op
func (s *CartStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// DeleteUpdatedBefore xóa mọi snapshot không được chạm từ trước mốc cho
// trước (UnixMilli), trả về số giỏ đã xóa
func (s *CartStore) DeleteUpdatedBefore(ctx context.Context, cutoff int64) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}
