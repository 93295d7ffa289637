package ordersvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "catalogo_commerce/internal/api/base/service"
	ordermodels "catalogo_commerce/internal/api/order/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/global"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
	}, nil
}

// UpdateStatus đổi trạng thái đơn và nối một mục vào nhật ký trạng thái.
// Nhật ký là append-only: không sửa, không xóa mục cũ.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (ordermodels.Order, error) {
	var zero ordermodels.Order
	if !ordermodels.ValidOrderStatus(status) {
		return zero, common.ErrInvalidState
	}

	update := basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
		Push: map[string]interface{}{
			"statusHistory": ordermodels.StatusChange{
				Status: status,
				Note:   note,
				At:     time.Now().UnixMilli(),
			},
		},
	}
	return s.UpdateById(ctx, id, update)
}
