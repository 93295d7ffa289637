// Package ordersvc chứa logic nghiệp vụ của đơn hàng: tách IGV, cấp số
// đơn theo ngày, dựng tin nhắn WhatsApp và điều phối checkout.
package ordersvc

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "catalogo_commerce/internal/api/base/service"
	ordermodels "catalogo_commerce/internal/api/order/models"
	"catalogo_commerce/internal/common"
	"catalogo_commerce/internal/global"
	"catalogo_commerce/internal/logger"
)

// SequenceService cấp số đơn ngắn, dễ đọc, theo (negocio, ngày lịch).
// Tăng số bằng một lệnh FindOneAndUpdate duy nhất ($inc + upsert +
// ReturnDocument After) nên read-increment-write là atomic ở tầng MongoDB.
type SequenceService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.OrderCounter]
}

// NewSequenceService tạo mới SequenceService
func NewSequenceService() (*SequenceService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderCounters)
	if !exist {
		return nil, fmt.Errorf("failed to get order_counters collection: %v", common.ErrNotFound)
	}
	return &SequenceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.OrderCounter](collection),
	}, nil
}

// Next cấp số đơn tiếp theo cho negocio trong ngày cho trước.
// Document bộ đếm được tạo lười ở đơn đầu tiên; số hiển thị quay vòng
// 1..999. Trả về số đã định dạng dạng "#NNN".
func (s *SequenceService) Next(ctx context.Context, businessID primitive.ObjectID, day time.Time) (string, error) {
	key := ordermodels.CounterKey(businessID, day)

	update := basesvc.UpdateData{
		Inc:         map[string]interface{}{"lastNumber": 1},
		SetOnInsert: map[string]interface{}{"createdAt": time.Now().UnixMilli()},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	counter, err := s.FindOneAndUpdate(ctx, bson.M{"_id": key}, update, opts)
	if err != nil {
		return "", err
	}

	return FormatOrderNumber(ordermodels.DisplayNumber(counter.LastNumber)), nil
}

// Allocate cấp số đơn với chính sách suy thoái: nếu bộ đếm lỗi vì bất kỳ
// lý do gì, rơi về một số ngẫu nhiên 1..999 để checkout không bao giờ bị
// chặn bởi sự cố cấp số. Số fallback KHÔNG đảm bảo duy nhất — đánh đổi
// sẵn sàng lấy nhất quán có chủ đích, được ghi log để đối soát sau.
func (s *SequenceService) Allocate(ctx context.Context, businessID primitive.ObjectID) (number string, degraded bool) {
	number, err := s.Next(ctx, businessID, time.Now())
	if err == nil {
		return number, false
	}

	fallback := FormatOrderNumber(rand.Intn(999) + 1)
	logger.GetErrorLogger().WithFields(logrus.Fields{
		"businessId": businessID.Hex(),
		"fallback":   fallback,
		"error":      err.Error(),
	}).Warn("Cấp số đơn thất bại, dùng số fallback ngẫu nhiên")
	return fallback, true
}

// FormatOrderNumber định dạng số hiển thị thành "#NNN" (độn 0 tới 3 chữ số)
func FormatOrderNumber(display int) string {
	return fmt.Sprintf("#%03d", display)
}
