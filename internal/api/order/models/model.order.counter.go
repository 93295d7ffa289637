package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderCounter là bộ đếm số đơn theo (negocio, ngày). Document được tạo
// lười khi có đơn đầu tiên của ngày; LastNumber tăng atomic bằng $inc nên
// hai checkout đồng thời không bao giờ nhận cùng một số.
type OrderCounter struct {
	ID         string `json:"id" bson:"_id"`                // "<businessHex>:orders-<YYYY-MM-DD>"
	LastNumber int64  `json:"lastNumber" bson:"lastNumber"` // Số thứ tự cuối đã cấp (tăng đơn điệu)
	CreatedAt  int64  `json:"createdAt" bson:"createdAt"`   // Thời gian tạo
	UpdatedAt  int64  `json:"updatedAt" bson:"updatedAt"`   // Lần cấp số cuối
}

// CounterKey dựng khóa bộ đếm cho một negocio và một ngày lịch
func CounterKey(businessID primitive.ObjectID, day time.Time) string {
	return fmt.Sprintf("%s:orders-%s", businessID.Hex(), day.Format("2006-01-02"))
}

// DisplayNumber chuyển số đếm đơn điệu thành số hiển thị 1..999:
// quá 999 đơn một ngày thì quay vòng về 1 (trùng số được chấp nhận
// như một giới hạn đã biết)
func DisplayNumber(lastNumber int64) int {
	return int((lastNumber-1)%999) + 1
}
