package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"catalogo_commerce/internal/api/events"
	"catalogo_commerce/internal/global"
	"catalogo_commerce/internal/logger"
)

// InitEvents đăng ký các handler phản ứng với thay đổi dữ liệu qua CRUD.
// Hiện tại: ghi audit trail cho mọi thay đổi trên collection đơn hàng,
// phục vụ đối soát số đơn (nhất là các số fallback không đảm bảo duy nhất).
func InitEvents() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Orders {
			return
		}
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Info("Order data changed")
	})
}
