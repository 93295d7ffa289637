// Package worker chứa các background worker của catálogo.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	cartsvc "catalogo_commerce/internal/api/cart/service"
	"catalogo_commerce/internal/global"
	"catalogo_commerce/internal/logger"
)

// CartCleaner dọn định kỳ các phiên giỏ không hoạt động quá TTL:
// gỡ khỏi registry trong bộ nhớ và xóa snapshot MongoDB. Mỗi phiên
// trình duyệt có giỏ riêng nên giỏ bỏ rơi chỉ chiếm chỗ, không ai
// quay lại dùng.
type CartCleaner struct {
	cartService *cartsvc.CartService
	interval    time.Duration
	ttl         time.Duration
}

// NewCartCleaner tạo worker dọn giỏ với chu kỳ và TTL lấy từ cấu hình
func NewCartCleaner() (*CartCleaner, error) {
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, err
	}

	interval := 300 * time.Second
	ttl := 120 * time.Minute
	if cfg := global.MongoDB_ServerConfig; cfg != nil {
		if cfg.CartCleanupSec > 0 {
			interval = time.Duration(cfg.CartCleanupSec) * time.Second
		}
		if cfg.CartTTLMinutes > 0 {
			ttl = time.Duration(cfg.CartTTLMinutes) * time.Minute
		}
	}

	return &CartCleaner{
		cartService: cartService,
		interval:    interval,
		ttl:         ttl,
	}, nil
}

// Start chạy vòng dọn cho tới khi context bị hủy. Mỗi tick được bọc
// recover riêng để một lần dọn lỗi không giết cả worker.
func (w *CartCleaner) Start(ctx context.Context) {
	log := logger.GetAppLogger()
	log.WithFields(logrus.Fields{
		"interval": w.interval.String(),
		"ttl":      w.ttl.String(),
	}).Info("Cart cleaner started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Cart cleaner stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *CartCleaner) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"panic": r,
			}).Error("Cart cleaner tick panic")
		}
	}()

	tickCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	purged, err := w.cartService.PurgeExpired(tickCtx, w.ttl)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Warn("Dọn snapshot giỏ hết hạn thất bại")
		return
	}
	if purged > 0 {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"purged": purged,
		}).Info("Đã dọn các phiên giỏ hết hạn")
	}
}
