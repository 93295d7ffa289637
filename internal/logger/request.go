package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry đã gắn ngữ cảnh request để trace log theo
// X-Request-ID xuyên suốt middleware và handler
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": c.Get("X-Request-ID"),
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
