package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo validator dùng chung và đăng ký các custom
// validator của catálogo
func InitValidator() {
	v := validator.New()

	// catalog_slug: chữ thường, số và dấu gạch ngang, không rỗng
	v.RegisterValidation("catalog_slug", func(fl validator.FieldLevel) bool {
		slug := fl.Field().String()
		if slug == "" {
			return false
		}
		for _, r := range slug {
			if !(r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				return false
			}
		}
		return !strings.HasPrefix(slug, "-") && !strings.HasSuffix(slug, "-")
	})

	Validate = v
}
