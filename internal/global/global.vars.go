package global

import (
	"catalogo_commerce/config"
	"catalogo_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Catalog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Catalog_CollectionName struct {
	BusinessProfiles  string // Tên collection cho hồ sơ negocio (catálogo público)
	CatalogProducts   string // Tên collection cho sản phẩm của catálogo
	CatalogCategories string // Tên collection cho danh mục sản phẩm
	Orders            string // Tên collection cho đơn hàng
	OrderCounters     string // Tên collection cho bộ đếm số thứ tự theo ngày
	Carts             string // Tên collection cho snapshot giỏ hàng theo session
}

// Các biến toàn cục
var Validate *validator.Validate                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client               // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration  // Cấu hình của server
var MongoDB_ColNames MongoDB_Catalog_CollectionName = *new(MongoDB_Catalog_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
