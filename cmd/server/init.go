package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"catalogo_commerce/config"
	cartmodels "catalogo_commerce/internal/api/cart/models"
	catalogmodels "catalogo_commerce/internal/api/catalog/models"
	ordermodels "catalogo_commerce/internal/api/order/models"
	"catalogo_commerce/internal/database"
	"catalogo_commerce/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.BusinessProfiles = "business_profiles"
	global.MongoDB_ColNames.CatalogProducts = "catalog_products"
	global.MongoDB_ColNames.CatalogCategories = "catalog_categories"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.OrderCounters = "order_counters"
	global.MongoDB_ColNames.Carts = "carts"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: catalog_slug, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BusinessProfiles), catalogmodels.BusinessProfile{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CatalogProducts), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CatalogCategories), catalogmodels.CatalogCategory{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.OrderCounters), ordermodels.OrderCounter{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Carts), cartmodels.Cart{})
}
