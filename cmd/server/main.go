package main

import (
	"context"
	"crypto/tls"
	"net"
	"os"
	"os/signal"
	"syscall"

	"catalogo_commerce/internal/global"
	"catalogo_commerce/internal/logger"
	"catalogo_commerce/internal/worker"
)

// initLogger khởi tạo hệ thống logging trước mọi thành phần khác
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	logger.GetAppLogger().Info("Logger initialized successfully")
}

// main_thread khởi động HTTP server, chặn cho đến khi server dừng
func main_thread() {
	app := InitFiberApp()
	cfg := global.MongoDB_ServerConfig
	appLogger := logger.GetAppLogger()

	if cfg.EnableTLS {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			appLogger.Fatalf("Failed to load TLS certificate: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		ln, err := net.Listen("tcp", cfg.Address)
		if err != nil {
			appLogger.Fatalf("Failed to listen on %s: %v", cfg.Address, err)
		}

		appLogger.Infof("Server starting with TLS on %s", cfg.Address)
		if err := app.Listener(tls.NewListener(ln, tlsConfig)); err != nil {
			appLogger.Fatalf("Server stopped with error: %v", err)
		}
		return
	}

	appLogger.Infof("Server starting on %s", cfg.Address)
	if err := app.Listen(cfg.Address); err != nil {
		appLogger.Fatalf("Server stopped with error: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()
	InitEvents()

	appLogger := logger.GetAppLogger()

	// Context điều khiển vòng đời worker nền, hủy khi nhận tín hiệu dừng
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLogger.Infof("Received signal %v, shutting down background workers", sig)
		cancel()
	}()

	// Worker dọn giỏ hàng hết hạn chạy nền, không được phép làm sập server
	go func() {
		defer func() {
			if r := recover(); r != nil {
				appLogger.Errorf("Cart cleanup worker panic: %v", r)
			}
		}()

		cleaner, err := worker.NewCartCleaner()
		if err != nil {
			appLogger.Errorf("Failed to create cart cleanup worker: %v", err)
			return
		}
		cleaner.Start(ctx)
	}()

	main_thread()
}
