package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackline-be/internal/asset"
	"trackline-be/internal/config"
	"trackline-be/internal/db"
	"trackline-be/internal/device"
	"trackline-be/internal/httpx"
	"trackline-be/internal/logger"
	"trackline-be/internal/middleware"
	"trackline-be/internal/order"
	"trackline-be/internal/tracking"
	"trackline-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	storage := asset.NewS3Gateway(asset.S3Config{
		Endpoint:  cfg.StorageEndpoint,
		Region:    cfg.StorageRegion,
		Bucket:    cfg.StorageBucket,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
	})

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	deviceRepo := device.NewRepository(database)
	deviceSvc := device.NewService(deviceRepo)

	orderRepo := order.NewRepository(database)
	trackingRepo := tracking.NewRepository(database)
	orderSvc := order.NewService(orderRepo, deviceRepo, trackingRepo)
	trackingSvc := tracking.NewService(trackingRepo, orderRepo)

	assetRepo := asset.NewRepository(database)
	assetSvc := asset.NewService(assetRepo, storage)

	router := httpx.NewRouter(httpx.RouterDeps{
		Gate:    middleware.NewGate(userSvc),
		Devices: httpx.NewDeviceHandler(deviceSvc),
		Orders:  httpx.NewOrderHandler(orderSvc, trackingSvc),
		Users:   httpx.NewUserHandler(userSvc, orderSvc),
		Assets:  httpx.NewAssetHandler(assetSvc),
		Access:  httpx.NewAccessHandler(orderSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
