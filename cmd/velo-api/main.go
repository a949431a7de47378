// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"velo/internal/config"
	httptransport "velo/internal/http"
	"velo/internal/infra"
	"velo/internal/logger"
	"velo/internal/modules/bike"
	"velo/internal/modules/charging"
	"velo/internal/modules/city"
	"velo/internal/modules/parkzone"
	"velo/internal/modules/pricing"
	"velo/internal/modules/ride"
	"velo/internal/modules/station"
	"velo/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		zlog.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	citySvc := city.NewService(city.NewStore(dbPool))
	userSvc := user.NewService(user.NewStore(dbPool))
	stationSvc := station.NewService(station.NewStore(dbPool))

	zoneCache := parkzone.NewCache(redisClient, cfg.Cache.ZoneTTL)
	zoneSvc := parkzone.NewService(parkzone.NewStore(dbPool), zoneCache)

	pricingSvc := pricing.NewService(pricing.NewStore(dbPool))

	bikeCache := bike.NewCache(redisClient, cfg.Cache.BikePosTTL)
	bikeSvc := bike.NewService(bike.NewStore(dbPool), bikeCache)

	chargingSvc := charging.NewService(charging.NewStore(dbPool))
	rideSvc := ride.NewService(ride.NewStore(dbPool))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		City:        citySvc,
		User:        userSvc,
		Bike:        bikeSvc,
		Station:     stationSvc,
		ParkZone:    zoneSvc,
		Pricing:     pricingSvc,
		Ride:        rideSvc,
		Charging:    chargingSvc,
		Logger:      zlog,
		Environment: cfg.Environment,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("bike server listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("http server", zap.Error(err))
	}
}
