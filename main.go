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

	"treehouse-hotel/config"
	"treehouse-hotel/controllers"
	"treehouse-hotel/jobs"
	"treehouse-hotel/repository"
	"treehouse-hotel/routes"
	"treehouse-hotel/services"
	"treehouse-hotel/services/logger"
	"treehouse-hotel/services/notification"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// @title       Treehouse Hotel API
// @version     1.0
// @description Hotel booking administration backend.
// @BasePath    /
func main() {
	config.LoadEnv()
	cfg := config.Load()

	appLog := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	db, err := config.ConnectDB(cfg.DB, cfg.Env, appLog.Named("db"))
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}
	appLog.Info("connected to %s database", cfg.DB.Driver)

	var (
		cache  services.BookingCache = services.NopBookingCache{}
		locker services.RoomLocker   = services.NewLocalRoomLocker()
	)
	rdb, err := config.ConnectRedis(context.Background(), cfg.Redis)
	switch {
	case err != nil:
		appLog.Warn("redis unavailable, falling back to in-process cache/lock: %v", err)
	case rdb != nil:
		defer rdb.Close()
		cache = services.NewRedisBookingCache(rdb, cfg.CacheTTL)
		locker = services.NewRedisRoomLocker(rdb)
		appLog.Info("redis connected at %s", cfg.Redis.Addr)
	default:
		appLog.Info("REDIS_ADDR not set, using in-process cache/lock")
	}

	m := melody.New()

	roomService := services.NewRoomService(services.RoomServiceOptions{
		Rooms:  repository.NewRoomRepository(db),
		Cache:  cache,
		Logger: appLog.Named("room"),
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings: repository.NewBookingRepository(db),
		Rooms:    roomService,
		Locker:   locker,
		Cache:    cache,
		Notifier: notification.NewMelodyService(m),
		Logger:   appLog.Named("booking"),
	})

	router := config.NewRouter(cfg)
	config.InitWebSocket(router, m)
	routes.SetupRoutes(router,
		controllers.NewBookingController(bookingService, roomService),
		controllers.NewRoomController(roomService),
		appLog.Named("http"),
	)

	c := cron.New()
	if err := jobs.InitCronJobs(c, cfg.ArrivalsCron, bookingService, appLog.Named("jobs")); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLog.Info("server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	m.Close()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("server forced to shutdown: %v", err)
	}
	appLog.Info("server stopped")
}
