package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dinehall/restaurant-reservation/internal/config"
	"github.com/dinehall/restaurant-reservation/internal/database"
	"github.com/dinehall/restaurant-reservation/internal/handler"
	"github.com/dinehall/restaurant-reservation/internal/middleware"
	"github.com/dinehall/restaurant-reservation/internal/queue"
	"github.com/dinehall/restaurant-reservation/internal/repository"
	"github.com/dinehall/restaurant-reservation/internal/router"
	"github.com/dinehall/restaurant-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded configuration from .env")
	}
	cfg := config.Load()
	handler.ExposeErrorDetail = !cfg.IsProduction()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema setup failed: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	tables := repository.NewTableRepo(db)
	reservations := repository.NewReservationRepo(db)

	events := queue.NewPublisher()
	availability := service.NewAvailabilityService(tables, reservations)
	lifecycle := service.NewLifecycleService(tables, reservations, events)

	// Background consumer mirrors reservation events into the audit log.
	go queue.StartReservationConsumer()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and response caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	auth := handler.NewAuthHandler(cfg, users, tokens)
	table := handler.NewTableHandler(tables, reservations, availability)
	reservation := handler.NewReservationHandler(lifecycle, reservations)
	staff := handler.NewStaffHandler(cfg, users)
	analytics := handler.NewAnalyticsHandler(tables, reservations)
	dashboard := handler.NewDashboardHandler(tables, reservations)
	seed := handler.NewSeedHandler(cfg, users, tables, reservations)

	router.RegisterRoutes(e, seed)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterTables(e, table, cfg.JWTSecret)
	router.RegisterReservations(e, reservation, cfg.JWTSecret)
	router.RegisterStaff(e, staff, cfg.JWTSecret)
	router.RegisterReports(e, analytics, dashboard, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
