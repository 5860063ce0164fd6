//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ethnicshop.GO/api"
	_ "ethnicshop.GO/api/cart"
	_ "ethnicshop.GO/api/catalog"
	_ "ethnicshop.GO/api/graphql"
	_ "ethnicshop.GO/api/order"
	_ "ethnicshop.GO/api/review"
	_ "ethnicshop.GO/api/wishlist"
	"ethnicshop.GO/app"
	"ethnicshop.GO/checkout"
	"ethnicshop.GO/config"
	"ethnicshop.GO/core/auth"
	"ethnicshop.GO/core/logger"
	"ethnicshop.GO/core/metrics"
	coremw "ethnicshop.GO/core/middleware"
	_ "ethnicshop.GO/custom"
	"ethnicshop.GO/events"
	"ethnicshop.GO/search"
	catalogService "ethnicshop.GO/service/catalog"
	"ethnicshop.GO/store"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       config.AppConfig.LogLevel,
		Environment: os.Getenv("APP_ENV"),
		ServiceName: config.AppConfig.AppName,
	}); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	zlog := logger.GetLogger()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, query caching falls back to in-process cache."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if n, err := catalogService.EnsureSeeded(db); err != nil {
		log.Printf("catalog seed check failed: %v", err)
	} else if n > 0 {
		log.Printf("Seeded catalog database with %d products.", n)
	}
	cat := catalogService.LoadOrSeed(db)
	log.Printf("Catalog loaded: %d products.", cat.Len())

	es, err := search.NewClient(zlog)
	if err != nil {
		log.Printf("Elasticsearch not reachable, full-text search disabled: %v", err)
		es = nil
	}

	storeOpts := store.Options{
		StateFile: config.StateFilePath(),
		Logger:    zlog,
	}
	producer, err := events.NewProducerFromEnv()
	if err != nil {
		log.Printf("Kafka not configured, store events disabled: %v", err)
	} else if producer != nil {
		storeOpts.Publisher = producer
		defer producer.Close()
	}
	st := store.New(storeOpts)

	a := &app.App{
		Catalog:  cat,
		Store:    st,
		Checkout: checkout.NewService(st, config.CheckoutDelay(), zlog),
		DB:       db,
		ES:       es,
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(coremw.RequestIDMiddleware())
	e.Use(metrics.NewHTTPMetrics(config.AppConfig.AppName).Middleware())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, a)
	api.ApplyRoutes(e, a)

	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
