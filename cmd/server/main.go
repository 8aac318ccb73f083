package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/caninesocial/canine-convention/internal/config"
	"github.com/caninesocial/canine-convention/internal/database"
	"github.com/caninesocial/canine-convention/internal/handler"
	"github.com/caninesocial/canine-convention/internal/middleware"
	"github.com/caninesocial/canine-convention/internal/queue"
	"github.com/caninesocial/canine-convention/internal/repository"
	"github.com/caninesocial/canine-convention/internal/router"
	queue_publisher "github.com/caninesocial/canine-convention/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the API runs uncached and unlimited.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, caching and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	personRepo := repository.NewPersonRepo(db)
	dogRepo := repository.NewDogRepo(db)
	eventRepo := repository.NewEventRepo(db, cfg.EventCapacity)

	persons := handler.NewPersonHandler(personRepo, dogRepo)
	dogs := handler.NewDogHandler(dogRepo)
	events := handler.NewEventHandler(eventRepo, dogRepo, queue_publisher.PublishEventJoined)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	cached := middleware.NewResponseCache(cacheCfg, rdb)
	invalidate := middleware.NewCacheInvalidator(cacheCfg, rdb)

	router.RegisterRoutes(e)
	router.RegisterPersons(e, persons, cached, invalidate)
	router.RegisterDogs(e, dogs, cached, invalidate)
	router.RegisterEvents(e, events, cached, invalidate)

	// The join consumer tails event.joined and writes confirmations to
	// logs/joins.log.  Opt-in so dev setups without RabbitMQ stay quiet.
	if v := os.Getenv("ENABLE_JOIN_CONSUMER"); v == "1" || v == "true" {
		go func() {
			if err := queue.StartJoinConsumer(); err != nil {
				log.Printf("join consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// Block until asked to stop, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
