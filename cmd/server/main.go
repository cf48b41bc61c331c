package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/orrynara/timebank/internal/config"
	"github.com/orrynara/timebank/internal/handler"
	"github.com/orrynara/timebank/internal/queue"
	"github.com/orrynara/timebank/internal/repository"
	"github.com/orrynara/timebank/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env; real env vars win

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Build the catalog once, then the ledger on top of it.
	store := repository.NewStore(repository.SeedCatalog())
	if cfg.SeedDemo {
		if err := store.SeedDemoUsers(); err != nil {
			log.Fatalf("seed demo users: %v", err)
		}
		if err := store.SeedDemoBookings(); err != nil {
			log.Fatalf("seed demo bookings: %v", err)
		}
	}

	rdb := config.NewRedisClient(cfg)
	if rdb == nil && cfg.RedisAddr != "" {
		log.Printf("redis unreachable at %s; cache and rate limit disabled", cfg.RedisAddr)
	}

	if cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e, handler.New(store, cfg.AMQPURL), cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
