package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pizzacraft/backend/internal/config"
	kafkax "github.com/pizzacraft/backend/internal/kafka"
	"github.com/pizzacraft/backend/internal/notify"
	"github.com/pizzacraft/backend/internal/orders"
	"github.com/pizzacraft/backend/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (event dedup)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	var gen notify.Generator = notify.TemplateGenerator{}
	if cfg.AlertURL != "" {
		gen = &notify.HTTPGenerator{URL: cfg.AlertURL}
	}

	svc := &notify.Service{
		Dedup:     &notify.RedisDedup{Client: rdb, Service: "notifier"},
		Generator: gen,
	}

	group := getenv("NOTIFIER_GROUP", "notifier-svc")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicLowStock, workers)

	go func() {
		log.Printf("notifier consumer started: group=%s topic=%s workers=%d", group, orders.TopicLowStock, workers)
		if err := cons.Start(ctx, svc.HandleLowStock); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down notifier...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
