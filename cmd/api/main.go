package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pizzacraft/backend/internal/catalog"
	"github.com/pizzacraft/backend/internal/config"
	"github.com/pizzacraft/backend/internal/httpx"
	kafkax "github.com/pizzacraft/backend/internal/kafka"
	"github.com/pizzacraft/backend/internal/orders"
	"github.com/pizzacraft/backend/internal/postgres"
	"github.com/pizzacraft/backend/internal/redisx"
	"github.com/pizzacraft/backend/internal/stock"
	"github.com/pizzacraft/backend/internal/users"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Repos
	catalogRepo := &catalog.Repo{DB: db}
	orderRepo := &orders.Repo{DB: db}
	userRepo := &users.Repo{DB: db}
	sessions := &users.Sessions{Redis: rdb}

	if cfg.SeedCatalog {
		if err := catalog.Seed(ctx, catalogRepo); err != nil {
			log.Fatalf("catalog seed: %v", err)
		}
		if err := userRepo.SeedAdmin(ctx); err != nil {
			log.Fatalf("admin seed: %v", err)
		}
	}

	// Kafka producers
	createdProd := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	createdProd.Start(ctx)
	lowStockProd := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicLowStock, 1024)
	lowStockProd.Start(ctx)

	// Services
	stockSvc := &stock.Service{
		Store:       catalogRepo,
		Producer:    lowStockProd,
		Threshold:   cfg.StockThreshold,
		ServiceName: cfg.ServiceName,
	}
	orderSvc := &orders.Service{
		Store:        orderRepo,
		Stock:        stockSvc,
		Producer:     createdProd,
		ServiceName:  cfg.ServiceName,
		StrictStatus: cfg.StrictStatus,
	}

	// Router & handlers
	router := httpx.NewRouter()
	(&httpx.AuthHandler{Users: userRepo, Sessions: sessions}).Register(router)
	(&httpx.OrdersHandler{Service: orderSvc, Redis: rdb, Sessions: sessions}).Register(router)
	(&httpx.InventoryHandler{Catalog: catalogRepo, Stock: stockSvc, Sessions: sessions}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	createdProd.Close()
	lowStockProd.Close()
	cancel()
	createdProd.WaitClosed()
	lowStockProd.WaitClosed()
}
