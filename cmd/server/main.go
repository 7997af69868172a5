package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	"github.com/shopdeck/storefront/internal/config"
	"github.com/shopdeck/storefront/internal/events"
	"github.com/shopdeck/storefront/internal/httpserver"
	"github.com/shopdeck/storefront/internal/logging"
	"github.com/shopdeck/storefront/internal/metrics"
	"github.com/shopdeck/storefront/internal/middleware/auth"
	loggingmw "github.com/shopdeck/storefront/internal/middleware/logging"
	"github.com/shopdeck/storefront/internal/repo"
	"github.com/shopdeck/storefront/internal/search"
	"github.com/shopdeck/storefront/internal/service"
	"github.com/shopdeck/storefront/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	db, err := store.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	if cfg.DatabaseURL != "" {
		logger.Info("using cloud database (postgres)")
	} else {
		logger.Info("using local database (sqlite)", "path", cfg.SQLitePath)
	}

	r := &repo.GormRepo{DB: db}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if producer != nil {
		defer producer.Close()
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers)
	}

	var (
		searchHTTP *httpserver.SearchHTTP
		indexer    *search.Indexer
	)
	if cfg.SearchEnabled() {
		esClient, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("connect elasticsearch: %v", err)
		}
		indexer = &search.Indexer{ES: esClient, Index: search.ProductIndex}
		searchHTTP = &httpserver.SearchHTTP{ES: esClient, Index: search.ProductIndex}
		logger.Info("product search enabled", "url", cfg.ESURL)
	}

	guard := &auth.Guard{Repo: r, JWTSecret: cfg.JWTSecret}
	deps := &httpserver.Deps{
		Guard:    guard,
		Auth:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret}, Producer: producer},
		Products: &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: r}, Producer: producer, Indexer: indexer},
		Cart:     &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		Wishlist: &httpserver.WishlistHTTP{Svc: &service.WishlistService{Repo: r}, Producer: producer},
		Search:   searchHTTP,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(
		ecM.Recover(),
		ecM.RequestID(),
		ecM.CORS(),
		loggingmw.RequestLogger(logger),
		metrics.Middleware(),
	)
	httpserver.Register(e, deps)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.ServerPort)))
}
