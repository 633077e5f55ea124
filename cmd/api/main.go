package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/printshop/catalog-api/internal/authx"
	"github.com/printshop/catalog-api/internal/config"
	"github.com/printshop/catalog-api/internal/events"
	"github.com/printshop/catalog-api/internal/httpx"
	kafkax "github.com/printshop/catalog-api/internal/kafka"
	"github.com/printshop/catalog-api/internal/redisx"
	"github.com/printshop/catalog-api/internal/storage/mongox"
	"github.com/printshop/catalog-api/internal/version"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	log.WithField("version", version.String()).Info("starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Document store
	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := mongox.Connect(connectCtx, cfg.MongoURI, cfg.MongoDBName)
	connectCancel()
	if err != nil {
		log.WithError(err).Fatal("mongo connect")
	}
	defer disconnect(db)

	products := mongox.NewProductRepository(db)
	orders := mongox.NewOrderRepository(db)

	// Product read cache, optional
	var cache *redisx.ProductCache
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		cache = redisx.NewProductCache(rdb)
	}

	// Order event producer, optional
	var producer *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderCreated, 1024)
		producer.Start(context.Background())
	}

	gate := authx.NewTokenVerifier([]byte(cfg.AuthTokenSecret))
	router := httpx.NewRouter(log, gate)

	router.Method(http.MethodGet, "/health", httpx.NewHealthHandler(version.Short(), func(ctx context.Context) error {
		return mongox.CheckHealth(ctx, db)
	}))

	ph := &httpx.ProductsHandler{Repo: products, Cache: cache, Log: log}
	ph.Register(router)
	oh := &httpx.OrdersHandler{Repo: orders, Producer: producer, Log: log, Service: cfg.ServiceName}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}
}

func disconnect(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = db.Client().Disconnect(ctx)
}
