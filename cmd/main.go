package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prontomx/delivery-service/internal/app"
	"github.com/prontomx/delivery-service/internal/config"
	"github.com/prontomx/delivery-service/internal/handler"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/internal/postgres"
	"github.com/prontomx/delivery-service/internal/redis"
	"github.com/prontomx/delivery-service/internal/repo"
	"github.com/prontomx/delivery-service/internal/service"
	"github.com/prontomx/delivery-service/pkg/cache"
	"github.com/prontomx/delivery-service/pkg/trm"

	_ "github.com/prontomx/delivery-service/docs"
	"github.com/joho/godotenv"
)

// @title           Marketplace Delivery Service API
// @version         1.0
// @description     Order lifecycle, delivery assignment and fees for the marketplace
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := redis.New(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	marketRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	refCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	bus := notifier.NewPublisher(conf.Kafka, rdb)

	catalogService := service.NewCatalogService(logger, marketRepo, refCache, bus)
	orderService := service.NewOrderService(logger, txManager, marketRepo, catalogService, bus)
	reviewService := service.NewReviewService(logger, txManager, marketRepo, bus)
	messageService := service.NewMessageService(logger, marketRepo, bus)

	httpHandler := handler.NewHTTPHandler(
		logger, conf.Auth.JWTSecret,
		orderService, catalogService, reviewService, messageService,
	)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(refCache)
	app.SetClosers(bus)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
