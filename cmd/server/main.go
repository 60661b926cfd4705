package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace-service/internal/config"
	"marketplace-service/internal/controllers/http"
	mmysql "marketplace-service/internal/infra/mysql"
	"marketplace-service/internal/infra/rabbitmq"
	mysqlrepo "marketplace-service/internal/repository/mysql"
	"marketplace-service/internal/services"
	"marketplace-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := mmysql.Open(cfg)
	if err != nil {
		logger.Fatal("db: connect", zap.Error(err))
	}

	users := mysqlrepo.NewUserRepository(db)
	businesses := mysqlrepo.NewBusinessRepository(db)
	giftOrders := mysqlrepo.NewGiftOrderRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("redis: ping", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancelPing()

	sessions := session.NewStore(redisClient, cfg.SessionTTL)
	resolver := session.NewResolver(sessions, users)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{Logger: logger}
	if cfg.RabbitMQURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil {
			logger.Fatal("failed to init publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Warn("RABBITMQ_URL not set, domain events will be dropped")
	}

	var giftOpts []services.GiftServiceOption
	if !cfg.LenientItems {
		giftOpts = append(giftOpts, services.WithStrictItems())
	}
	gifts := services.NewGiftService(businesses, giftOrders, publisher, logger, giftOpts...)
	moderation := services.NewModerationService(users, businesses, sessions, publisher, logger)

	handler := http.NewHandler(gifts, moderation, resolver, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), http.RequestID(), http.Logger(logger))

	handler.RegisterRoutes(r)

	srv := &nethttp.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting marketplace service", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
