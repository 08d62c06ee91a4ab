package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Lexv0lk/bargain-market/internal/market/application"
	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	httpwrap "github.com/Lexv0lk/bargain-market/internal/market/infrastructure/http"
	"github.com/Lexv0lk/bargain-market/internal/market/infrastructure/postgres"
	"github.com/Lexv0lk/bargain-market/internal/market/infrastructure/rabbitmq"
	redisrepo "github.com/Lexv0lk/bargain-market/internal/market/infrastructure/redis"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
	"github.com/Lexv0lk/bargain-market/internal/pkg/jwt"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/Lexv0lk/bargain-market/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

const (
	shutdownTimeout = 5 * time.Second
)

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server      *http.Server
	dbpool      *pgxpool.Pool
	redisClient *redis.Client
	amqpConn    *amqp.Connection
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run migrates the database, wires the purchase service and serves HTTP on
// lis until ctx is done or the server fails.
func (a *MarketApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetURL()

	err := database.MigrateDatabase(ctx, dbURL, migrations.FS, logger)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, a.cfg.RetryPolicy, logger)
	receiptsRepository := postgres.NewReceiptsRepository()

	receiptPublisher, err := a.connectPublisher()
	if err != nil {
		return err
	}

	purchaseCase := application.NewPurchaseCase(
		postgres.NewUsersRepository(),
		postgres.NewProductsRepository(),
		receiptsRepository,
		receiptPublisher,
		txManager,
		logger,
	)
	receiptCase := application.NewReceiptCase(receiptsRepository, dbpool)

	router := httpwrap.NewRouter(httpwrap.RouterDeps{
		PurchaseHandler:  httpwrap.NewPurchaseHandler(purchaseCase, receiptCase, logger),
		TokenParser:      jwt.NewJWTTokenParser(),
		JwtSecret:        a.cfg.JwtSecret,
		IdempotencyStore: a.connectIdempotencyStore(),
		Logger:           logger,
	})

	a.server = &http.Server{
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String())

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *MarketApp) connectPublisher() (domain.ReceiptPublisher, error) {
	if a.cfg.AmqpURL == "" {
		a.logger.Warn("amqp url is not set, receipt events are disabled")
		return nil, nil
	}

	conn, ch, err := rabbitmq.Connect(a.cfg.AmqpURL, a.cfg.AmqpExchange)
	if err != nil {
		return nil, err
	}
	a.amqpConn = conn

	return rabbitmq.NewReceiptPublisher(ch, a.cfg.AmqpExchange), nil
}

func (a *MarketApp) connectIdempotencyStore() domain.IdempotencyRepository {
	if a.cfg.RedisAddr == "" {
		a.logger.Warn("redis address is not set, idempotency keys are disabled")
		return nil
	}

	a.redisClient = redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
	})

	return redisrepo.NewIdempotencyRepository(a.redisClient)
}

func (a *MarketApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
	}

	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Error("failed to close rabbitmq connection", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("market stopped")
}
