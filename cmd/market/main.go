package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/bargain-market/internal/market/bootstrap"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
	"github.com/Lexv0lk/bargain-market/internal/pkg/env"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
)

const (
	networkProtocol = "tcp"
	defaultLogLevel = "info"
)

var errMissingJwtSecret = errors.New("JWT_SECRET must be set")

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.NewStdoutLogger(slog.LevelInfo)

	if err := env.LoadDotEnv(".env"); err != nil {
		defaultLogger.Error("failed to load .env file", "error", err.Error())
		return
	}

	logLevel := defaultLogLevel
	env.TrySetFromEnv(env.EnvLogLevel, &logLevel)

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		defaultLogger.Error("invalid log level", "level", logLevel, "error", err.Error())
		return
	}
	defaultLogger = logging.NewStdoutLogger(level)

	cfg, err := loadConfig()
	if err != nil {
		defaultLogger.Error("invalid configuration", "error", err.Error())
		return
	}

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		defaultLogger.Error("failed to listen", "error", err.Error())
		return
	}

	app := bootstrap.NewMarketApp(cfg, defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		defaultLogger.Error("market stopped with error", "error", err.Error())
	}
}

func loadConfig() (bootstrap.MarketConfig, error) {
	cfg := bootstrap.MarketConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "bargain_market_db",
			SSlEnabled: false,
		},
		RetryPolicy:  database.DefaultRetryPolicy,
		HttpPort:     ":8080",
		JwtSecret:    "",
		AmqpExchange: "market_events",
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvRedisAddr, &cfg.RedisAddr)
	env.TrySetFromEnv(env.EnvRedisPassword, &cfg.RedisPassword)
	env.TrySetFromEnv(env.EnvAmqpURL, &cfg.AmqpURL)
	env.TrySetFromEnv(env.EnvAmqpExchange, &cfg.AmqpExchange)

	if err := env.TrySetIntFromEnv(env.EnvTxMaxAttempts, &cfg.RetryPolicy.MaxAttempts); err != nil {
		return bootstrap.MarketConfig{}, err
	}
	if err := env.TrySetDurationFromEnv(env.EnvTxInitialInterval, &cfg.RetryPolicy.InitialInterval); err != nil {
		return bootstrap.MarketConfig{}, err
	}
	if err := env.TrySetDurationFromEnv(env.EnvTxMaxInterval, &cfg.RetryPolicy.MaxInterval); err != nil {
		return bootstrap.MarketConfig{}, err
	}

	if cfg.JwtSecret == "" {
		return bootstrap.MarketConfig{}, errMissingJwtSecret
	}

	return cfg, nil
}
