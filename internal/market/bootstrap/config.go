package bootstrap

import "github.com/Lexv0lk/bargain-market/internal/pkg/database"

type MarketConfig struct {
	DbSettings  database.PostgresSettings
	RetryPolicy database.RetryPolicy
	HttpPort    string
	JwtSecret   string

	// Idempotency is disabled when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string

	// Receipt events are not published when AmqpURL is empty.
	AmqpURL      string
	AmqpExchange string
}
