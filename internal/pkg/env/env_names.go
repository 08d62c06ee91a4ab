package env

const (
	EnvHttpPort = "HTTP_PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvTxMaxAttempts     = "TX_MAX_ATTEMPTS"
	EnvTxInitialInterval = "TX_RETRY_INITIAL_INTERVAL"
	EnvTxMaxInterval     = "TX_RETRY_MAX_INTERVAL"

	EnvJwtSecret = "JWT_SECRET"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"

	EnvAmqpURL      = "AMQP_URL"
	EnvAmqpExchange = "AMQP_EXCHANGE"
)
