package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvJWTSecret = "JWT_SECRET"

	EnvAvailabilityRateLimitMax    = "AVAILABILITY_RATE_LIMIT_MAX"
	EnvAvailabilityRateLimitWindow = "AVAILABILITY_RATE_LIMIT_WINDOW"
	EnvBookingRateLimitMax         = "BOOKING_RATE_LIMIT_MAX"
	EnvBookingRateLimitWindow      = "BOOKING_RATE_LIMIT_WINDOW"

	EnvDefaultPricePerHour = "DEFAULT_PRICE_PER_HOUR"
	EnvSlotLockTTL         = "SLOT_LOCK_TTL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"
)
