package config

import "time"

const (
	// Empty by default: without a store the engine runs in demo mode and
	// serves clearly-labeled synthetic results.
	DefaultMongoURI          = ""
	DefaultMongoDatabaseName = "venuehall"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultAvailabilityRateLimitMax    = 100
	DefaultAvailabilityRateLimitWindow = 15 * time.Minute
	DefaultBookingRateLimitMax         = 20
	DefaultBookingRateLimitWindow      = 1 * time.Hour

	// Hourly rate used when a hall is missing from the catalog.
	DefaultPricePerHour = 150.0

	DefaultSlotLockTTL = 10 * time.Second

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaTopic = "reservation-events"

	DefaultLogLevel = "info"
)
