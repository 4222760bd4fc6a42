package main

import (
	"venuehall/internal/bookings/handler"
	"venuehall/internal/bookings/repository"
	"venuehall/internal/bookings/service"
	"venuehall/internal/bookings/validator"
	"venuehall/internal/catalog"
	"venuehall/pkg/app"
	"venuehall/pkg/config"
	"venuehall/pkg/kafka"
	"venuehall/pkg/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting venue hall booking service")
	serverApp := app.NewApplication(cfg)
	bookingService := initServices(cfg, serverApp)

	limiter := middleware.NewRouteLimiter(serverApp.Gate(), cfg.Log)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, limiter, cfg))
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	if cfg.DemoMode() {
		cfg.Log.Info("MONGO_URI not set, running in demo mode: responses are synthetic and nothing is persisted")
		return service.NewDemoBookingService(
			catalog.NewStaticHallCatalog(catalog.SeedHalls()...),
			bookingValidator,
			cfg,
		)
	}

	cfg.SetMongo()

	var events service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
		}
		serverApp.AddCloser(producer.Close)
		events = producer
		cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaTopic)
	}

	bookingService := service.NewBookingService(
		repository.NewMongoReservationRepository(cfg),
		repository.NewMongoSlotLocker(cfg),
		catalog.NewMongoHallCatalog(cfg),
		bookingValidator,
		events,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
