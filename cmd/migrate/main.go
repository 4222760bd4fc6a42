package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mongoMigration "venuehall/internal/migrations/mongo"
	"venuehall/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	seed := flag.Bool("seed", false, "seed demo halls after migrating")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	if cfg.DemoMode() {
		log.Fatal("MONGO_URI is required to run migrations")
	}

	cfg.SetMongo()
	cfg.Log.Info("Starting Mongo migration job")
	defer cfg.GracefulShutdown()

	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if *seed {
		if err := mongoMigration.SeedDemoHalls(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	fmt.Println("Migration completed successfully.")
}
