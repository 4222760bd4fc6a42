package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"venuehall/internal/bookings/repository"
	"venuehall/internal/catalog"
	"venuehall/internal/migrations/mongo/validators"
)

var (
	// The compound index serves both the availability scan and the
	// sorted day listing.
	ReservationIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "hall_id", Value: 1},
			{Key: "event_date", Value: 1},
			{Key: "start_time", Value: 1},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	HallIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "venue_id", Value: 1}}},
	}

	// expireAfterSeconds=0 makes Mongo reap each lock at its own
	// expires_at, so a crashed writer never wedges a slot.
	SlotLockIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
)

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("🚀 Running venue hall Mongo migrations on database: %s\n", dbName)

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		repository.ReservationCollection: {
			Indexes:   ReservationIndexes,
			Validator: validators.ReservationValidator,
		},
		catalog.HallCollection: {
			Indexes:   HallIndexes,
			Validator: validators.HallValidator,
		},
		repository.SlotLockCollection: {
			Indexes:   SlotLockIndexes,
			Validator: validators.SlotLockValidator,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	fmt.Println("✅ All migrations applied successfully.")
	return nil
}

// SeedDemoHalls inserts the demo venue's halls when the catalog is
// empty, so a fresh database answers pricing lookups out of the box.
func SeedDemoHalls(ctx context.Context, client *mongo.Client, dbName string) error {
	coll := client.Database(dbName).Collection(catalog.HallCollection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count halls: %w", err)
	}
	if count > 0 {
		fmt.Printf("ℹ️ Halls collection already has %d documents — skipping seed\n", count)
		return nil
	}

	halls := catalog.SeedHalls()
	docs := make([]any, 0, len(halls))
	for _, h := range halls {
		docs = append(docs, h)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed halls: %w", err)
	}
	fmt.Printf("🌱 Seeded %d demo halls\n", len(docs))
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("🆕 Creating collection: %s\n", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
	} else {
		fmt.Printf("ℹ️ Collection %s already exists — updating validator if needed\n", name)
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err := db.RunCommand(ctx, command).Err(); err != nil {
			fmt.Printf("⚠️ Warning: failed updating validator for %s: %v\n", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	coll := db.Collection(name)
	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	fmt.Printf("📚 Ensured indexes for %s\n", name)
	return nil
}
