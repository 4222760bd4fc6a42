// Package catalog exposes hall reference data to the booking engine.
// The engine only reads; hall management belongs to another system.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"venuehall/pkg/config"
	"venuehall/pkg/model"
)

const HallCollection = "Halls"

var ErrHallNotFound = errors.New("hall not found")

type HallCatalog interface {
	HallByID(ctx context.Context, hallID string) (*model.Hall, error)
}

type mongoHallCatalog struct {
	collection *mongo.Collection
}

func NewMongoHallCatalog(cfg *config.Config) HallCatalog {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHallCatalog{
		collection: db.Collection(HallCollection),
	}
}

func (c *mongoHallCatalog) HallByID(ctx context.Context, hallID string) (*model.Hall, error) {
	var hall model.Hall
	err := c.collection.FindOne(ctx, bson.M{"_id": hallID}).Decode(&hall)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("failed to find hall: %w", err)
	}

	return &hall, nil
}

// StaticHallCatalog serves a fixed seed, used in demo mode and tests.
type StaticHallCatalog struct {
	halls map[string]*model.Hall
}

func NewStaticHallCatalog(halls ...*model.Hall) *StaticHallCatalog {
	c := &StaticHallCatalog{halls: make(map[string]*model.Hall)}
	for _, h := range halls {
		c.halls[h.ID] = h
	}
	return c
}

func (c *StaticHallCatalog) HallByID(_ context.Context, hallID string) (*model.Hall, error) {
	hall, ok := c.halls[hallID]
	if !ok {
		return nil, ErrHallNotFound
	}

	found := *hall
	return &found, nil
}

// SeedHalls returns the demo venue's halls.
func SeedHalls() []*model.Hall {
	return []*model.Hall{
		{
			ID:           "h_1",
			VenueID:      "v_1",
			Name:         "Emerald Hall",
			CapacityMin:  50,
			CapacityMax:  200,
			PricePerHour: 150,
			Amenities:    []string{"Stage", "Sound system", "Lighting"},
		},
		{
			ID:           "h_2",
			VenueID:      "v_1",
			Name:         "Sapphire Ballroom",
			CapacityMin:  100,
			CapacityMax:  400,
			PricePerHour: 300,
			Amenities:    []string{"Chandeliers", "Dance floor", "Catering area"},
		},
	}
}
