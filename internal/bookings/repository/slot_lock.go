package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"venuehall/pkg/config"
	apperrors "venuehall/pkg/errors"
	"venuehall/pkg/model"
)

const SlotLockCollection = "Slot_locks"

// SlotLocker serializes the conflict-check-then-commit window for one
// (hall, date). Acquire returns a release function on success.
type SlotLocker interface {
	Acquire(ctx context.Context, hallID, date string) (release func(ctx context.Context) error, err error)
}

// mongoSlotLocker implements the lock as an insert against a unique _id:
// exactly one concurrent writer can create the document. A TTL index on
// expires_at reaps locks left behind by crashed writers.
type mongoSlotLocker struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSlotLocker(cfg *config.Config) SlotLocker {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSlotLocker{
		cfg:        cfg,
		collection: db.Collection(SlotLockCollection),
	}
}

func (l *mongoSlotLocker) Acquire(ctx context.Context, hallID, date string) (func(ctx context.Context) error, error) {
	lockID := fmt.Sprintf("slot_lock_%s_%s", hallID, date)

	lock := &model.SlotLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(l.cfg.SlotLockTTL),
		CreatedAt: time.Now(),
	}

	if _, err := l.collection.InsertOne(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("This time slot is currently being booked by another request. Please try again.")
		}
		return nil, apperrors.Internal("Failed to acquire slot lock", err)
	}

	release := func(ctx context.Context) error {
		_, err := l.collection.DeleteOne(ctx, bson.M{"_id": lockID})
		return err
	}
	return release, nil
}
