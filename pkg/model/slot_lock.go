package model

import "time"

// SlotLock is an advisory lock serializing the conflict-check-then-commit
// window for one (hall, date). The unique _id makes acquisition a single
// atomic insert; ExpiresAt lets a TTL index reap locks from crashed writers.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
