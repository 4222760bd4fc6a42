package repository

import (
	"context"
	"sync"

	bookingserrors "venuehall/internal/bookings/errors"
	"venuehall/pkg/model"
)

// MemoryReservationRepository is a store-shaped map for tests and local
// runs. InTransaction serializes callers on a single transaction mutex,
// which gives the same check-then-insert atomicity the mongo
// implementation gets from sessions.
type MemoryReservationRepository struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	byID map[string]*model.Reservation
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{
		byID: make(map[string]*model.Reservation),
	}
}

func (r *MemoryReservationRepository) Create(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *res
	r.byID[res.ID] = &stored
	return nil
}

func (r *MemoryReservationRepository) FindByID(_ context.Context, id string) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}

	found := *res
	return &found, nil
}

func (r *MemoryReservationRepository) FindByHallAndDate(_ context.Context, hallID, date string) ([]*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Reservation
	for _, res := range r.byID {
		if res.HallID == hallID && res.Date == date {
			found := *res
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *MemoryReservationRepository) CountByHallAndDate(ctx context.Context, hallID, date string) (int64, error) {
	reservations, err := r.FindByHallAndDate(ctx, hallID, date)
	if err != nil {
		return 0, err
	}
	return int64(len(reservations)), nil
}

func (r *MemoryReservationRepository) InTransaction(ctx context.Context, fn TxFunc) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(ctx)
}

// MemorySlotLocker blocks on a per-key mutex instead of failing fast:
// in-process racers queue up and re-check, so the first wins and the
// rest see its reservation as a conflict.
type MemorySlotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemorySlotLocker() *MemorySlotLocker {
	return &MemorySlotLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *MemorySlotLocker) Acquire(_ context.Context, hallID, date string) (func(ctx context.Context) error, error) {
	key := hallID + ":" + date

	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	release := func(ctx context.Context) error {
		lock.Unlock()
		return nil
	}
	return release, nil
}
