package contracts

import (
	"context"
	"time"
)

// LockerService is a redis-backed lock used to elect a single worker
// for jobs like the weigh-in reminder sweep when multiple API
// replicas run the same schedule.
type LockerService interface {
	// TryLock returns acquired plus the owner value needed to release
	// or refresh the lock.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	// Refresh extends the TTL of a lock if owned by lockValue
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
