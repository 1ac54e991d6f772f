package cache

import (
	"context"
	"sync"
	"time"

	"medipay/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LocalVerificationLock is the single-instance fallback used when no Redis
// address is configured. Entries expire after ttl like their Redis
// counterparts; the ttl passed to Acquire is capped by the cache ttl.
//
// A held key is never evicted: once capacity keys are held, Acquire refuses
// new keys until one is released or expires. The versioned settlement write
// remains the guard against double booking either way.
type LocalVerificationLock struct {
	mu       sync.Mutex
	capacity int
	held     *expirable.LRU[string, struct{}]
}

const defaultLockCapacity = 4096

var _ interfaces.IVerificationLock = (*LocalVerificationLock)(nil)

func NewLocalVerificationLock(capacity int, ttl time.Duration) *LocalVerificationLock {
	if capacity <= 0 {
		capacity = defaultLockCapacity
	}
	return &LocalVerificationLock{capacity: capacity, held: expirable.NewLRU[string, struct{}](capacity, nil, ttl)}
}

func (l *LocalVerificationLock) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held.Contains(key) || l.held.Len() >= l.capacity {
		return false, nil
	}
	l.held.Add(key, struct{}{})
	return true, nil
}

func (l *LocalVerificationLock) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held.Remove(key)
	return nil
}
