package interfaces

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher_interface.go -package=mock_interfaces

import (
	"context"
	"time"
)

// IEventPublisher publishes domain events once the state change is committed.
type IEventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// IVerificationLock guards a payment verification in flight so that a retried
// gateway callback does not race the first one.
type IVerificationLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
