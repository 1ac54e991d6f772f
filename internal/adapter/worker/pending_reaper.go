package worker

import (
	"context"
	"log"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/usecase"
)

// PendingReaper periodically fails PENDING payments whose gateway order was
// abandoned.
type PendingReaper struct {
	payments usecase.IPaymentUseCase
	interval time.Duration
	ttl      time.Duration
}

func NewPendingReaper(payments usecase.IPaymentUseCase, interval, ttl time.Duration) *PendingReaper {
	return &PendingReaper{payments: payments, interval: interval, ttl: ttl}
}

// Run blocks until ctx is cancelled. A non-positive interval disables it.
func (r *PendingReaper) Run(ctx context.Context) {
	if r.interval <= 0 {
		log.Printf("[payment][reaper] disabled")
		return
	}
	log.Printf("[payment][reaper] started interval=%s ttl=%s", r.interval, r.ttl)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[payment][reaper] stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

func (r *PendingReaper) RunOnce(ctx context.Context) int {
	n, err := r.payments.ExpireStalePending(ctx, access.System, r.ttl)
	if err != nil {
		log.Printf("[payment][reaper] sweep failed err=%v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[payment][reaper] expired pending payments count=%d", n)
	}
	return n
}
