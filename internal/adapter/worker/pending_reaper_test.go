package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"medipay/internal/adapter/http/handlers/mocks"
	"medipay/internal/domain/access"

	"go.uber.org/mock/gomock"
)

func TestPendingReaper_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := NewPendingReaper(uc, time.Minute, 30*time.Minute)

	uc.EXPECT().ExpireStalePending(gomock.Any(), access.System, 30*time.Minute).Return(3, nil)
	if n := r.RunOnce(context.Background()); n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}

	uc.EXPECT().ExpireStalePending(gomock.Any(), access.System, 30*time.Minute).Return(0, errors.New("ddb"))
	if n := r.RunOnce(context.Background()); n != 0 {
		t.Fatalf("expected 0 on error, got %d", n)
	}
}

func TestPendingReaper_Run(t *testing.T) {
	t.Run("disabled returns immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := NewPendingReaper(mocks.NewMockIPaymentUseCase(ctrl), 0, time.Minute)

		done := make(chan struct{})
		go func() { r.Run(context.Background()); close(done) }()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("expected Run to return")
		}
	})

	t.Run("sweeps until cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := NewPendingReaper(uc, 5*time.Millisecond, time.Minute)

		var calls atomic.Int32
		uc.EXPECT().ExpireStalePending(gomock.Any(), access.System, time.Minute).DoAndReturn(
			func(context.Context, access.Actor, time.Duration) (int, error) {
				calls.Add(1)
				return 0, nil
			},
		).MinTimes(1)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() { r.Run(ctx); close(done) }()

		deadline := time.After(2 * time.Second)
		for calls.Load() == 0 {
			select {
			case <-deadline:
				t.Fatalf("reaper never swept")
			case <-time.After(time.Millisecond):
			}
		}
		cancel()
		<-done
	})
}
