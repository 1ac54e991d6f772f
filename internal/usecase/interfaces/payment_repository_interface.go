package interfaces

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository_interface.go -package=mock_interfaces

import (
	"context"
	"time"

	"medipay/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
// Settle is the only way a payment reaches SUCCESS. It must write the payment
// and its appointment as one atomic unit: the payment must still be PENDING
// and the appointment must still carry ExpectedAppointmentVersion, otherwise
// nothing is written and ErrConditionFailed is returned.
//
// ListByStatus bounds created_at inclusively; zero times leave that side open.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus, from, to time.Time) ([]entities.Payment, error)
	Settle(ctx context.Context, s Settlement) error
	MarkFailed(ctx context.Context, id, reason string, at time.Time) (entities.Payment, error)
}

// Settlement carries the post-verification state of a payment and of the
// appointment it pays for.
type Settlement struct {
	Payment                    entities.Payment
	Appointment                entities.Appointment
	ExpectedAppointmentVersion int64
}
