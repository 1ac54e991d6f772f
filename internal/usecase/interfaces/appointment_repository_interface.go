package interfaces

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/mock_appointment_repository_interface.go -package=mock_interfaces

import (
	"context"
	"errors"

	"medipay/internal/domain/entities"
)

// ErrConditionFailed is returned by repositories when a conditional write lost
// against a concurrent writer (stale version, status no longer PENDING, ...).
var ErrConditionFailed = errors.New("conditional write failed")

// IAppointmentRepository abstracts persistence for Appointment.
//
// Lookups return a zero Appointment (empty ID) when nothing matches.
// Update persists a and bumps its version, but only when the stored version
// still equals expectedVersion; otherwise it returns ErrConditionFailed.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment, expectedVersion int64) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
}
