package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidStateTransition = errors.New("invalid appointment state transition")

// AppointmentStatus represents the lifecycle of a hospital appointment.
//
// Allowed edges:
//   - BOOKED -> CANCELLED (patient/admin, before confirmation)
//   - BOOKED -> CONFIRMED (successful payment verification only)
//   - CONFIRMED -> COMPLETED (hospital marks the service as rendered)

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "BOOKED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusBooked:    {AppointmentStatusCancelled, AppointmentStatusConfirmed},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted},
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Payable reports whether new gateway orders may be opened for the appointment.
func (s AppointmentStatus) Payable() bool {
	return s == AppointmentStatusBooked || s == AppointmentStatusConfirmed
}

// Appointment is the booking persisted by the billing service.
//
// Storage model:
//   - PK: id
//   - Version is an optimistic concurrency counter; every write must be
//     conditioned on the version that was read and increments it.
//
// Monetary representation:
//   - TotalAmount is optional; zero means the booking carries no known total.
//   - PaidAmount accumulates the totals of verified payments.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id"`
	HospitalID  string            `json:"hospital_id"`
	Service     string            `json:"service"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      AppointmentStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	PaidAmount  decimal.Decimal   `json:"paid_amount"`
	Version     int64             `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a Appointment) HasTotal() bool {
	return a.TotalAmount.IsPositive()
}

// OutstandingAmount is the part of a known total not yet covered by verified payments.
func (a Appointment) OutstandingAmount() decimal.Decimal {
	return a.TotalAmount.Sub(a.PaidAmount)
}

// Transition returns a copy of the appointment moved to next.
func (a Appointment) Transition(next AppointmentStatus, now time.Time) (Appointment, error) {
	if !a.Status.CanTransitionTo(next) {
		return Appointment{}, ErrInvalidStateTransition
	}
	a.Status = next
	a.UpdatedAt = now
	return a, nil
}

// ApplySettlement records a verified payment against the appointment.
// A BOOKED appointment becomes CONFIRMED; other states only accumulate the
// paid amount.
func (a Appointment) ApplySettlement(amount decimal.Decimal, now time.Time) Appointment {
	if a.Status == AppointmentStatusBooked {
		a.Status = AppointmentStatusConfirmed
	}
	a.PaidAmount = a.PaidAmount.Add(amount)
	a.UpdatedAt = now
	return a
}
