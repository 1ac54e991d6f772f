package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAppointmentDate = errors.New("invalid appointment date")
)

// BookAppointmentRequest is the payload of POST /appointments.
//
// `date` is accepted as an alias of `appointment_date`. Dates without an
// offset are read as UTC.
type BookAppointmentRequest struct {
	PatientID       string           `json:"patient_id"`
	HospitalID      string           `json:"hospital_id" binding:"required"`
	Service         string           `json:"service" binding:"required"`
	AppointmentDate string           `json:"appointment_date"`
	Date            string           `json:"date"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
}

var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func (r BookAppointmentRequest) ResolveScheduledAt() (time.Time, error) {
	raw := strings.TrimSpace(r.AppointmentDate)
	if raw == "" {
		raw = strings.TrimSpace(r.Date)
	}
	if raw == "" {
		return time.Time{}, ErrInvalidAppointmentDate
	}
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidAppointmentDate
}

// ResolvePatientID falls back to the caller when the payload names no patient.
func (r BookAppointmentRequest) ResolvePatientID(actorID string) string {
	if v := strings.TrimSpace(r.PatientID); v != "" {
		return v
	}
	return actorID
}

// ResolveTotal returns zero when no total was sent.
func (r BookAppointmentRequest) ResolveTotal() decimal.Decimal {
	if r.TotalAmount == nil {
		return decimal.Zero
	}
	return *r.TotalAmount
}
