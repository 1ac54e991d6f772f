package response

import (
	"time"

	"medipay/internal/domain/entities"
)

type AppointmentResponse struct {
	ID                string    `json:"id"`
	PatientID         string    `json:"patient_id"`
	HospitalID        string    `json:"hospital_id"`
	Service           string    `json:"service"`
	AppointmentDate   time.Time `json:"appointment_date"`
	Status            string    `json:"status"`
	TotalAmount       *float64  `json:"total_amount,omitempty"`
	PaidAmount        float64   `json:"paid_amount"`
	OutstandingAmount *float64  `json:"outstanding_amount,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	res := AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		HospitalID:      a.HospitalID,
		Service:         a.Service,
		AppointmentDate: a.ScheduledAt,
		Status:          string(a.Status),
		PaidAmount:      a.PaidAmount.InexactFloat64(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.HasTotal() {
		total := a.TotalAmount.InexactFloat64()
		outstanding := a.OutstandingAmount().InexactFloat64()
		res.TotalAmount = &total
		res.OutstandingAmount = &outstanding
	}
	return res
}
