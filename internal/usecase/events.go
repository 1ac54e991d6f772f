package usecase

import (
	"context"
	"log"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"
)

// Routing keys published on the billing exchange.
const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"
	EventPaymentSucceeded     = "payment.succeeded"
	EventPaymentFailed        = "payment.failed"
)

const eventVersion = 1

type AppointmentEvent struct {
	Event      string `json:"event"`
	Version    int    `json:"version"`
	OccurredAt string `json:"occurred_at"`
	Data       struct {
		AppointmentID string `json:"appointment_id"`
		PatientID     string `json:"patient_id"`
		HospitalID    string `json:"hospital_id"`
		Status        string `json:"status"`
	} `json:"data"`
}

type PaymentEvent struct {
	Event      string `json:"event"`
	Version    int    `json:"version"`
	OccurredAt string `json:"occurred_at"`
	Data       struct {
		PaymentID       string `json:"payment_id"`
		AppointmentID   string `json:"appointment_id"`
		OrderID         string `json:"order_id"`
		Amount          string `json:"amount"`
		AdminCommission string `json:"admin_commission"`
		HospitalPayout  string `json:"hospital_payout"`
		Currency        string `json:"currency"`
		Status          string `json:"status"`
		Reason          string `json:"reason,omitempty"`
	} `json:"data"`
}

func appointmentEvent(key string, a entities.Appointment, at time.Time) AppointmentEvent {
	evt := AppointmentEvent{Event: key, Version: eventVersion, OccurredAt: at.UTC().Format(time.RFC3339)}
	evt.Data.AppointmentID = a.ID
	evt.Data.PatientID = a.PatientID
	evt.Data.HospitalID = a.HospitalID
	evt.Data.Status = string(a.Status)
	return evt
}

func paymentEvent(key string, p entities.Payment, at time.Time) PaymentEvent {
	evt := PaymentEvent{Event: key, Version: eventVersion, OccurredAt: at.UTC().Format(time.RFC3339)}
	evt.Data.PaymentID = p.ID
	evt.Data.AppointmentID = p.AppointmentID
	evt.Data.OrderID = p.GatewayOrderID
	evt.Data.Amount = p.TotalAmount.StringFixed(2)
	evt.Data.AdminCommission = p.AdminCommission.StringFixed(2)
	evt.Data.HospitalPayout = p.HospitalPayout.StringFixed(2)
	evt.Data.Currency = p.Currency
	evt.Data.Status = string(p.Status)
	evt.Data.Reason = p.FailureReason
	return evt
}

// publish is best effort: the state change is already committed, so a broker
// failure is logged and never returned to the caller.
func publish(ctx context.Context, events interfaces.IEventPublisher, key string, v any) {
	if events == nil {
		return
	}
	if err := events.PublishJSON(ctx, key, v); err != nil {
		log.Printf("[events] publish failed key=%s err=%v", key, err)
	}
}
