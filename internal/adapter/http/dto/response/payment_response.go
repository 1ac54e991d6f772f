package response

import (
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase"
)

type CommissionSplitResponse struct {
	AdminCommission      float64 `json:"admin_commission"`
	HospitalPayout       float64 `json:"hospital_payout"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

func FromSplit(s entities.CommissionSplit) CommissionSplitResponse {
	return CommissionSplitResponse{
		AdminCommission:      s.AdminCommission.InexactFloat64(),
		HospitalPayout:       s.HospitalPayout.InexactFloat64(),
		CommissionPercentage: s.CommissionPercentage.InexactFloat64(),
	}
}

// OrderResponse is returned by create-order and initiate-partial. Partial
// orders also carry partial_amount and remaining_amount.
type OrderResponse struct {
	PaymentID       string                  `json:"payment_id"`
	OrderID         string                  `json:"order_id"`
	AppointmentID   string                  `json:"appointment_id"`
	Kind            string                  `json:"kind"`
	Amount          float64                 `json:"amount"`
	PartialAmount   *float64                `json:"partial_amount,omitempty"`
	RemainingAmount *float64                `json:"remaining_amount,omitempty"`
	Currency        string                  `json:"currency"`
	CommissionSplit CommissionSplitResponse `json:"commission_split"`
}

func FromOrderResult(r usecase.OrderResult) OrderResponse {
	res := OrderResponse{
		PaymentID:       r.PaymentID,
		OrderID:         r.OrderID,
		AppointmentID:   r.AppointmentID,
		Kind:            string(r.Kind),
		Amount:          r.Amount.InexactFloat64(),
		Currency:        r.Currency,
		CommissionSplit: FromSplit(r.Split),
	}
	if r.Kind == entities.PaymentKindPartial {
		partial := r.Amount.InexactFloat64()
		remaining := r.RemainingAmount.InexactFloat64()
		res.PartialAmount = &partial
		res.RemainingAmount = &remaining
	}
	return res
}

type VerificationResponse struct {
	Message              string  `json:"message"`
	PaymentID            string  `json:"payment_id"`
	AppointmentID        string  `json:"appointment_id"`
	AppointmentStatus    string  `json:"appointment_status"`
	TotalAmount          float64 `json:"total_amount"`
	AdminCommission      float64 `json:"admin_commission"`
	HospitalPayout       float64 `json:"hospital_payout"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

func FromVerification(v usecase.VerificationResult) VerificationResponse {
	return VerificationResponse{
		Message:              "Payment successful",
		PaymentID:            v.Payment.ID,
		AppointmentID:        v.Payment.AppointmentID,
		AppointmentStatus:    string(v.Appointment.Status),
		TotalAmount:          v.Payment.TotalAmount.InexactFloat64(),
		AdminCommission:      v.Payment.AdminCommission.InexactFloat64(),
		HospitalPayout:       v.Payment.HospitalPayout.InexactFloat64(),
		CommissionPercentage: v.CommissionPercentage.InexactFloat64(),
	}
}

type PaymentResponse struct {
	ID                   string    `json:"id"`
	AppointmentID        string    `json:"appointment_id"`
	Kind                 string    `json:"kind"`
	Currency             string    `json:"currency"`
	GatewayOrderID       string    `json:"gateway_order_id"`
	GatewayPaymentID     string    `json:"gateway_payment_id,omitempty"`
	GatewaySignature     string    `json:"gateway_signature,omitempty"`
	TotalAmount          float64   `json:"total_amount"`
	AdminCommission      float64   `json:"admin_commission"`
	HospitalPayout       float64   `json:"hospital_payout"`
	CommissionPercentage float64   `json:"commission_percentage"`
	Status               string    `json:"status"`
	FailureReason        string    `json:"failure_reason,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   p.ID,
		AppointmentID:        p.AppointmentID,
		Kind:                 string(p.Kind),
		Currency:             p.Currency,
		GatewayOrderID:       p.GatewayOrderID,
		GatewayPaymentID:     p.GatewayPaymentID,
		GatewaySignature:     p.GatewaySignature,
		TotalAmount:          p.TotalAmount.InexactFloat64(),
		AdminCommission:      p.AdminCommission.InexactFloat64(),
		HospitalPayout:       p.HospitalPayout.InexactFloat64(),
		CommissionPercentage: p.CommissionPercentage.InexactFloat64(),
		Status:               string(p.Status),
		FailureReason:        p.FailureReason,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

type PaymentStatusResponse struct {
	PaymentID   string    `json:"payment_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPaymentStatus(p entities.Payment) PaymentStatusResponse {
	return PaymentStatusResponse{
		PaymentID:   p.ID,
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount.InexactFloat64(),
		CreatedAt:   p.CreatedAt,
	}
}
