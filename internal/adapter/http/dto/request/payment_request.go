package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingAmount        = errors.New("amount is required")
	ErrMissingAppointmentID = errors.New("appointment_id is required")
)

// CreateOrderRequest is the payload of POST /payments/create-order.
type CreateOrderRequest struct {
	AppointmentID string           `json:"appointment_id"`
	Amount        *decimal.Decimal `json:"amount"`
}

func (r CreateOrderRequest) Resolve() (string, decimal.Decimal, error) {
	return resolveAmountFor(r.AppointmentID, r.Amount)
}

// InitiatePartialRequest is the payload of POST /payments/initiate-partial.
// Older clients send the same fields as query parameters.
type InitiatePartialRequest struct {
	AppointmentID string           `json:"appointment_id" form:"appointment_id"`
	PartialAmount *decimal.Decimal `json:"partial_amount"`
	PartialQuery  string           `json:"-" form:"partial_amount"`
}

func (r InitiatePartialRequest) Resolve() (string, decimal.Decimal, error) {
	amount := r.PartialAmount
	if amount == nil && strings.TrimSpace(r.PartialQuery) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(r.PartialQuery))
		if err != nil {
			return "", decimal.Zero, ErrMissingAmount
		}
		amount = &parsed
	}
	return resolveAmountFor(r.AppointmentID, amount)
}

func resolveAmountFor(appointmentID string, amount *decimal.Decimal) (string, decimal.Decimal, error) {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return "", decimal.Zero, ErrMissingAppointmentID
	}
	if amount == nil {
		return "", decimal.Zero, ErrMissingAmount
	}
	return id, *amount, nil
}

// VerifyPaymentRequest is the gateway callback relayed by the client.
//
// Razorpay checkout hands back razorpay_order_id, razorpay_payment_id and
// razorpay_signature; those names are accepted next to the neutral ones.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r VerifyPaymentRequest) ResolveOrderID() string {
	return firstNonBlank(r.OrderID, r.RazorpayOrderID)
}

func (r VerifyPaymentRequest) ResolvePaymentID() string {
	return firstNonBlank(r.PaymentID, r.RazorpayPaymentID)
}

func (r VerifyPaymentRequest) ResolveSignature() string {
	return firstNonBlank(r.Signature, r.RazorpaySignature)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
