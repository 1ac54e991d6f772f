package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
//
// PENDING is set when the gateway order is opened; SUCCESS only through a
// verified gateway signature; FAILED when a stale order is expired.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type PaymentKind string

const (
	PaymentKindFull    PaymentKind = "FULL"
	PaymentKindPartial PaymentKind = "PARTIAL"
)

const (
	CurrencyINR          = "INR"
	FailureReasonExpired = "expired"
)

// Payment is the payment entity persisted by the billing service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI gateway_order_id-index: gateway_order_id
//   - GSI appointment_id-index: appointment_id
//   - GSI status-created_at-index: status + created_at
//
// The split (AdminCommission, HospitalPayout, CommissionPercentage) is frozen
// at order creation. GatewayPaymentID and GatewaySignature are written once,
// by the verification that moves the payment to SUCCESS.
//
// GatewayOrderPayload keeps the provider's order response for traceability.
type Payment struct {
	ID                   string          `json:"id"`
	AppointmentID        string          `json:"appointment_id"`
	Kind                 PaymentKind     `json:"kind"`
	Currency             string          `json:"currency"`
	GatewayOrderID       string          `json:"gateway_order_id"`
	GatewayPaymentID     string          `json:"gateway_payment_id,omitempty"`
	GatewaySignature     string          `json:"gateway_signature,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	AdminCommission      decimal.Decimal `json:"admin_commission"`
	HospitalPayout       decimal.Decimal `json:"hospital_payout"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	Status               PaymentStatus   `json:"status"`
	FailureReason        string          `json:"failure_reason,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`

	GatewayOrderPayload json.RawMessage `json:"gateway_order_payload,omitempty"`
}

// EffectiveCommissionPercentage derives the rate from the persisted amounts,
// rounded to 2 places. It is zero when the amount is zero.
func (p Payment) EffectiveCommissionPercentage() decimal.Decimal {
	if p.TotalAmount.IsZero() {
		return decimal.Zero
	}
	return p.AdminCommission.Div(p.TotalAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// Split returns the persisted commission split.
func (p Payment) Split() CommissionSplit {
	return CommissionSplit{
		AdminCommission:      p.AdminCommission,
		HospitalPayout:       p.HospitalPayout,
		CommissionPercentage: p.CommissionPercentage,
	}
}
