package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Razorpay).
//
// The billing service uses it to open a gateway order before the patient pays
// and to check that a payment completion callback was really issued by the
// provider for that order. Implementations must honour ctx cancellation so a
// slow provider cannot hang the request.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (GatewayOrder, error)
	VerifySignature(ctx context.Context, orderID, paymentID, signature string) (bool, error)
}

type GatewayOrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Receipt          string
	Metadata         map[string]string
}

// GatewayOrder is the provider's answer to an order creation.
//
// Raw keeps the provider response payload for audit.
type GatewayOrder struct {
	OrderID string
	Status  string
	Raw     json.RawMessage
}
