package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"medipay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockGateway issues local order ids and signs checkouts with a local secret
// using the same scheme as Razorpay, so the verify flow can be exercised
// without provider credentials.
type MockGateway struct {
	secret string
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(secret string) *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{secret: secret}
}

func (g *MockGateway) CreateOrder(ctx context.Context, req interfaces.GatewayOrderRequest) (interfaces.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.GatewayOrder{}, err
	}
	id := "order_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
	raw, err := json.Marshal(map[string]any{
		"id":         id,
		"entity":     "order",
		"amount":     req.AmountMinorUnits,
		"currency":   req.Currency,
		"receipt":    req.Receipt,
		"notes":      req.Metadata,
		"status":     "created",
		"created_at": time.Now().UTC().Unix(),
	})
	if err != nil {
		return interfaces.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] mock create-order success order_id=%s", id)
	return interfaces.GatewayOrder{OrderID: id, Status: "created", Raw: raw}, nil
}

func (g *MockGateway) VerifySignature(_ context.Context, orderID, paymentID, signature string) (bool, error) {
	return verifyCheckoutSignature(orderID, paymentID, signature, g.secret), nil
}

// Sign returns the checkout signature a client would receive for the order.
func (g *MockGateway) Sign(orderID, paymentID string) string {
	return SignCheckout(orderID, paymentID, g.secret)
}

// SignCheckout computes hex(HMAC-SHA256(secret, orderID|paymentID)).
func SignCheckout(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
