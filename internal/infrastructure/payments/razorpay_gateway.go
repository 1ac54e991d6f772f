package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"medipay/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")

// razorpayOrders is the part of the SDK order resource the gateway needs.
type razorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway opens Razorpay orders and checks checkout signatures with
// the SDK's own verification helper.
type RazorpayGateway struct {
	orders razorpayOrders
	secret string
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}
	client := razorpay.NewClient(keyID, keySecret)
	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{orders: client.Order, secret: keySecret}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req interfaces.GatewayOrderRequest) (interfaces.GatewayOrder, error) {
	notes := make(map[string]interface{}, len(req.Metadata))
	for k, v := range req.Metadata {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":          req.AmountMinorUnits,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"notes":           notes,
		"payment_capture": 1,
	}
	log.Printf("[payment][gateway] razorpay create-order start receipt=%s amount_minor=%d", req.Receipt, req.AmountMinorUnits)

	// The SDK call takes no context; run it aside so the deadline still applies.
	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := g.orders.Create(data, nil)
		done <- result{body: body, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		log.Printf("[payment][gateway] razorpay create-order timed out receipt=%s", req.Receipt)
		return interfaces.GatewayOrder{}, ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		log.Printf("[payment][gateway] razorpay create-order failed receipt=%s err=%v", req.Receipt, res.err)
		return interfaces.GatewayOrder{}, res.err
	}

	orderID, _ := res.body["id"].(string)
	if orderID == "" {
		return interfaces.GatewayOrder{}, fmt.Errorf("razorpay response without order id")
	}
	status, _ := res.body["status"].(string)
	raw, err := json.Marshal(res.body)
	if err != nil {
		return interfaces.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] razorpay create-order success order_id=%s status=%s", orderID, status)
	return interfaces.GatewayOrder{OrderID: orderID, Status: status, Raw: raw}, nil
}

func (g *RazorpayGateway) VerifySignature(_ context.Context, orderID, paymentID, signature string) (bool, error) {
	return verifyCheckoutSignature(orderID, paymentID, signature, g.secret), nil
}

func verifyCheckoutSignature(orderID, paymentID, signature, secret string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, secret)
}
