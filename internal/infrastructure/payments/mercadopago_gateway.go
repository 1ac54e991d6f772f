package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"medipay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const mercadoPagoApproved = "approved"

type mpPreferences interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type mpPayments interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway opens Checkout Pro preferences. The order id handed back
// to the billing service is the preference's external reference; a payment is
// verified by fetching it from Mercado Pago and checking that it is approved
// for that reference. Mercado Pago issues no checkout signature, so the
// signature argument is only logged.
type MercadoPagoGateway struct {
	preferences mpPreferences
	payments    mpPayments
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, req interfaces.GatewayOrderRequest) (interfaces.GatewayOrder, error) {
	reference := "mp_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	metadata := make(map[string]any, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["receipt"] = req.Receipt

	title := "Hospital appointment"
	if name := req.Metadata["hospital_name"]; name != "" {
		title = "Appointment at " + name
	}
	unitPrice := decimal.New(req.AmountMinorUnits, -2).InexactFloat64()

	log.Printf("[payment][gateway] mercadopago create-preference start receipt=%s reference=%s", req.Receipt, reference)
	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:         req.Receipt,
			Title:      title,
			Quantity:   1,
			UnitPrice:  unitPrice,
			CurrencyID: req.Currency,
		}},
		ExternalReference: reference,
		Metadata:          metadata,
	})
	if err != nil {
		log.Printf("[payment][gateway] mercadopago create-preference failed receipt=%s err=%v", req.Receipt, err)
		return interfaces.GatewayOrder{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] mercadopago create-preference success preference_id=%s reference=%s", resp.ID, reference)
	return interfaces.GatewayOrder{OrderID: reference, Status: "created", Raw: raw}, nil
}

func (g *MercadoPagoGateway) VerifySignature(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago invalid payment id=%s", paymentID)
		return false, nil
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("mercadopago get payment: %w", err)
	}
	ok := resp.Status == mercadoPagoApproved && resp.ExternalReference == orderID
	log.Printf("[payment][gateway] mercadopago verify payment_id=%d status=%s reference_match=%t signature_len=%d",
		resp.ID, resp.Status, resp.ExternalReference == orderID, len(signature))
	return ok, nil
}
