package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"medipay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type fakeRazorpayOrders struct {
	body  map[string]interface{}
	err   error
	delay time.Duration
	got   map[string]interface{}
}

func (f *fakeRazorpayOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.got = data
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.body, f.err
}

func orderRequest() interfaces.GatewayOrderRequest {
	return interfaces.GatewayOrderRequest{
		AmountMinorUnits: 50000,
		Currency:         "INR",
		Receipt:          "rcpt_abc",
		Metadata:         map[string]string{"appointment_id": "apt-1", "hospital_name": "Apollo"},
	}
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		orders := &fakeRazorpayOrders{body: map[string]interface{}{"id": "order_123", "status": "created"}}
		g := &RazorpayGateway{orders: orders, secret: "s"}

		got, err := g.CreateOrder(context.Background(), orderRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderID != "order_123" || got.Status != "created" || !json.Valid(got.Raw) {
			t.Fatalf("unexpected order %+v", got)
		}
		if orders.got["amount"] != int64(50000) || orders.got["receipt"] != "rcpt_abc" || orders.got["currency"] != "INR" {
			t.Fatalf("unexpected request %+v", orders.got)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &RazorpayGateway{orders: &fakeRazorpayOrders{err: errors.New("bad request")}}
		if _, err := g.CreateOrder(context.Background(), orderRequest()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		g := &RazorpayGateway{orders: &fakeRazorpayOrders{body: map[string]interface{}{}}}
		if _, err := g.CreateOrder(context.Background(), orderRequest()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("deadline", func(t *testing.T) {
		g := &RazorpayGateway{orders: &fakeRazorpayOrders{delay: 200 * time.Millisecond, body: map[string]interface{}{"id": "late"}}}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := g.CreateOrder(ctx, orderRequest())
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})
}

func TestCheckoutSignature(t *testing.T) {
	g := NewMockGateway("test_secret")
	sig := g.Sign("order_1", "pay_1")

	ok, err := g.VerifySignature(context.Background(), "order_1", "pay_1", sig)
	if err != nil || !ok {
		t.Fatalf("expected valid signature, ok=%t err=%v", ok, err)
	}

	rzp := &RazorpayGateway{secret: "test_secret"}
	if ok, _ := rzp.VerifySignature(context.Background(), "order_1", "pay_1", sig); !ok {
		t.Fatalf("razorpay verifier rejected a mock signature")
	}

	for name, tc := range map[string][3]string{
		"tampered signature": {"order_1", "pay_1", sig[:len(sig)-1] + "0"},
		"other order":        {"order_2", "pay_1", sig},
		"other payment":      {"order_1", "pay_2", sig},
	} {
		t.Run(name, func(t *testing.T) {
			if tc[2] == sig && tc[0] == "order_1" && tc[1] == "pay_1" {
				t.Skip("signature unchanged")
			}
			if ok, _ := g.VerifySignature(context.Background(), tc[0], tc[1], tc[2]); ok {
				t.Fatalf("expected rejection")
			}
		})
	}
}

func TestMockGateway_CreateOrder(t *testing.T) {
	g := NewMockGateway("s")
	a, err := g.CreateOrder(context.Background(), orderRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := g.CreateOrder(context.Background(), orderRequest())
	if a.OrderID == b.OrderID || len(a.OrderID) == 0 {
		t.Fatalf("expected unique order ids, got %s and %s", a.OrderID, b.OrderID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.CreateOrder(ctx, orderRequest()); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}

type fakePreferences struct {
	got preference.Request
}

func (f *fakePreferences) Create(_ context.Context, r preference.Request) (*preference.Response, error) {
	f.got = r
	return &preference.Response{ID: "pref-1"}, nil
}

type fakeMPPayments struct {
	resp *payment.Response
	err  error
}

func (f *fakeMPPayments) Get(_ context.Context, _ int) (*payment.Response, error) {
	return f.resp, f.err
}

func TestMercadoPagoGateway(t *testing.T) {
	prefs := &fakePreferences{}
	g := &MercadoPagoGateway{preferences: prefs}

	order, err := g.CreateOrder(context.Background(), orderRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.got.ExternalReference != order.OrderID {
		t.Fatalf("order id must be the external reference")
	}
	if len(prefs.got.Items) != 1 || prefs.got.Items[0].UnitPrice != 500 || prefs.got.Items[0].Title != "Appointment at Apollo" {
		t.Fatalf("unexpected items %+v", prefs.got.Items)
	}

	t.Run("approved for reference", func(t *testing.T) {
		g.payments = &fakeMPPayments{resp: &payment.Response{ID: 42, Status: "approved", ExternalReference: order.OrderID}}
		ok, err := g.VerifySignature(context.Background(), order.OrderID, "42", "n/a")
		if err != nil || !ok {
			t.Fatalf("expected verified, ok=%t err=%v", ok, err)
		}
	})

	t.Run("other reference", func(t *testing.T) {
		g.payments = &fakeMPPayments{resp: &payment.Response{ID: 42, Status: "approved", ExternalReference: "mp_other"}}
		if ok, _ := g.VerifySignature(context.Background(), order.OrderID, "42", "n/a"); ok {
			t.Fatalf("expected rejection")
		}
	})

	t.Run("non numeric payment id", func(t *testing.T) {
		if ok, err := g.VerifySignature(context.Background(), order.OrderID, "abc", "n/a"); ok || err != nil {
			t.Fatalf("expected plain rejection, ok=%t err=%v", ok, err)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		g.payments = &fakeMPPayments{err: errors.New("503")}
		if _, err := g.VerifySignature(context.Background(), order.OrderID, "42", "n/a"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
