package handlers

import (
	"net/http"
	"testing"
	"time"

	"medipay/internal/adapter/http/handlers/mocks"
	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleSplit() entities.CommissionSplit {
	return entities.CommissionSplit{
		AdminCommission:      decimal.RequireFromString("50.00"),
		HospitalPayout:       decimal.RequireFromString("450.00"),
		CommissionPercentage: decimal.NewFromInt(10),
	}
}

func TestPaymentHandler_CreateOrder(t *testing.T) {
	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/create-order", h.CreateOrder)

		if w := doRequest(r, http.MethodPost, "/v1/payments/create-order", `{"appointment_id":"a1"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero amount is rejected by the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), testPatient, "a1", eqDecimal("0")).Return(usecase.OrderResult{}, entities.ErrInvalidAmount)

		w := doRequest(r, http.MethodPost, "/v1/payments/create-order", `{"appointment_id":"a1","amount":0}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_AMOUNT" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), testPatient, "ghost", eqDecimal("500")).Return(usecase.OrderResult{}, usecase.ErrAppointmentNotFound)

		if w := doRequest(r, http.MethodPost, "/v1/payments/create-order", `{"appointment_id":"ghost","amount":500}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), testPatient, "a1", gomock.Any()).Return(usecase.OrderResult{}, usecase.ErrPaymentGatewayFailure)

		if w := doRequest(r, http.MethodPost, "/v1/payments/create-order", `{"appointment_id":"a1","amount":"500.00"}`); w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), testPatient, "a1", eqDecimal("500.00")).Return(usecase.OrderResult{
			PaymentID:     "pay-1",
			AppointmentID: "a1",
			OrderID:       "order_1",
			Kind:          entities.PaymentKindFull,
			Amount:        decimal.RequireFromString("500.00"),
			Currency:      entities.CurrencyINR,
			Split:         sampleSplit(),
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/payments/create-order", `{"appointment_id":"a1","amount":500.00}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		split, _ := body["commission_split"].(map[string]any)
		if body["order_id"] != "order_1" || body["currency"] != "INR" || split["admin_commission"] != 50.0 || split["hospital_payout"] != 450.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["remaining_amount"]; ok {
			t.Fatalf("full orders carry no remaining amount: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_InitiatePartial(t *testing.T) {
	partial := usecase.OrderResult{
		OrderID:         "order_2",
		AppointmentID:   "a1",
		Kind:            entities.PaymentKindPartial,
		Amount:          decimal.RequireFromString("200"),
		RemainingAmount: decimal.RequireFromString("300"),
		Currency:        entities.CurrencyINR,
		Split:           sampleSplit(),
	}

	t.Run("json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/initiate-partial", h.InitiatePartial)

		uc.EXPECT().InitiatePartial(gomock.Any(), testPatient, "a1", eqDecimal("200")).Return(partial, nil)

		w := doRequest(r, http.MethodPost, "/v1/payments/initiate-partial", `{"appointment_id":"a1","partial_amount":200}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["partial_amount"] != 200.0 || body["remaining_amount"] != 300.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/initiate-partial", h.InitiatePartial)

		uc.EXPECT().InitiatePartial(gomock.Any(), testPatient, "a1", eqDecimal("200")).Return(partial, nil)

		if w := doRequest(r, http.MethodPost, "/v1/payments/initiate-partial?appointment_id=a1&partial_amount=200", ""); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("above total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/initiate-partial", h.InitiatePartial)

		uc.EXPECT().InitiatePartial(gomock.Any(), testPatient, "a1", eqDecimal("900")).Return(usecase.OrderResult{}, entities.ErrInvalidAmount)

		if w := doRequest(r, http.MethodPost, "/v1/payments/initiate-partial", `{"appointment_id":"a1","partial_amount":900}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Verify(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(access.Actor{})
		r.POST("/v1/payments/verify", h.Verify)

		uc.EXPECT().Verify(gomock.Any(), access.Actor{}, gomock.Any()).Return(usecase.VerificationResult{}, access.ErrUnauthenticated)

		if w := doRequest(r, http.MethodPost, "/v1/payments/verify", `{"order_id":"o","payment_id":"p","signature":"s"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("razorpay field names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/payments/verify", h.Verify)

		in := usecase.VerifyPaymentInput{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
		uc.EXPECT().Verify(gomock.Any(), testPatient, in).Return(usecase.VerificationResult{
			Payment: entities.Payment{
				ID:              "p1",
				AppointmentID:   "a1",
				Status:          entities.PaymentStatusSuccess,
				TotalAmount:     decimal.RequireFromString("500"),
				AdminCommission: decimal.RequireFromString("50"),
				HospitalPayout:  decimal.RequireFromString("450"),
			},
			Appointment:          entities.Appointment{ID: "a1", Status: entities.AppointmentStatusConfirmed},
			CommissionPercentage: decimal.NewFromInt(10),
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/payments/verify", `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["appointment_status"] != "CONFIRMED" || body["commission_percentage"] != 10.0 || body["message"] != "Payment successful" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	for name, tc := range map[string]struct {
		err    error
		status int
	}{
		"tampered signature": {usecase.ErrSignatureInvalid, http.StatusBadRequest},
		"already verified":   {usecase.ErrAlreadyVerified, http.StatusConflict},
		"unknown order":      {usecase.ErrPaymentNotFound, http.StatusNotFound},
		"in progress":        {usecase.ErrVerificationInProgress, http.StatusConflict},
		"exceeds balance":    {usecase.ErrAmountExceedsOutstanding, http.StatusConflict},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			h := NewPaymentHandler(uc)

			r := newTestRouter(testPatient)
			r.POST("/v1/payments/verify", h.Verify)

			uc.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.VerificationResult{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/payments/verify", `{"order_id":"o","payment_id":"p","signature":"s"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestPaymentHandler_Reads(t *testing.T) {
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	p := entities.Payment{ID: "p1", AppointmentID: "a1", Status: entities.PaymentStatusPending, TotalAmount: decimal.RequireFromString("500"), CreatedAt: created}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := newTestRouter(testPatient)
	r.GET("/v1/payments/:id", h.GetByID)
	r.GET("/v1/payments/status/:id", h.GetStatus)
	r.GET("/v1/payments/appointment/:id", h.GetByAppointmentID)

	uc.EXPECT().GetByID(gomock.Any(), testPatient, "p1").Return(p, nil).Times(2)
	uc.EXPECT().GetLatestByAppointmentID(gomock.Any(), testPatient, "a1").Return(p, nil)
	uc.EXPECT().GetLatestByAppointmentID(gomock.Any(), testPatient, "a2").Return(entities.Payment{}, usecase.ErrPaymentNotFound)
	uc.EXPECT().GetByID(gomock.Any(), testPatient, "p9").Return(entities.Payment{}, access.ErrForbidden)

	w := doRequest(r, http.MethodGet, "/v1/payments/p1", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["gateway_order_id"] == nil {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/v1/payments/status/p1", "")
	body := decodeBody(t, w)
	if w.Code != http.StatusOK || body["payment_id"] != "p1" || body["status"] != "PENDING" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodGet, "/v1/payments/appointment/a1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/v1/payments/appointment/a2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/v1/payments/p9", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
