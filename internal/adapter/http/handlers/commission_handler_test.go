package handlers

import (
	"net/http"
	"testing"
	"time"

	"medipay/internal/adapter/http/handlers/mocks"
	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCommissionHandler_Get(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCommissionHandler(mocks.NewMockICommissionSettingsUseCase(ctrl))

		r := newTestRouter(access.Actor{})
		r.GET("/v1/payments/commission-settings", h.Get)

		if w := doRequest(r, http.MethodGet, "/v1/payments/commission-settings", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionSettingsUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := newTestRouter(testHospital)
		r.GET("/v1/payments/commission-settings", h.Get)

		uc.EXPECT().GetActive(gomock.Any()).Return(entities.NewDefaultCommissionSetting(time.Now()), nil)

		w := doRequest(r, http.MethodGet, "/v1/payments/commission-settings", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["commission_percentage"] != 10.0 || body["is_active"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCommissionHandler_Update(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionSettingsUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := newTestRouter(testAdmin)
		r.PUT("/v1/payments/commission-settings", h.Update)

		uc.EXPECT().Update(gomock.Any(), testAdmin, eqDecimal("15")).Return(entities.CommissionSetting{Percentage: decimal.NewFromInt(15), Active: true}, nil)

		w := doRequest(r, http.MethodPut, "/v1/payments/commission-settings", `{"percentage":15}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decodeBody(t, w)["commission_percentage"] != 15.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionSettingsUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := newTestRouter(testAdmin)
		r.PUT("/v1/payments/commission-settings", h.Update)

		uc.EXPECT().Update(gomock.Any(), testAdmin, eqDecimal("12.5")).Return(entities.CommissionSetting{Percentage: decimal.RequireFromString("12.5")}, nil)

		if w := doRequest(r, http.MethodPut, "/v1/payments/commission-settings?commission_percentage=12.5", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCommissionHandler(mocks.NewMockICommissionSettingsUseCase(ctrl))

		r := newTestRouter(testAdmin)
		r.PUT("/v1/payments/commission-settings", h.Update)

		if w := doRequest(r, http.MethodPut, "/v1/payments/commission-settings", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range and non admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionSettingsUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := newTestRouter(testPatient)
		r.PUT("/v1/payments/commission-settings", h.Update)

		uc.EXPECT().Update(gomock.Any(), testPatient, eqDecimal("150")).Return(entities.CommissionSetting{}, entities.ErrInvalidPercentage)
		uc.EXPECT().Update(gomock.Any(), testPatient, eqDecimal("20")).Return(entities.CommissionSetting{}, access.ErrForbidden)

		if w := doRequest(r, http.MethodPut, "/v1/payments/commission-settings", `{"percentage":150}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := doRequest(r, http.MethodPut, "/v1/payments/commission-settings", `{"commission_percentage":20}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
