package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medipay/internal/adapter/http/handlers"
	"medipay/internal/adapter/http/handlers/mocks"
	"medipay/internal/config"
	"medipay/internal/domain/entities"
	"medipay/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func newTestEngine(t *testing.T, swagger bool) (*gin.Engine, *mocks.MockICommissionSettingsUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	commission := mocks.NewMockICommissionSettingsUseCase(ctrl)
	h := Handlers{
		Appointments: handlers.NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl)),
		Payments:     handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)),
		Commission:   handlers.NewCommissionHandler(commission),
		Admin:        handlers.NewAdminHandler(mocks.NewMockIAnalyticsUseCase(ctrl)),
	}
	return NewRouter(config.Config{JWTSecret: testSecret, SwaggerEnabled: swagger}, h), commission
}

func TestNewRouter(t *testing.T) {
	t.Run("ping is public", func(t *testing.T) {
		r, _ := newTestEngine(t, false)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("secured routes need a token", func(t *testing.T) {
		r, _ := newTestEngine(t, false)
		for _, path := range []string{"/v1/payments/commission-settings", "/v1/admin/dashboard", "/v1/appointments/a1"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s: expected 401, got %d", path, w.Code)
			}
		}
	})

	t.Run("token reaches the handler", func(t *testing.T) {
		r, commission := newTestEngine(t, false)
		commission.EXPECT().GetActive(gomock.Any()).Return(entities.NewDefaultCommissionSetting(time.Now()), nil)

		token, err := auth.CreateAccessToken(testSecret, "patient-1", "patient", "p@example.com", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/payments/commission-settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("swagger toggle", func(t *testing.T) {
		r, _ := newTestEngine(t, false)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 with swagger disabled, got %d", w.Code)
		}
	})
}
