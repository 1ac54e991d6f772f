package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"medipay/internal/adapter/http/middleware"
	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	testPatient  = access.Actor{ID: "patient-1", Role: entities.UserRolePatient}
	testAdmin    = access.Actor{ID: "admin-1", Role: entities.UserRoleAdmin}
	testHospital = access.Actor{ID: "owner-1", Role: entities.UserRoleHospital}
)

func newTestRouter(actor access.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithActor(actor))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

// decimalEq matches decimals by value, ignoring representation.
type decimalEq struct{ want decimal.Decimal }

func eqDecimal(s string) decimalEq { return decimalEq{want: decimal.RequireFromString(s)} }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return fmt.Sprintf("equals decimal %s", m.want) }
