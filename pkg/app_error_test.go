package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		if e.Error() != "PAYMENT_NOT_FOUND: Payment not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "PAYMENT_NOT_FOUND" || body.Message != "Payment not found" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wrapped cause stays internal", func(t *testing.T) {
		cause := errors.New("dynamodb: throttled")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if body := e.ToHTTPError(); body.Message != "An internal error occurred" {
			t.Fatalf("cause leaked into body: %+v", body)
		}
	})
}
