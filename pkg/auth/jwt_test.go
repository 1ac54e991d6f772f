package auth

import (
	"errors"
	"testing"
	"time"
)

func TestParseValidate(t *testing.T) {
	token, err := CreateAccessToken("secret", "u1", "patient", "asha@example.com", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("valid", func(t *testing.T) {
		c, err := ParseValidate("secret", token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Sub != "u1" || c.Role != "patient" || c.Email != "asha@example.com" {
			t.Fatalf("unexpected claims %+v", c)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if _, err := ParseValidate("other", token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		old, _ := CreateAccessToken("secret", "u1", "patient", "", -time.Minute)
		if _, err := ParseValidate("secret", old); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseValidate("secret", "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
