package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "mock")

		c, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.StoreDriver != StoreDynamoDB {
			t.Fatalf("expected dynamodb driver, got %s", c.StoreDriver)
		}
		if c.GatewayTimeout != 10*time.Second {
			t.Fatalf("expected 10s gateway timeout, got %s", c.GatewayTimeout)
		}
		if c.PaymentsTable != "payments" || c.HTTPPort != 8080 {
			t.Fatalf("unexpected defaults: %+v", c)
		}
		if c.VerificationLockCap != 4096 || c.DirectoryCacheSize != 1024 {
			t.Fatalf("lock capacity must not follow the directory cache size: %+v", c)
		}
		if c.Location() != time.UTC {
			t.Fatalf("expected UTC analytics zone")
		}
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("sql driver requires dsn", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "mock")
		t.Setenv("STORE_DRIVER", "Postgres")
		t.Setenv("DATABASE_DSN", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("razorpay requires keys", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "razorpay")
		t.Setenv("RAZORPAY_KEY_ID", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid zone", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "mock")
		t.Setenv("ANALYTICS_TIMEZONE", "Mars/Olympus")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
